// Command stepchain generates multi-step reasoning puzzle datasets and
// scores candidate answers from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/stepforge/stepchain/dataset"
	"github.com/stepforge/stepchain/puzzle"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stepchain",
	Short: "stepchain - procedural multi-step reasoning puzzles",
	Long: `stepchain synthesizes chains of deduction, induction, abduction and
transduction steps over a small running state, ending in an arithmetic
closing question whose answer is reproducible from the rendered text.

Items are deterministic in (seed, index, config) and scored by exact
string match.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// fileConfig is the YAML shape accepted by --config. Flags override any
// value it provides.
type fileConfig struct {
	Dataset  string `yaml:"dataset"`
	Seed     *int64 `yaml:"seed"`
	Size     int    `yaml:"size"`
	MinSteps int    `yaml:"min_steps"`
	MaxSteps int    `yaml:"max_steps"`
	Tier     string `yaml:"tier"`
}

var (
	genDataset    string
	genSeed       string
	genSize       int
	genMinSteps   int
	genMaxSteps   int
	genTier       string
	genConfigPath string
	genOutPath    string
)

// generateCmd emits dataset items as JSON lines.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate puzzle items as JSON lines",
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name := genDataset
	cfg := dataset.DefaultConfig()

	if genConfigPath != "" {
		fc, err := loadFileConfig(genConfigPath)
		if err != nil {
			return err
		}
		if fc.Dataset != "" && !cmd.Flags().Changed("dataset") {
			name = fc.Dataset
		}
		if fc.Seed != nil {
			cfg.Seed = fc.Seed
		}
		if fc.Size > 0 {
			cfg.Size = fc.Size
		}
		if fc.MinSteps > 0 {
			cfg.MinSteps = fc.MinSteps
		}
		if fc.MaxSteps > 0 {
			cfg.MaxSteps = fc.MaxSteps
		}
		if fc.Tier != "" {
			tier, err := puzzle.ParseTier(fc.Tier)
			if err != nil {
				return fmt.Errorf("config %s: tier %q: %w", genConfigPath, fc.Tier, err)
			}
			cfg.Tier = tier
		}
	}

	// Flags win over the config file.
	if cmd.Flags().Changed("seed") {
		s, err := strconv.ParseInt(genSeed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --seed %q: %w", genSeed, err)
		}
		cfg.Seed = &s
	}
	if cmd.Flags().Changed("size") {
		cfg.Size = genSize
	}
	if cmd.Flags().Changed("min-steps") {
		cfg.MinSteps = genMinSteps
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = genMaxSteps
	}
	if cmd.Flags().Changed("tier") {
		tier, err := puzzle.ParseTier(genTier)
		if err != nil {
			return fmt.Errorf("invalid --tier %q: %w", genTier, err)
		}
		cfg.Tier = tier
	}

	d, err := dataset.Open(name, cfg)
	if err != nil {
		return fmt.Errorf("open dataset %q: %w", name, err)
	}

	out := io.Writer(os.Stdout)
	if genOutPath != "" {
		f, err := os.Create(genOutPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", genOutPath, err)
		}
		defer f.Close()
		out = f
	}

	runID := uuid.NewString()
	logger.Info("generating dataset",
		zap.String("run_id", runID),
		zap.String("dataset", d.Name()),
		zap.Int("size", d.Size()),
		zap.Int64("seed", d.Seed()),
		zap.String("tier", cfg.Tier.String()),
	)

	enc := json.NewEncoder(out)
	for i := 0; i < d.Size(); i++ {
		item, err := d.Item(i)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encode item %d: %w", i, err)
		}
	}

	logger.Info("generation complete",
		zap.String("run_id", runID),
		zap.Int("items", d.Size()),
	)
	return nil
}

func loadFileConfig(path string) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

var scoreItemPath string

// scoreCmd grades a candidate answer against a stored item.
var scoreCmd = &cobra.Command{
	Use:   "score <candidate>",
	Short: "Score a candidate answer against a stored item (exact match)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(scoreItemPath)
		if err != nil {
			return fmt.Errorf("read item %s: %w", scoreItemPath, err)
		}
		var item dataset.Item
		if err := json.Unmarshal(raw, &item); err != nil {
			return fmt.Errorf("parse item %s: %w", scoreItemPath, err)
		}

		score := puzzle.Score(args[0], puzzle.Item{Answer: item.Answer})
		logger.Debug("scored candidate",
			zap.String("dataset", item.Metadata.SourceDataset),
			zap.Int("source_index", item.Metadata.SourceIndex),
			zap.Float64("score", score),
		)
		fmt.Printf("%.1f\n", score)
		return nil
	},
}

// datasetsCmd lists the registered dataset names.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List registered dataset names",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, n := range dataset.Names() {
			fmt.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVar(&genDataset, "dataset", dataset.MultiStepReasoningName, "registered dataset name")
	generateCmd.Flags().StringVar(&genSeed, "seed", "", "base seed (omit for a non-deterministic run)")
	generateCmd.Flags().IntVar(&genSize, "size", 500, "number of items")
	generateCmd.Flags().IntVar(&genMinSteps, "min-steps", 5, "minimum step count")
	generateCmd.Flags().IntVar(&genMaxSteps, "max-steps", 10, "maximum step count")
	generateCmd.Flags().StringVar(&genTier, "tier", "easy", "difficulty tier: easy|medium|hard")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "YAML config file (flags override)")
	generateCmd.Flags().StringVar(&genOutPath, "out", "", "output file (default stdout)")

	scoreCmd.Flags().StringVar(&scoreItemPath, "item", "", "path to a JSON item produced by generate")
	_ = scoreCmd.MarkFlagRequired("item")

	rootCmd.AddCommand(generateCmd, scoreCmd, datasetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
