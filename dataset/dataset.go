package dataset

import (
	"errors"
	"math/rand"

	"github.com/stepforge/stepchain/puzzle"
)

// Sentinel errors for dataset construction and access.
var (
	// ErrBadSize indicates Config.Size < 1.
	ErrBadSize = errors.New("dataset: size must be at least 1")

	// ErrIndexRange indicates an Item index outside [0, Size).
	ErrIndexRange = errors.New("dataset: item index out of range")
)

// Config parameterizes a dataset view.
//
// Seed – base seed for all items; nil draws one from the global rand
// source at construction (non-deterministic; unfit for tests).
// Size – number of addressable items.
// The step bounds and Tier are forwarded to puzzle.Config verbatim.
type Config struct {
	MinSteps int
	MaxSteps int
	Tier     puzzle.Tier
	Seed     *int64
	Size     int
}

// DefaultConfig mirrors the base-tier dataset defaults: 5–10 steps,
// TierEasy, 500 items, unseeded.
func DefaultConfig() Config {
	return Config{MinSteps: 5, MaxSteps: 10, Tier: puzzle.TierEasy, Size: 500}
}

// puzzleConfig projects the generator-relevant fields.
func (c Config) puzzleConfig() puzzle.Config {
	return puzzle.Config{MinSteps: c.MinSteps, MaxSteps: c.MaxSteps, Tier: c.Tier}
}

// Validate checks Size and the forwarded step-bound precondition.
func (c Config) Validate() error {
	if c.Size < 1 {
		return ErrBadSize
	}
	return c.puzzleConfig().Validate()
}

// Metadata is the per-item provenance record, with the dataset-name tag
// merged in. JSON keys match the historical metadata dictionary.
type Metadata struct {
	SourceDataset string `json:"source_dataset"`
	SourceIndex   int    `json:"source_index"`
	NumSteps      int    `json:"num_steps"`
}

// Item is one dataset entry.
type Item struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Metadata Metadata `json:"metadata"`
}

// Dataset is a fixed-size, index-addressable view over the generator.
// Construction resolves the seed once; Item is then a pure function of the
// index, so concurrent access needs no locking.
type Dataset struct {
	name string
	cfg  Config
	seed int64
}

// NewDataset validates cfg and builds a dataset tagged with name.
func NewDataset(name string, cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Dataset{name: name, cfg: cfg, seed: resolveSeed(cfg.Seed)}, nil
}

// resolveSeed returns *seed, or draws a fresh base seed from the global
// rand source when seed is nil.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.Int63()
}

// Name returns the dataset-name tag merged into every item's metadata.
func (d *Dataset) Name() string { return d.name }

// Size returns the number of addressable items.
func (d *Dataset) Size() int { return d.cfg.Size }

// Seed returns the resolved base seed (useful for reproducing an unseeded
// run after the fact).
func (d *Dataset) Seed() int64 { return d.seed }

// Item generates the index-th item. The same index always yields the same
// item for a given dataset.
func (d *Dataset) Item(index int) (Item, error) {
	if index < 0 || index >= d.cfg.Size {
		return Item{}, ErrIndexRange
	}
	core, err := puzzle.Generate(d.cfg.puzzleConfig(), d.seed, index)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Question: core.Question,
		Answer:   core.Answer,
		Metadata: Metadata{
			SourceDataset: d.name,
			SourceIndex:   core.Metadata.SourceIndex,
			NumSteps:      core.Metadata.NumSteps,
		},
	}, nil
}

// All materializes every item in index order.
func (d *Dataset) All() ([]Item, error) {
	out := make([]Item, 0, d.cfg.Size)
	for i := 0; i < d.cfg.Size; i++ {
		item, err := d.Item(i)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ScoreAnswer grades candidate against item: 1.0 on exact match, else 0.0.
func (d *Dataset) ScoreAnswer(candidate string, item Item) float64 {
	return puzzle.Score(candidate, puzzle.Item{Answer: item.Answer})
}
