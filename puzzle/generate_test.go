package puzzle_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepforge/stepchain/puzzle"
)

// tierConfigs returns one valid full-width config per tier.
func tierConfigs() map[puzzle.Tier]puzzle.Config {
	return map[puzzle.Tier]puzzle.Config{
		puzzle.TierEasy:   {MinSteps: 5, MaxSteps: 10, Tier: puzzle.TierEasy},
		puzzle.TierMedium: {MinSteps: 5, MaxSteps: 12, Tier: puzzle.TierMedium},
		puzzle.TierHard:   {MinSteps: 6, MaxSteps: 14, Tier: puzzle.TierHard},
	}
}

// TestGenerate_Deterministic verifies the concrete reproducibility
// scenario: same (seed, index, config) ⇒ byte-identical items; a different
// index ⇒ a different item.
func TestGenerate_Deterministic(t *testing.T) {
	cfg := puzzle.Config{MinSteps: 5, MaxSteps: 5, Tier: puzzle.TierEasy}

	a, err := puzzle.Generate(cfg, 1, 0)
	require.NoError(t, err)
	b, err := puzzle.Generate(cfg, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same (seed, index) must reproduce the item exactly")

	c, err := puzzle.Generate(cfg, 1, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a.Question, c.Question, "different indices must diverge")
}

// TestGenerate_DeterministicAcrossTiers repeats the reproducibility check
// for every tier over a spread of indices.
func TestGenerate_DeterministicAcrossTiers(t *testing.T) {
	for tier, cfg := range tierConfigs() {
		for idx := 0; idx < 25; idx++ {
			a, err := puzzle.Generate(cfg, 42, idx)
			require.NoError(t, err, "tier %s idx %d", tier, idx)
			b, err := puzzle.Generate(cfg, 42, idx)
			require.NoError(t, err)
			assert.Equal(t, a, b, "tier %s idx %d", tier, idx)
		}
	}
}

// TestGenerate_LineCountInvariant verifies that min==max==S yields exactly
// S lines prefixed "Step i: " in order.
func TestGenerate_LineCountInvariant(t *testing.T) {
	for _, s := range []int{5, 7, 10} {
		cfg := puzzle.Config{MinSteps: s, MaxSteps: s, Tier: puzzle.TierEasy}
		for idx := 0; idx < 20; idx++ {
			item, err := puzzle.Generate(cfg, 3, idx)
			require.NoError(t, err)

			lines := strings.Split(item.Question, "\n")
			require.Len(t, lines, s, "S=%d idx=%d", s, idx)
			for i, line := range lines {
				assert.True(t, strings.HasPrefix(line, fmt.Sprintf("Step %d: ", i+1)),
					"S=%d idx=%d line %d: %q", s, idx, i+1, line)
			}
			assert.Equal(t, s, item.Metadata.NumSteps)
		}
	}
}

// TestGenerate_StepCountWithinBounds verifies the drawn step count honors
// the configured inclusive range on every tier.
func TestGenerate_StepCountWithinBounds(t *testing.T) {
	for tier, cfg := range tierConfigs() {
		for idx := 0; idx < 100; idx++ {
			item, err := puzzle.Generate(cfg, 7, idx)
			require.NoError(t, err, "tier %s", tier)

			assert.GreaterOrEqual(t, item.Metadata.NumSteps, cfg.MinSteps)
			assert.LessOrEqual(t, item.Metadata.NumSteps, cfg.MaxSteps)
			assert.Len(t, strings.Split(item.Question, "\n"), item.Metadata.NumSteps)
			assert.Equal(t, idx, item.Metadata.SourceIndex)
		}
	}
}

// TestGenerate_AnswerAlwaysScoresFull verifies the stored answer scores 1.0
// and any other string scores 0.0, for every tier.
func TestGenerate_AnswerAlwaysScoresFull(t *testing.T) {
	for tier, cfg := range tierConfigs() {
		for idx := 0; idx < 100; idx++ {
			item, err := puzzle.Generate(cfg, 11, idx)
			require.NoError(t, err, "tier %s", tier)

			assert.Equal(t, 1.0, puzzle.Score(item.Answer, item))
			assert.Equal(t, 0.0, puzzle.Score(item.Answer+" ", item))
			assert.Equal(t, 0.0, puzzle.Score("", item))
		}
	}
}

// TestGenerate_ValidationFailsFast verifies no item is produced on invalid
// configuration.
func TestGenerate_ValidationFailsFast(t *testing.T) {
	_, err := puzzle.Generate(puzzle.Config{MinSteps: 4, MaxSteps: 10, Tier: puzzle.TierEasy}, 1, 0)
	assert.ErrorIs(t, err, puzzle.ErrStepBounds)

	_, err = puzzle.Generate(puzzle.Config{MinSteps: 8, MaxSteps: 7, Tier: puzzle.TierEasy}, 1, 0)
	assert.ErrorIs(t, err, puzzle.ErrStepOrder)

	_, err = puzzle.Generate(puzzle.Config{MinSteps: 5, MaxSteps: 10, Tier: puzzle.Tier(42)}, 1, 0)
	assert.ErrorIs(t, err, puzzle.ErrUnknownTier)
}

// TestGenerate_SeedChangesOutput verifies different base seeds produce
// different items for the same index.
func TestGenerate_SeedChangesOutput(t *testing.T) {
	cfg := puzzle.DefaultConfig()
	a, err := puzzle.Generate(cfg, 1, 0)
	require.NoError(t, err)
	b, err := puzzle.Generate(cfg, 2, 0)
	require.NoError(t, err)
	assert.NotEqual(t, a.Question, b.Question)
}
