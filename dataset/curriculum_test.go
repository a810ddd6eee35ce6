package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepforge/stepchain/dataset"
)

// TestCurriculum_NumStepsWalk mirrors the classic curriculum check: the
// base config survives, and the level cursor moves MaxSteps 5 → 6 → 5.
func TestCurriculum_NumStepsWalk(t *testing.T) {
	cur := dataset.MultiStepReasoningCurriculum()
	base := dataset.DefaultConfig()
	base.Size = 10
	base.Seed = seeded(123)

	cfg := cur.GenerateConfig(base)
	assert.Equal(t, 10, cfg.Size)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(123), *cfg.Seed)
	assert.Equal(t, 5, cfg.MaxSteps)

	require.NoError(t, cur.Increment(dataset.NumStepsAttribute))
	assert.Equal(t, 6, cur.GenerateConfig(base).MaxSteps)

	require.NoError(t, cur.Decrement(dataset.NumStepsAttribute))
	assert.Equal(t, 5, cur.GenerateConfig(base).MaxSteps)
}

// TestCurriculum_LevelBounds verifies the cursor refuses to leave the
// level list.
func TestCurriculum_LevelBounds(t *testing.T) {
	cur := dataset.MultiStepReasoningCurriculum()

	assert.ErrorIs(t, cur.Decrement(dataset.NumStepsAttribute), dataset.ErrLevelRange)

	for i := 0; i < 5; i++ {
		require.NoError(t, cur.Increment(dataset.NumStepsAttribute))
	}
	assert.ErrorIs(t, cur.Increment(dataset.NumStepsAttribute), dataset.ErrLevelRange)

	level, err := cur.Level(dataset.NumStepsAttribute)
	require.NoError(t, err)
	assert.Equal(t, 10, level)
}

// TestCurriculum_UnknownAttribute verifies attribute-name validation.
func TestCurriculum_UnknownAttribute(t *testing.T) {
	cur := dataset.MultiStepReasoningCurriculum()
	assert.ErrorIs(t, cur.Increment("nope"), dataset.ErrUnknownAttribute)
	assert.ErrorIs(t, cur.Decrement("nope"), dataset.ErrUnknownAttribute)
	_, err := cur.Level("nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownAttribute)
}

// TestNewCurriculum_NoLevels verifies the definition-time check.
func TestNewCurriculum_NoLevels(t *testing.T) {
	_, err := dataset.NewCurriculum("bad", dataset.ScalarAttribute{Name: "x"})
	assert.ErrorIs(t, err, dataset.ErrNoLevels)
}

// TestCurriculum_GeneratedConfigsGenerate verifies every curriculum level
// yields a valid, generating dataset.
func TestCurriculum_GeneratedConfigsGenerate(t *testing.T) {
	cur := dataset.MultiStepReasoningCurriculum()
	base := dataset.DefaultConfig()
	base.Size = 2
	base.Seed = seeded(7)

	for {
		cfg := cur.GenerateConfig(base)
		d, err := dataset.Open(dataset.MultiStepReasoningName, cfg)
		require.NoError(t, err)
		item, err := d.Item(0)
		require.NoError(t, err)
		assert.LessOrEqual(t, item.Metadata.NumSteps, cfg.MaxSteps)

		if err := cur.Increment(dataset.NumStepsAttribute); err != nil {
			break
		}
	}
}
