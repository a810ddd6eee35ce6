package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate covers the fail-fast precondition matrix.
func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"default ok", DefaultConfig(), nil},
		{"easy floor violated", Config{MinSteps: 4, MaxSteps: 10, Tier: TierEasy}, ErrStepBounds},
		{"easy ceiling violated", Config{MinSteps: 5, MaxSteps: 11, Tier: TierEasy}, ErrStepBounds},
		{"min above max", Config{MinSteps: 8, MaxSteps: 7, Tier: TierEasy}, ErrStepOrder},
		{"unknown tier", Config{MinSteps: 5, MaxSteps: 10, Tier: Tier(99)}, ErrUnknownTier},
		{"medium widened ceiling ok", Config{MinSteps: 5, MaxSteps: 12, Tier: TierMedium}, nil},
		{"hard floor is six", Config{MinSteps: 5, MaxSteps: 10, Tier: TierHard}, ErrStepBounds},
		{"hard ok", Config{MinSteps: 6, MaxSteps: 14, Tier: TierHard}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestTier_StringAndParse round-trips the declared tiers.
func TestTier_StringAndParse(t *testing.T) {
	for _, tier := range allTiers {
		got, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}

	_, err := ParseTier("nightmare")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

// TestPresets_Declared verifies every declared tier carries a preset with
// sane ranges; the generator trusts these at draw time.
func TestPresets_Declared(t *testing.T) {
	for _, tier := range allTiers {
		p, ok := tier.params()
		require.True(t, ok, "tier %s must have a preset", tier)

		assert.GreaterOrEqual(t, p.stepFloor, 5)
		assert.Greater(t, p.stepCeil, p.stepFloor)
		assert.LessOrEqual(t, p.dedMultLo, p.dedMultHi)
		assert.LessOrEqual(t, p.dedAddLo, p.dedAddHi)
		assert.LessOrEqual(t, p.indIncLo, p.indIncHi)
		assert.LessOrEqual(t, p.indTermLo, p.indTermHi)
		assert.LessOrEqual(t, p.indMoveLo, p.indMoveHi)
		assert.LessOrEqual(t, p.abdSecretLo, p.abdSecretHi)
		assert.Positive(t, p.abdShiftMax)
		assert.Positive(t, p.abdAddMax)
		// Ordering chains must fit the distinct-sample pool.
		assert.GreaterOrEqual(t, len(NameBank), p.dedChainNames)
		assert.GreaterOrEqual(t, p.dedChainNames, 3)
	}
}
