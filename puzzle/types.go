package puzzle

import "errors"

// Sentinel errors returned by config validation.
var (
	// ErrUnknownTier indicates Config.Tier is not one of the declared tiers.
	ErrUnknownTier = errors.New("puzzle: unknown difficulty tier")

	// ErrStepOrder indicates MinSteps > MaxSteps.
	ErrStepOrder = errors.New("puzzle: MinSteps must not exceed MaxSteps")

	// ErrStepBounds indicates the configured step bounds fall outside the
	// tier's declared floor/ceiling.
	ErrStepBounds = errors.New("puzzle: step bounds outside tier range")
)

// Config parameterizes one generation run.
//
// MinSteps / MaxSteps – inclusive bounds on the drawn step count S; the
// rendered question has exactly S lines (S-1 operator steps plus the
// closing question).
// Tier – difficulty preset; see Tier.
type Config struct {
	MinSteps int
	MaxSteps int
	Tier     Tier
}

// DefaultConfig returns the base-tier configuration: 5–10 steps, TierEasy.
func DefaultConfig() Config {
	return Config{MinSteps: 5, MaxSteps: 10, Tier: TierEasy}
}

// Metadata describes the provenance of a generated item.
type Metadata struct {
	SourceIndex int `json:"source_index"`
	NumSteps    int `json:"num_steps"`
}

// Item is one generated puzzle. Immutable once produced.
//
// Question is the newline-joined sequence of "Step N: ..." lines.
// Answer is the closing question's integer value rendered as a string.
type Item struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Metadata Metadata `json:"metadata"`
}

// state is the evolving (num, word, person) triple threaded through a
// puzzle's steps. It is an explicit value: every operator receives the
// current state and returns the next one, so operators stay pure and
// independently testable.
//
// Invariants:
//   - num is an integer; negative intermediates are allowed.
//   - word is a non-empty string; deduction may replace it with a
//     classification label, which downstream operators must tolerate.
//   - person is always a member of NameBank.
type state struct {
	num    int
	word   string
	person string
}

// opKind enumerates the four reasoning-step categories.
type opKind int

const (
	kindDeduction opKind = iota
	kindInduction
	kindAbduction
	kindTransduction

	kindCount = 4
)
