// Package puzzle synthesizes multi-step reasoning puzzles from a seeded
// pseudo-random stream.
//
// What:
//
//   - A puzzle is an ordered sequence of "Step N: ..." lines. Each step is
//     produced by one of four operator kinds — deduction, induction,
//     abduction, transduction — that mutates exactly one field of a small
//     running state (num, word, person).
//   - The final step is a closing question computed from the final state
//     without further randomness; its integer value, rendered as a string,
//     is the puzzle's answer.
//   - Three difficulty tiers (TierEasy, TierMedium, TierHard) share one code
//     path; a per-tier preset controls operand ranges, sub-variant shapes and
//     the closing formula.
//
// Why:
//
//   - Procedural training/eval data: items are cheap, self-contained and
//     scored by exact string match.
//   - Reproducibility: Generate is a pure function of (config, seed, index).
//
// Determinism contract:
//
//   - Each item owns a private *rand.Rand derived from (seed, index) via a
//     SplitMix64-style mix; the same pair reproduces the item bit-for-bit.
//   - The order in which draws are consumed is part of each operator's
//     contract (documented per file). Reordering logic without reordering
//     draws silently changes every downstream item — treat draw sequences
//     as frozen.
//
// Options:
//
//   - Config.MinSteps / Config.MaxSteps: inclusive bounds on the drawn step
//     count; must satisfy the tier's declared floor/ceiling.
//   - Config.Tier: difficulty preset.
//
// Errors:
//
//   - ErrUnknownTier: Config.Tier is not a declared tier.
//   - ErrStepOrder:   MinSteps > MaxSteps.
//   - ErrStepBounds:  step bounds fall outside the tier's declared range.
//
// Sampling preconditions (pool sizes vs. distinct-sample requests) are
// programming contracts, not runtime conditions: violating them panics.
package puzzle
