// Package puzzle - deterministic RNG session shared by all operators.
//
// This file centralizes every random draw primitive the generator uses.
//
// Goals:
//   - Determinism: the same (seed, index) pair ⇒ an identical item.
//   - Encapsulation: a single session factory; no time-based sources hidden
//     anywhere in the core.
//   - Contract clarity: the draw primitives below are the complete draw
//     vocabulary — uniform float in [0,1), inclusive integer range,
//     k-distinct sample, pair shuffle, kind permutation. Operators compose
//     these in a frozen order.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Generate call owns a
//     private session; concurrent generation of different indices needs no
//     locking because session construction is side-effect-free.
package puzzle

import "math/rand"

// newSession returns the private deterministic stream for one item,
// derived from the base seed and the item index. Distinct indices yield
// decorrelated streams; the same pair always yields the same stream.
//
// Complexity: O(1).
func newSession(seed int64, index int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(index))))
}

// deriveSeed mixes a base seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small input changes
// produce large, well-distributed output changes, so neighboring indices do
// not produce correlated items.
//
// Complexity: O(1).
func deriveSeed(base int64, stream uint64) int64 {
	var x uint64
	x = uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// intBetween draws a uniform integer in the inclusive range [lo, hi].
// lo ≤ hi is a programming contract; rand.Intn panics on violation.
//
// Consumes exactly one draw.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// chooseString draws one uniform element from pool. pool must be non-empty.
//
// Consumes exactly one draw.
func chooseString(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// sampleDistinct draws k distinct elements from pool via a partial
// Fisher–Yates over a copy. Requesting k > len(pool) is a programming
// contract violation and panics; callers only sample from pools declared
// large enough.
//
// Consumes exactly k draws. Complexity: O(len(pool)) time and space.
func sampleDistinct(rng *rand.Rand, pool []string, k int) []string {
	if k > len(pool) {
		panic("puzzle: distinct sample larger than pool")
	}
	tmp := make([]string, len(pool))
	copy(tmp, pool)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(tmp)-i)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:k]
}

// shufflePair returns (a, b) or (b, a) with equal probability. Used to
// randomize the order of the two abduction options.
//
// Consumes exactly one draw.
func shufflePair[T any](rng *rand.Rand, a, b T) (T, T) {
	if rng.Intn(2) == 1 {
		return b, a
	}
	return a, b
}

// kindPermutation returns a uniform random permutation of the four operator
// kinds. The sequencer assigns it to steps 1–4 to guarantee early variety.
//
// Consumes exactly kindCount-1 draws (Fisher–Yates).
func kindPermutation(rng *rand.Rand) [kindCount]opKind {
	var order [kindCount]opKind
	for i := range order {
		order[i] = opKind(i)
	}
	for i := kindCount - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// variant indexes one of the three sub-variants every operator kind offers.
type variant int

const (
	variantFirst variant = iota
	variantSecond
	variantThird
)

// Sub-variant boundaries for the single uniform draw in [0,1).
const (
	variantBoundaryLow  = 0.33
	variantBoundaryHigh = 0.66
)

// pickVariant performs the three-way categorical dispatch shared by all
// operator kinds: one uniform draw, boundaries at 0.33 and 0.66.
//
// Consumes exactly one draw.
func pickVariant(rng *rand.Rand) variant {
	c := rng.Float64()
	switch {
	case c < variantBoundaryLow:
		return variantFirst
	case c < variantBoundaryHigh:
		return variantSecond
	default:
		return variantThird
	}
}
