// Package puzzle - the induction operator: extrapolate a stated pattern a
// stated number of times.
//
// Draw order (frozen):
//
//	variant draw, then per sub-variant:
//	  sequence:  inc, terms, [dec]
//	  word:      [reps]              (reverse/every-other draw nothing)
//	  name walk: places, [direction]
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// induce applies one induction sub-variant to st and returns the new state
// plus the rendered step line. The state update exactly matches applying
// the stated pattern the stated number of times.
func induce(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	switch pickVariant(rng) {
	case variantFirst:
		return induceSequence(stepNo, rng, st, p)
	case variantSecond:
		return induceWord(stepNo, rng, st, p)
	default:
		return induceWalk(stepNo, rng, st, p)
	}
}

// induceSequence extends an arithmetic sequence from num: a fixed increment
// on the easy tier, an alternating add/subtract recurrence above it.
func induceSequence(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	inc := intBetween(rng, p.indIncLo, p.indIncHi)
	n := intBetween(rng, p.indTermLo, p.indTermHi)

	if !p.indAlternating {
		line := fmt.Sprintf("Step %d: Start at %d and add %d each time. What is the %dth term?",
			stepNo, st.num, inc, n)
		st.num += inc * (n - 1)
		return st, line
	}

	dec := intBetween(rng, p.indIncLo, p.indIncHi)
	line := fmt.Sprintf("Step %d: Start at %d and alternately add %d and subtract %d, beginning with the addition. What is the %dth term?",
		stepNo, st.num, inc, dec, n)
	// n-1 operations produce the nth term.
	v := st.num
	for i := 0; i < n-1; i++ {
		if i%2 == 0 {
			v += inc
		} else {
			v -= dec
		}
	}
	st.num = v
	return st, line
}

// induceWord transforms word by the tier's string pattern: last-letter
// repetition, full reversal, or every-2nd-letter extraction. All three
// preserve the non-empty-word invariant.
func induceWord(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	switch p.indWord {
	case wordRepeatLast:
		reps := intBetween(rng, 1, 3)
		line := fmt.Sprintf("Step %d: Repeat the last letter of '%s' %d times. What word results?",
			stepNo, st.word, reps)
		st.word += strings.Repeat(st.word[len(st.word)-1:], reps)
		return st, line

	case wordReverse:
		line := fmt.Sprintf("Step %d: Reverse the word '%s'. What string results?", stepNo, st.word)
		st.word = reverseString(st.word)
		return st, line

	default: // wordEveryOther
		line := fmt.Sprintf("Step %d: Take every 2nd letter of '%s', starting with the first letter. What string results?",
			stepNo, st.word)
		st.word = everyOther(st.word)
		return st, line
	}
}

// induceWalk moves person a drawn number of places around the cyclic name
// bank. Higher tiers also draw the direction.
func induceWalk(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	n := intBetween(rng, p.indMoveLo, p.indMoveHi)

	delta, dir := n, "forward"
	if p.indDrawDirection && rng.Float64() < 0.5 {
		delta, dir = -n, "backward"
	}

	line := fmt.Sprintf("Step %d: Starting from %s and moving %d places %s alphabetically in %s, which name do you reach?",
		stepNo, st.person, n, dir, formatBank(NameBank))
	st.person = NameBank[modIndex(nameIndex(st.person)+delta, len(NameBank))]
	return st, line
}
