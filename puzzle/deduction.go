// Package puzzle - the deduction operator: a closed-form transformation
// stated as a given fact the puzzle-taker must compute.
//
// Draw order (frozen):
//
//	variant draw, then per sub-variant:
//	  arithmetic:     mult, add, [sub]
//	  classification: thresholds (one or two)
//	  ordering:       k distinct names
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// deduce applies one deduction sub-variant to st and returns the new state
// plus the rendered step line.
func deduce(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	switch pickVariant(rng) {
	case variantFirst:
		return deduceArithmetic(stepNo, rng, st, p)
	case variantSecond:
		return deduceClassify(stepNo, rng, st, p)
	default:
		return deduceOrdering(stepNo, rng, st, p)
	}
}

// deduceArithmetic mutates num via a multiply/add (and, on higher tiers,
// subtract) chain. All drawn operands appear verbatim in the text so the
// reader can reproduce the result.
func deduceArithmetic(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	mult := intBetween(rng, p.dedMultLo, p.dedMultHi)
	add := intBetween(rng, p.dedAddLo, p.dedAddHi)

	if p.dedSubHi == 0 {
		line := fmt.Sprintf("Step %d: Multiply %d by %d and add %d. What do you get?",
			stepNo, st.num, mult, add)
		st.num = st.num*mult + add
		return st, line
	}

	sub := intBetween(rng, p.dedSubLo, p.dedSubHi)
	line := fmt.Sprintf("Step %d: Multiply %d by %d, add %d, then subtract %d. What do you get?",
		stepNo, st.num, mult, add, sub)
	st.num = st.num*mult + add - sub
	return st, line
}

// deduceClassify replaces word with a categorical label drawn from a
// threshold classification. Thresholds are drawn per invocation and
// rendered, keeping the puzzle self-contained. Labels are valid lowercase
// alphabetic strings, so every downstream word operation still works.
func deduceClassify(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	switch p.classify {
	case classifyLengthTwoWay:
		threshold := intBetween(rng, 4, 7)
		label := "short"
		if len(st.word) >= threshold {
			label = "long"
		}
		line := fmt.Sprintf("Step %d: Words with at least %d letters are called 'long'. Is '%s' long or short?",
			stepNo, threshold, st.word)
		st.word = label
		return st, line

	case classifyLengthThreeWay:
		t1 := intBetween(rng, 3, 4)
		t2 := intBetween(rng, 6, 8)
		label := "long"
		if len(st.word) < t1 {
			label = "short"
		} else if len(st.word) < t2 {
			label = "medium"
		}
		line := fmt.Sprintf("Step %d: Words with fewer than %d letters are 'short', words with fewer than %d letters are 'medium', and anything longer is 'long'. Which is '%s'?",
			stepNo, t1, t2, st.word)
		st.word = label
		return st, line

	default: // classifyVowelThreeWay
		t1 := intBetween(rng, 1, 2)
		t2 := intBetween(rng, 3, 4)
		label := "many"
		if v := vowelCount(st.word); v < t1 {
			label = "few"
		} else if v < t2 {
			label = "some"
		}
		line := fmt.Sprintf("Step %d: Words with fewer than %d vowels have 'few', words with fewer than %d vowels have 'some', and anything else has 'many'. Does '%s' have few, some or many vowels?",
			stepNo, t1, t2, st.word)
		st.word = label
		return st, line
	}
}

// deduceOrdering states an age-ordering chain over k distinct sampled names
// and sets person to the oldest. The chain is stated, not verified; only
// its conclusion feeds the running state.
func deduceOrdering(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	names := sampleDistinct(rng, NameBank, p.dedChainNames)
	rels := make([]string, 0, len(names)-1)
	for i := 0; i < len(names)-1; i++ {
		rels = append(rels, fmt.Sprintf("%s is older than %s", names[i], names[i+1]))
	}
	line := fmt.Sprintf("Step %d: %s. Who is the oldest?", stepNo, strings.Join(rels, " and "))
	st.person = names[0]
	return st, line
}
