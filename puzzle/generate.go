// Package puzzle - sequencer: orchestrates operator selection, runs each
// step against the shared state and appends the closing question.
//
// Per-item draw order (frozen):
//
//	1. step count S in [MinSteps, MaxSteps]
//	2. initial num in [2, 9]
//	3. initial word (word bank)
//	4. initial person (name bank)
//	5. permutation of the four operator kinds (steps 1–4)
//	6. per step 5..S-1: one uniform kind draw
//	7. per step: the operator's own draws (see operator files)
//
// The closing step consumes no draws.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Initial value band for num.
const (
	initNumLo = 2
	initNumHi = 9
)

// Generate produces the puzzle item for (cfg, seed, index). It is a pure
// function of its arguments: the same triple yields a byte-identical item,
// and different indices own decorrelated streams, so concurrent generation
// of different indices needs no locking.
//
// The only validated precondition is the step-bound configuration; any
// violation fails fast with a sentinel error before generation starts.
//
// Complexity: O(S) steps, each O(1) apart from O(bank) sampling.
func Generate(cfg Config, seed int64, index int) (Item, error) {
	if err := cfg.Validate(); err != nil {
		return Item{}, err
	}
	p, _ := cfg.Tier.params()
	rng := newSession(seed, index)

	steps := intBetween(rng, cfg.MinSteps, cfg.MaxSteps)
	st := state{
		num:    intBetween(rng, initNumLo, initNumHi),
		word:   chooseString(rng, WordBank),
		person: chooseString(rng, NameBank),
	}

	// Steps 1–4 follow a random permutation of the four kinds so every
	// kind appears early; the tier floors guarantee S-1 ≥ 4.
	order := kindPermutation(rng)

	lines := make([]string, 0, steps)
	var line string
	for i := 1; i < steps; i++ {
		var kind opKind
		if i <= kindCount {
			kind = order[i-1]
		} else {
			kind = opKind(rng.Intn(kindCount))
		}

		switch kind {
		case kindDeduction:
			st, line = deduce(i, rng, st, p)
		case kindInduction:
			st, line = induce(i, rng, st, p)
		case kindAbduction:
			st, line = abduce(i, rng, st, p)
		default:
			st, line = transduce(i, rng, st, p)
		}
		lines = append(lines, line)
	}

	closing, answer := closingStep(steps, st, p)
	lines = append(lines, closing)

	return Item{
		Question: strings.Join(lines, "\n"),
		Answer:   strconv.Itoa(answer),
		Metadata: Metadata{SourceIndex: index, NumSteps: steps},
	}, nil
}

// closingStep renders the always-present final step and computes its value
// from the final state. The formula is fixed per tier and consumes no
// randomness.
func closingStep(stepNo int, st state, p tierParams) (string, int) {
	switch p.closing {
	case closingWordLen:
		line := fmt.Sprintf("Step %d: Add the number of letters in '%s' to %d. What is the result?",
			stepNo, st.word, st.num)
		return line, st.num + len(st.word)

	case closingWordAndNameLen:
		line := fmt.Sprintf("Step %d: Add the number of letters in '%s' and the number of letters in %s's name to %d. What is the result?",
			stepNo, st.word, st.person, st.num)
		return line, st.num + len(st.word) + len(st.person)

	default: // closingDoubledVowels
		line := fmt.Sprintf("Step %d: Double %d, then add the number of vowels in '%s' and the number of letters in %s's name. What is the result?",
			stepNo, st.num, st.word, st.person)
		return line, 2*st.num + vowelCount(st.word) + len(st.person)
	}
}
