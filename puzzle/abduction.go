// Package puzzle - the abduction operator: show a forward transformation's
// output and ask which of two candidates was the hidden input.
//
// After rendering, state is updated to the secret (pre-transformation)
// value, never the shown transformed value: the narrative state tracks
// ground truth, not the obfuscated text.
//
// Draw order (frozen):
//
//	variant draw, then per sub-variant:
//	  number: up to abductionRetries × (secret, [mult]), decoy offset, pair shuffle
//	  word:   shift, decoy word, pair shuffle
//	  name:   shift, secret name, decoy name, pair shuffle
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// abductionRetries bounds the search for a (secret, mult) pair whose
// implied addend lands in the accepted band. The last draw is used
// regardless, matching the historical retry-accept-last behavior.
const abductionRetries = 10

// abduce applies one abduction sub-variant to st and returns the new state
// plus the rendered step line.
func abduce(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	switch pickVariant(rng) {
	case variantFirst:
		return abduceNumber(stepNo, rng, st, p)
	case variantSecond:
		return abduceWord(stepNo, rng, st, p)
	default:
		return abduceName(stepNo, rng, st, p)
	}
}

// abduceNumber reverse-engineers a multiply/add (or, on the hard tier,
// square/add) formation of num. The addend is derived from num, so the
// stated formation always reproduces it.
func abduceNumber(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	var secret, mult, add int

	if p.abdSquare {
		for i := 0; i < abductionRetries; i++ {
			secret = intBetween(rng, p.abdSecretLo, p.abdSecretHi)
			add = st.num - secret*secret
			if add >= 1 && add <= p.abdAddMax {
				break
			}
		}
	} else {
		for i := 0; i < abductionRetries; i++ {
			secret = intBetween(rng, p.abdSecretLo, p.abdSecretHi)
			mult = intBetween(rng, p.abdMultLo, p.abdMultHi)
			add = st.num - secret*mult
			if add >= 1 && add <= p.abdAddMax {
				break
			}
		}
	}

	wrong := decoyNumber(rng, secret)
	first, second := shufflePair(rng, secret, wrong)

	var line string
	if p.abdSquare {
		line = fmt.Sprintf("Step %d: The number %d was made by squaring a secret number and adding %d. Was that number %d or %d?",
			stepNo, st.num, add, first, second)
	} else {
		line = fmt.Sprintf("Step %d: The number %d was made by multiplying a secret number by %d and adding %d. Was that number %d or %d?",
			stepNo, st.num, mult, add, first, second)
	}
	st.num = secret
	return st, line
}

// abduceWord reverse-engineers a Caesar-style forward shift of a secret
// word. The current word (which may be a classification label) is treated
// as the shifted text; the secret is recovered by shifting backward.
func abduceWord(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	shift := intBetween(rng, 1, p.abdShiftMax)
	orig := shiftLetters(strings.ToLower(st.word), -shift)
	wrong := decoyWord(rng, orig)
	first, second := shufflePair(rng, orig, wrong)

	line := fmt.Sprintf("Step %d: The word '%s' was formed by shifting a secret word forward by %d letters. Was the original word '%s' or '%s'?",
		stepNo, st.word, shift, first, second)
	st.word = orig
	return st, line
}

// abduceName encodes a freshly drawn secret name with a stated forward
// shift and asks which of two names it was.
func abduceName(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	shift := intBetween(rng, 1, p.abdShiftMax)
	orig := chooseString(rng, NameBank)
	encoded := shiftLetters(strings.ToLower(orig), shift)
	wrong := decoyName(rng, orig)
	first, second := shufflePair(rng, orig, wrong)

	line := fmt.Sprintf("Step %d: A secret name was shifted forward by %d letters to become '%s'. Was it '%s' or '%s'?",
		stepNo, shift, encoded, first, second)
	st.person = orig
	return st, line
}

// decoyNumber returns a plausible-but-wrong numeric option: the secret plus
// a small positive offset, so it can never equal the secret. The offset may
// push the decoy past the stated secret range for secrets near the top of
// the band; that looseness is historical and deliberate.
//
// Consumes exactly one draw.
func decoyNumber(rng *rand.Rand, secret int) int {
	return secret + intBetween(rng, 1, 4)
}

// decoyWord returns a bank word distinct from orig. The candidate pool
// excludes the true secret, so the decoy can never collide with it.
//
// Consumes exactly one draw.
func decoyWord(rng *rand.Rand, orig string) string {
	pool := make([]string, 0, len(WordBank))
	for _, w := range WordBank {
		if w != orig {
			pool = append(pool, w)
		}
	}
	return chooseString(rng, pool)
}

// decoyName returns a bank name distinct from orig.
//
// Consumes exactly one draw.
func decoyName(rng *rand.Rand, orig string) string {
	pool := make([]string, 0, len(NameBank))
	for _, n := range NameBank {
		if n != orig {
			pool = append(pool, n)
		}
	}
	return chooseString(rng, pool)
}
