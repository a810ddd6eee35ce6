package puzzle

import "fmt"

// Tier selects a difficulty preset. One generator code path serves all
// tiers; the preset only turns operand-range and variant-shape knobs.
//
//   - TierEasy   — the base tier: small operands, two-way word
//     classification, single-increment sequences, binary/hex re-encodings.
//   - TierMedium — wider operands, three-way length classification,
//     alternating add/subtract sequences, word reversal, reversed-digit
//     re-encodings, backward walks.
//   - TierHard   — widest operands, vowel-based classification, squared
//     secrets in numeric abduction, base-7/digit-sum re-encodings.
type Tier int

const (
	// TierEasy is the default difficulty preset.
	TierEasy Tier = iota

	// TierMedium widens operand ranges and swaps in richer sub-variants.
	TierMedium

	// TierHard uses the widest ranges and the most involved transformations.
	TierHard
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier maps "easy"/"medium"/"hard" to the corresponding Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "easy":
		return TierEasy, nil
	case "medium":
		return TierMedium, nil
	case "hard":
		return TierHard, nil
	default:
		return 0, ErrUnknownTier
	}
}

// classifyMode selects the shape of the deduction classification variant.
type classifyMode int

const (
	classifyLengthTwoWay   classifyMode = iota // length threshold → long/short
	classifyLengthThreeWay                     // two length thresholds → short/medium/long
	classifyVowelThreeWay                      // two vowel thresholds → few/some/many
)

// wordMode selects the induction word-transformation variant shape.
type wordMode int

const (
	wordRepeatLast wordMode = iota // append the last letter N times
	wordReverse                    // reverse the word
	wordEveryOther                 // keep every 2nd letter, starting first
)

// numberCodec selects the pair of transduction number re-encodings; each
// invocation flips a coin between the pair's two members.
type numberCodec int

const (
	codecBinaryOnesHexHead    numberCodec = iota // ones in binary / first hex digit
	codecBinaryZerosRevDigits                    // zeros in binary / reversed decimal digits
	codecBaseSevenDigitSum                       // base-7 digit count / decimal digit sum
)

// indexMode selects how num is turned into a word-bank index.
type indexMode int

const (
	indexPlain       indexMode = iota // num itself
	indexPlusWordLen                  // num + len(word)
	indexTripled                      // 3*num
)

// walkMode selects how num drives the cyclic name-bank walk.
type walkMode int

const (
	walkForward         walkMode = iota // num places forward
	walkBackward                        // num places backward
	walkForwardPlusName                 // num + len(person) places forward
)

// closingMode selects the closing-question formula.
type closingMode int

const (
	closingWordLen        closingMode = iota // num + len(word)
	closingWordAndNameLen                    // num + len(word) + len(person)
	closingDoubledVowels                     // 2*num + vowels(word) + len(person)
)

// tierParams is the full knob set one tier turns. Ranges are inclusive.
type tierParams struct {
	stepFloor int // lowest MinSteps the tier accepts
	stepCeil  int // highest MaxSteps the tier accepts

	// Deduction.
	dedMultLo, dedMultHi int
	dedAddLo, dedAddHi   int
	dedSubLo, dedSubHi   int // zero range disables the subtract term
	classify             classifyMode
	dedChainNames        int // distinct names in the ordering chain

	// Induction.
	indIncLo, indIncHi   int
	indTermLo, indTermHi int
	indAlternating       bool // alternating add/subtract recurrence
	indWord              wordMode
	indMoveLo, indMoveHi int
	indDrawDirection     bool // draw forward/backward instead of fixed forward

	// Abduction.
	abdSecretLo, abdSecretHi int
	abdMultLo, abdMultHi     int
	abdAddMax                int // accepted addend band is 1..abdAddMax
	abdSquare                bool
	abdShiftMax              int

	// Transduction.
	codec numberCodec
	index indexMode
	walk  walkMode

	// Closing question.
	closing closingMode
}

// presets holds the declared tier parameter sets. The easy preset matches
// the base generator's historical operand ranges exactly; medium and hard
// widen them and swap variant shapes.
var presets = map[Tier]tierParams{
	TierEasy: {
		stepFloor: 5, stepCeil: 10,
		dedMultLo: 2, dedMultHi: 5,
		dedAddLo: 1, dedAddHi: 9,
		classify:      classifyLengthTwoWay,
		dedChainNames: 3,
		indIncLo:      2, indIncHi: 5,
		indTermLo: 3, indTermHi: 5,
		indWord:   wordRepeatLast,
		indMoveLo: 1, indMoveHi: 3,
		abdSecretLo: 2, abdSecretHi: 8,
		abdMultLo: 2, abdMultHi: 5,
		abdAddMax:   9,
		abdShiftMax: 2,
		codec:       codecBinaryOnesHexHead,
		index:       indexPlain,
		walk:        walkForward,
		closing:     closingWordLen,
	},
	TierMedium: {
		stepFloor: 5, stepCeil: 12,
		dedMultLo: 2, dedMultHi: 5,
		dedAddLo: 1, dedAddHi: 9,
		dedSubLo: 1, dedSubHi: 5,
		classify:      classifyLengthThreeWay,
		dedChainNames: 4,
		indIncLo:      2, indIncHi: 5,
		indTermLo: 3, indTermHi: 6,
		indAlternating: true,
		indWord:        wordReverse,
		indMoveLo:      1, indMoveHi: 4,
		indDrawDirection: true,
		abdSecretLo:      2, abdSecretHi: 12,
		abdMultLo: 2, abdMultHi: 5,
		abdAddMax:   15,
		abdShiftMax: 3,
		codec:       codecBinaryZerosRevDigits,
		index:       indexPlusWordLen,
		walk:        walkBackward,
		closing:     closingWordAndNameLen,
	},
	TierHard: {
		stepFloor: 6, stepCeil: 14,
		dedMultLo: 3, dedMultHi: 7,
		dedAddLo: 2, dedAddHi: 12,
		dedSubLo: 1, dedSubHi: 9,
		classify:      classifyVowelThreeWay,
		dedChainNames: 4,
		indIncLo:      3, indIncHi: 7,
		indTermLo: 4, indTermHi: 7,
		indAlternating: true,
		indWord:        wordEveryOther,
		indMoveLo:      2, indMoveHi: 6,
		indDrawDirection: true,
		abdSecretLo:      2, abdSecretHi: 9,
		abdAddMax:   20,
		abdSquare:   true,
		abdShiftMax: 5,
		codec:       codecBaseSevenDigitSum,
		index:       indexTripled,
		walk:        walkForwardPlusName,
		closing:     closingDoubledVowels,
	},
}

// params returns the tier's preset. The second result reports whether the
// tier is declared.
func (t Tier) params() (tierParams, bool) {
	p, ok := presets[t]
	return p, ok
}

// Validate checks the only validated precondition of generation: a known
// tier and step bounds that are ordered and inside the tier's declared
// range. It fails fast before any generation occurs.
func (c Config) Validate() error {
	p, ok := c.Tier.params()
	if !ok {
		return ErrUnknownTier
	}
	if c.MinSteps > c.MaxSteps {
		return ErrStepOrder
	}
	if c.MinSteps < p.stepFloor || c.MaxSteps > p.stepCeil {
		return ErrStepBounds
	}
	return nil
}
