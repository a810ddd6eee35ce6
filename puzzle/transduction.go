// Package puzzle - the transduction operator: re-represent num in another
// base/encoding and ask for a derived property, or use num to index into
// the word bank / walk the cyclic name bank.
//
// Totality: digit manipulations operate on the absolute value (and the
// rendered text says so), and every bank access wraps via modIndex, so the
// operator is defined for any num the chain produces.
//
// Draw order (frozen):
//
//	variant draw, then per sub-variant:
//	  number re-encoding: one coin flip between the tier codec's pair
//	  word index:         no draws
//	  name walk:          no draws
package puzzle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// transduce applies one transduction sub-variant to st and returns the new
// state plus the rendered step line.
func transduce(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	switch pickVariant(rng) {
	case variantFirst:
		return transduceNumber(stepNo, rng, st, p)
	case variantSecond:
		return transduceWordIndex(stepNo, st, p)
	default:
		return transduceWalk(stepNo, st, p)
	}
}

// transduceNumber re-encodes |num| per the tier's codec pair and replaces
// num with the derived property. One coin flip selects the pair member.
func transduceNumber(stepNo int, rng *rand.Rand, st state, p tierParams) (state, string) {
	coin := rng.Float64() < 0.5
	a := abs(st.num)

	var res int
	var line string
	switch p.codec {
	case codecBinaryOnesHexHead:
		if coin {
			res = strings.Count(strconv.FormatInt(int64(a), 2), "1")
			line = fmt.Sprintf("Step %d: Take the absolute value of %d and write it in binary. How many ones appear?",
				stepNo, st.num)
		} else {
			hexRepr := strconv.FormatInt(int64(a), 16)
			v, _ := strconv.ParseInt(hexRepr[:1], 16, 0)
			res = int(v)
			line = fmt.Sprintf("Step %d: Take the absolute value of %d and convert it to hexadecimal. What is the decimal value of the first digit?",
				stepNo, st.num)
		}

	case codecBinaryZerosRevDigits:
		if coin {
			res = strings.Count(strconv.FormatInt(int64(a), 2), "0")
			line = fmt.Sprintf("Step %d: Take the absolute value of %d and write it in binary. How many zeros appear?",
				stepNo, st.num)
		} else {
			res, _ = strconv.Atoi(reverseString(strconv.Itoa(a)))
			line = fmt.Sprintf("Step %d: Take the absolute value of %d, reverse its decimal digits and read the result as a number. What do you get?",
				stepNo, st.num)
		}

	default: // codecBaseSevenDigitSum
		if coin {
			res = len(strconv.FormatInt(int64(a), 7))
			line = fmt.Sprintf("Step %d: Take the absolute value of %d and write it in base 7. How many digits does it have?",
				stepNo, st.num)
		} else {
			for _, d := range strconv.Itoa(a) {
				res += int(d - '0')
			}
			line = fmt.Sprintf("Step %d: Take the absolute value of %d and add up its decimal digits. What is the sum?",
				stepNo, st.num)
		}
	}
	st.num = res
	return st, line
}

// transduceWordIndex uses the tier's function of num as a wrapping index
// into the word bank and replaces word with the selected entry.
func transduceWordIndex(stepNo int, st state, p tierParams) (state, string) {
	var idx int
	var line string
	switch p.index {
	case indexPlain:
		idx = st.num
		line = fmt.Sprintf("Step %d: Use %d as an index to pick a word from %s. Which word do you get?",
			stepNo, st.num, formatBank(WordBank))
	case indexPlusWordLen:
		idx = st.num + len(st.word)
		line = fmt.Sprintf("Step %d: Add the number of letters in '%s' to %d and use the result as an index into %s (wrapping around). Which word do you get?",
			stepNo, st.word, st.num, formatBank(WordBank))
	default: // indexTripled
		idx = 3 * st.num
		line = fmt.Sprintf("Step %d: Multiply %d by 3 and use the result as an index into %s (wrapping around). Which word do you get?",
			stepNo, st.num, formatBank(WordBank))
	}
	st.word = WordBank[modIndex(idx, len(WordBank))]
	return st, line
}

// transduceWalk moves person around the cyclic name bank by the tier's
// function of num.
func transduceWalk(stepNo int, st state, p tierParams) (state, string) {
	var delta int
	var line string
	switch p.walk {
	case walkForward:
		delta = st.num
		line = fmt.Sprintf("Step %d: Starting from %s, move %d places forward in %s. Which name do you land on?",
			stepNo, st.person, st.num, formatBank(NameBank))
	case walkBackward:
		delta = -st.num
		line = fmt.Sprintf("Step %d: Starting from %s, move %d places backward in %s. Which name do you land on?",
			stepNo, st.person, st.num, formatBank(NameBank))
	default: // walkForwardPlusName
		delta = st.num + len(st.person)
		line = fmt.Sprintf("Step %d: Add the number of letters in %s to %d and move that many places forward in %s. Which name do you land on?",
			stepNo, st.person, st.num, formatBank(NameBank))
	}
	st.person = NameBank[modIndex(nameIndex(st.person)+delta, len(NameBank))]
	return st, line
}
