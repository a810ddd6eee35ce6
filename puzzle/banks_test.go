package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestModIndex_WrapsNegativesAndLarge verifies the wrap stays in [0, n)
// for any magnitude or sign.
func TestModIndex_WrapsNegativesAndLarge(t *testing.T) {
	n := len(WordBank)
	for _, i := range []int{-1000000007, -11, -10, -1, 0, 1, 9, 10, 11, 1 << 40} {
		got := modIndex(i, n)
		assert.GreaterOrEqual(t, got, 0, "i=%d", i)
		assert.Less(t, got, n, "i=%d", i)
	}
	assert.Equal(t, 9, modIndex(-1, 10))
	assert.Equal(t, 0, modIndex(-10, 10))
	assert.Equal(t, 3, modIndex(13, 10))
}

// TestNameIndex_AllBankMembers verifies the bank round-trips by position.
func TestNameIndex_AllBankMembers(t *testing.T) {
	for i, n := range NameBank {
		assert.Equal(t, i, nameIndex(n))
	}
}

// TestNameIndex_UnknownPanics verifies the contract violation surfaces.
func TestNameIndex_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { nameIndex("Zorro") })
}

// TestVowelCount_Cases table-checks representative inputs.
func TestVowelCount_Cases(t *testing.T) {
	cases := map[string]int{
		"eagle":  3,
		"lion":   2,
		"tiger":  2,
		"bear":   2,
		"wolf":   1,
		"short":  1,
		"medium": 3,
		"long":   1,
		"few":    1,
		"many":   1,
	}
	for in, want := range cases {
		assert.Equal(t, want, vowelCount(in), "word %q", in)
	}
}

// TestShiftLetters_RoundTrip verifies forward-then-backward shifting is
// the identity for every bank word and lowercased name.
func TestShiftLetters_RoundTrip(t *testing.T) {
	for shift := 1; shift <= 5; shift++ {
		for _, w := range WordBank {
			assert.Equal(t, w, shiftLetters(shiftLetters(w, shift), -shift))
		}
		for _, n := range NameBank {
			low := strings.ToLower(n)
			assert.Equal(t, low, shiftLetters(shiftLetters(low, shift), -shift))
		}
	}
}

// TestShiftLetters_WrapsAndPassesThrough checks alphabet wrap and
// non-letter passthrough.
func TestShiftLetters_WrapsAndPassesThrough(t *testing.T) {
	assert.Equal(t, "bcd", shiftLetters("abc", 1))
	assert.Equal(t, "abc", shiftLetters("zab", 1))
	assert.Equal(t, "zab", shiftLetters("abc", -1))
	assert.Equal(t, "a-b 1", shiftLetters("z-a 1", 1))
}

// TestReverseString covers even, odd and single-byte inputs.
func TestReverseString(t *testing.T) {
	assert.Equal(t, "noil", reverseString("lion"))
	assert.Equal(t, "elgae", reverseString("eagle"))
	assert.Equal(t, "a", reverseString("a"))
}

// TestEveryOther verifies extraction keeps 1st, 3rd, 5th… letters and is
// never empty for non-empty input.
func TestEveryOther(t *testing.T) {
	assert.Equal(t, "lo", everyOther("lion"))
	assert.Equal(t, "ege", everyOther("eagle"))
	assert.Equal(t, "a", everyOther("a"))
	assert.Equal(t, "a", everyOther("ab"))
}

// TestFormatBank verifies the embedded-list rendering.
func TestFormatBank(t *testing.T) {
	got := formatBank([]string{"lion", "tiger"})
	assert.Equal(t, "[lion, tiger]", got)
	assert.True(t, strings.HasPrefix(formatBank(NameBank), "[Alice, "))
	assert.True(t, strings.HasSuffix(formatBank(NameBank), ", Judy]"))
}

// TestBankSizes pins the pool-size preconditions the operators rely on
// (distinct samples of up to 4 names, decoy pools of at least 9 entries).
func TestBankSizes(t *testing.T) {
	assert.Len(t, WordBank, 10)
	assert.Len(t, NameBank, 10)
}
