package puzzle

import "strings"

// WordBank is the fixed, ordered word list used for sampling and modular
// indexing. Order matters: transduction treats it as a cyclic sequence.
// Callers must not mutate it.
var WordBank = []string{
	"lion",
	"tiger",
	"bear",
	"wolf",
	"eagle",
	"shark",
	"horse",
	"whale",
	"otter",
	"camel",
}

// NameBank is the fixed, ordered (alphabetical) name list. Several
// operators use positions in this list for cyclic positional arithmetic.
// Callers must not mutate it.
var NameBank = []string{
	"Alice",
	"Bob",
	"Carol",
	"Dave",
	"Eve",
	"Frank",
	"Grace",
	"Heidi",
	"Ivan",
	"Judy",
}

// modIndex wraps i into [0, n) with a non-negative result for negative i.
// n must be positive.
func modIndex(i, n int) int {
	return ((i % n) + n) % n
}

// nameIndex returns the position of name in NameBank. The person field is
// invariantly a bank member; a miss is a programming-contract violation.
func nameIndex(name string) int {
	for i, n := range NameBank {
		if n == name {
			return i
		}
	}
	panic("puzzle: person not in name bank: " + name)
}

// vowelCount counts a, e, i, o, u occurrences in s (lowercase letters;
// bank words and classification labels are all lowercase).
func vowelCount(s string) int {
	var c int
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			c++
		}
	}
	return c
}

// shiftLetters rotates each lowercase letter of s by shift positions in the
// alphabet (negative shift rotates backward). Other bytes pass through
// unchanged, so the helper stays total for arbitrary strings.
func shiftLetters(s string, shift int) string {
	b := []byte(s)
	for i, c := range b {
		if c < 'a' || c > 'z' {
			continue
		}
		b[i] = byte(modIndex(int(c-'a')+shift, 26)) + 'a'
	}
	return string(b)
}

// reverseString returns s with its bytes in reverse order. Bank entries and
// labels are ASCII, so byte reversal equals rune reversal here.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// everyOther keeps the 1st, 3rd, 5th… bytes of s. Never empty for
// non-empty s, preserving the word invariant.
func everyOther(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i += 2 {
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// formatBank renders a bank as "[lion, tiger, …]" for embedding in step
// text. Rendering is part of the output contract: changing it changes
// every question that lists a bank.
func formatBank(bank []string) string {
	return "[" + strings.Join(bank, ", ") + "]"
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
