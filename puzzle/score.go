package puzzle

// Score grades a candidate answer against the stored one: 1.0 on exact
// string equality, 0.0 otherwise. No partial credit, no numeric tolerance.
func Score(candidate string, item Item) float64 {
	if candidate == item.Answer {
		return 1.0
	}
	return 0.0
}
