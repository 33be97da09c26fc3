package match

// Distance returns the Levenshtein edit distance between a and b, counted in
// runes: the fewest single-rune insertions, deletions or substitutions that
// turn one into the other. "inEntty" is one edit away from "inEntity".
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the shorter string in the row.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			above := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(above+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}

// Similarity scales Distance into [0, 1], where 1 means equal strings.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
