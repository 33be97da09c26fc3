package match

import (
	"sort"
	"strings"
)

// DefaultMinScore is the minimum Similarity for a suggestion.
const DefaultMinScore = 0.6

// Suggest returns the known attribute names that look like misspellings of
// name, best match first. Comparison ignores case, so "inDto" suggests
// "inDTO". A candidate equal to name is never suggested.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		candidate string
		score     float64
	}

	var matches []scored

	folded := strings.ToLower(name)

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(folded, strings.ToLower(c)); score >= DefaultMinScore {
			matches = append(matches, scored{candidate: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.candidate)
	}

	return out
}
