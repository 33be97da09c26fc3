package match

import (
	"strings"
	"unicode"
)

// SplitIdent splits a schema field name into words, keeping their case.
// Underscores, hyphens and spaces separate words, and so do case changes:
//   - "zip_code" -> ["zip", "code"]
//   - "customerID" -> ["customer", "ID"]
//   - "HTTPServer" -> ["HTTP", "Server"]
func SplitIdent(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && wordStarts(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// wordStarts reports whether runes[i] opens a new word: a lower-to-upper
// step ("zipCode") or the last capital of an acronym ahead of a lowercase
// rune ("IDCard" splits before 'C').
func wordStarts(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
