package domain

import (
	"strings"
	"unicode"
)

// CleanWord prepares a token taken from a passage for scoring and lookup:
//   - trims surrounding whitespace
//   - strips leading/trailing punctuation and symbols
//
// Inner hyphens and apostrophes are preserved ("well-known", "don't").
func CleanWord(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// CleanWords cleans every token and drops duplicates, keeping first-seen order.
// The index of each input token that cleans to an empty string is reported in empty.
func CleanWords(words []string) (cleaned []string, empty []int) {
	cleaned = make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for i, w := range words {
		c := CleanWord(w)
		if c == "" {
			empty = append(empty, i)
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cleaned = append(cleaned, c)
	}
	return cleaned, empty
}

// SplitPassage splits a passage into clickable tokens on whitespace.
func SplitPassage(text string) []string {
	return strings.Fields(text)
}
