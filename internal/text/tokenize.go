package text

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

// Tokenize lowercases s and returns its distinct words in first-seen order.
func Tokenize(s string) []string {
	matches := wordPattern.FindAllString(strings.ToLower(s), -1)

	seen := make(map[string]struct{}, len(matches))
	words := make([]string, 0, len(matches))
	for _, w := range matches {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// SplitWords lowercases s and splits it on whitespace, keeping duplicates.
func SplitWords(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// WordCountOld counts tokens across documents without MapReduce.
func WordCountOld(documents []string) *Counter[string] {
	c := NewCounter[string]()
	for _, doc := range documents {
		c.AddAll(Tokenize(doc))
	}
	return c
}
