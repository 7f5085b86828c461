package summarizer

import (
	"regexp"
	"strings"

	"textsum/internal/domain"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)

// stopwords are excluded from term frequencies.
var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
		"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
		"to", "was", "were", "will", "with", "this", "but", "they", "have",
		"had", "what", "when", "where", "who", "which", "why", "how", "can",
		"could", "would", "should", "may", "might", "must", "shall", "or",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// IsStopword reports whether a lowercase token is a stop word.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// tokens lowercases text, strips everything but letters, digits and
// whitespace and splits the remainder on whitespace.
func tokens(text string) []string {
	lower := strings.ToLower(text)
	return strings.Fields(nonAlnumPattern.ReplaceAllString(lower, ""))
}

// TermFrequencies counts content words in text and normalizes every count
// by the largest one. Text without content words yields an empty map.
func TermFrequencies(text string) domain.TermFrequencies {
	freq := domain.TermFrequencies{}
	for _, tok := range tokens(text) {
		if len(tok) <= 2 || IsStopword(tok) {
			continue
		}
		freq[tok]++
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF == 0 {
		return freq
	}
	for k, v := range freq {
		freq[k] = v / maxF
	}
	return freq
}
