package chunker

import (
	"regexp"
	"strings"

	"textsum/internal/domain"
)

// SentenceSplitter splits text into sentences terminated by '.', '!' or '?'.
// Trailing text without terminal punctuation is not part of any sentence.
type SentenceSplitter struct {
	splitter *regexp.Regexp
}

func NewSentenceSplitter() *SentenceSplitter {
	return &SentenceSplitter{
		splitter: regexp.MustCompile(`[^.!?]+[.!?]+`),
	}
}

// Split normalizes whitespace and returns the sentences in text order.
func (c *SentenceSplitter) Split(text string) []domain.Sentence {
	normalized := NormalizeWhitespace(text)
	if normalized == "" {
		return nil
	}
	matches := c.splitter.FindAllString(normalized, -1)
	sentences := make([]domain.Sentence, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		sentences = append(sentences, domain.Sentence{Text: m, Index: len(sentences)})
	}
	return sentences
}

// NormalizeWhitespace collapses every run of whitespace into a single space
// and trims both ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
