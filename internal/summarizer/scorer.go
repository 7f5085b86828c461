package summarizer

import (
	"regexp"

	"textsum/internal/domain"
)

const (
	firstSentenceBonus = 2.0
	lastSentenceBonus  = 1.5
	earlySentenceBonus = 1.0
	earlySentenceLimit = 3

	lengthBonus     = 1.0
	minScoredTokens = 10
	maxScoredTokens = 25

	capitalizedWeight = 0.3
	numberWeight      = 0.5
)

var (
	capitalizedPattern = regexp.MustCompile(`[A-Z][a-z]+`)
	numberPattern      = regexp.MustCompile(`[0-9]+`)
)

// ScoreSentences ranks every sentence by term frequency, position, length,
// capitalized words and numbers. The returned slice keeps the input order.
func ScoreSentences(sentences []domain.Sentence, freq domain.TermFrequencies) []domain.ScoredSentence {
	scored := make([]domain.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		toks := tokens(sent.Text)
		score := 0.0
		for _, tok := range toks {
			score += freq[tok]
		}
		score += positionScore(i, len(sentences))
		if len(toks) >= minScoredTokens && len(toks) <= maxScoredTokens {
			score += lengthBonus
		}
		score += capitalizedWeight * float64(len(capitalizedPattern.FindAllStringIndex(sent.Text, -1)))
		score += numberWeight * float64(len(numberPattern.FindAllStringIndex(sent.Text, -1)))

		scored[i] = domain.ScoredSentence{
			Sentence:  sent,
			Tokens:    len(toks),
			WordCount: CountWords(sent.Text),
			Score:     score,
		}
	}
	return scored
}

func positionScore(index, total int) float64 {
	switch {
	case index == 0:
		return firstSentenceBonus
	case index == total-1:
		return lastSentenceBonus
	case index < earlySentenceLimit:
		return earlySentenceBonus
	default:
		return 0
	}
}
