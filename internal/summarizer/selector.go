package summarizer

import (
	"cmp"
	"slices"
	"strings"

	"textsum/internal/domain"
)

// SelectSentences greedily picks the highest scoring sentences whose word
// counts fit in budget. A sentence that does not fit is skipped and the walk
// continues, so shorter lower-ranked sentences may still be taken. Equal
// scores are ranked by original index.
func SelectSentences(scored []domain.ScoredSentence, budget int) []domain.ScoredSentence {
	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b domain.ScoredSentence) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	var selected []domain.ScoredSentence
	total := 0
	for _, s := range ranked {
		if total+s.WordCount > budget {
			continue
		}
		selected = append(selected, s)
		total += s.WordCount
	}

	slices.SortFunc(selected, func(a, b domain.ScoredSentence) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return selected
}

// JoinSentences joins sentence texts with a single space.
func JoinSentences(sentences []domain.ScoredSentence) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}
