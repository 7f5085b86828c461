package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textsum/internal/domain"
)

func TestSentenceSplitter_Split(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []domain.Sentence
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  nil,
		},
		{
			name:  "no terminal punctuation",
			input: "just a fragment without an ending",
			want:  []domain.Sentence{},
		},
		{
			name:  "simple sentences",
			input: "First one. Second one! Third one?",
			want: []domain.Sentence{
				{Text: "First one.", Index: 0},
				{Text: "Second one!", Index: 1},
				{Text: "Third one?", Index: 2},
			},
		},
		{
			name:  "punctuation runs stay with their sentence",
			input: "Really?! Yes... Fine.",
			want: []domain.Sentence{
				{Text: "Really?!", Index: 0},
				{Text: "Yes...", Index: 1},
				{Text: "Fine.", Index: 2},
			},
		},
		{
			name:  "whitespace is collapsed",
			input: "  Line one\n\n  continues here.\tNext   line.  ",
			want: []domain.Sentence{
				{Text: "Line one continues here.", Index: 0},
				{Text: "Next line.", Index: 1},
			},
		},
		{
			name:  "trailing fragment is dropped",
			input: "Kept sentence. dropped fragment",
			want: []domain.Sentence{
				{Text: "Kept sentence.", Index: 0},
			},
		},
		{
			name:  "leading punctuation is dropped",
			input: "... Then it started.",
			want: []domain.Sentence{
				{Text: "Then it started.", Index: 0},
			},
		},
	}

	s := NewSentenceSplitter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Split(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \n b\t\tc  "))
	assert.Equal(t, "", NormalizeWhitespace("\n\n"))
}
