package domain

// Sentence is a trimmed sentence of the input along with its position
// among all sentences produced by the splitter.
type Sentence struct {
	Text  string
	Index int
}

// ScoredSentence is a sentence ranked for inclusion in a summary.
type ScoredSentence struct {
	Sentence
	// Tokens is the number of normalized tokens, short and stop words included.
	Tokens int
	// WordCount is the whitespace word count of Text, charged against the budget.
	WordCount int
	Score     float64
}

// TermFrequencies maps a lowercase content word to its weight in [0,1].
type TermFrequencies map[string]float64

// Stats describes the size of a text.
type Stats struct {
	Words      int `yaml:"words" json:"words"`
	Characters int `yaml:"characters" json:"characters"`
	Sentences  int `yaml:"sentences" json:"sentences"`
}

// SentenceSplitter breaks text into ordered sentences.
type SentenceSplitter interface {
	Split(text string) []Sentence
}
