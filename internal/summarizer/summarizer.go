package summarizer

import (
	"strings"
	"unicode/utf8"

	"textsum/internal/chunker"
	"textsum/internal/domain"
)

const (
	DefaultMinInputWords = 50
	DefaultMaxWords      = 200
)

// Config holds the summarizer limits. Zero values fall back to defaults.
type Config struct {
	// MinInputWords is the smallest input that can be summarized.
	MinInputWords int
	// MaxWords is the summary word budget. Inputs within it are returned as is.
	MaxWords int
}

// Result is the outcome of a single summarization.
type Result struct {
	Summary string
	// FastPath is set when the input already fit the budget and was returned trimmed.
	FastPath          bool
	InputWords        int
	Sentences         int
	SelectedSentences int
}

// Summarizer is an extractive summarizer. It holds no per-call state and is
// safe for concurrent use.
type Summarizer struct {
	minInputWords int
	maxWords      int
	splitter      domain.SentenceSplitter
}

// New creates a summarizer using the sentence splitter from the chunker package.
func New(cfg Config) *Summarizer {
	return NewWithSplitter(cfg, chunker.NewSentenceSplitter())
}

func NewWithSplitter(cfg Config, splitter domain.SentenceSplitter) *Summarizer {
	if cfg.MinInputWords <= 0 {
		cfg.MinInputWords = DefaultMinInputWords
	}
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = DefaultMaxWords
	}
	return &Summarizer{
		minInputWords: cfg.MinInputWords,
		maxWords:      cfg.MaxWords,
		splitter:      splitter,
	}
}

// Config returns the effective limits.
func (s *Summarizer) Config() Config {
	return Config{MinInputWords: s.minInputWords, MaxWords: s.maxWords}
}

// Summarize returns an extractive summary of text.
func (s *Summarizer) Summarize(text string) (string, error) {
	res, err := s.Extract(text)
	if err != nil {
		return "", err
	}
	return res.Summary, nil
}

// Extract runs the full pipeline and reports how the summary was built.
func (s *Summarizer) Extract(text string) (Result, error) {
	words, err := s.validate(text)
	if err != nil {
		return Result{}, err
	}
	sentences := s.splitter.Split(text)
	if len(sentences) == 0 {
		return Result{}, ErrUnprocessableInput
	}
	res := Result{InputWords: words, Sentences: len(sentences)}
	if words <= s.maxWords {
		res.Summary = strings.TrimSpace(text)
		res.FastPath = true
		res.SelectedSentences = len(sentences)
		return res, nil
	}

	freq := TermFrequencies(text)
	scored := ScoreSentences(sentences, freq)
	selected := SelectSentences(scored, s.maxWords)
	res.Summary = JoinSentences(selected)
	res.SelectedSentences = len(selected)
	return res, nil
}

// CountWords counts whitespace-delimited words in text.
func (s *Summarizer) CountWords(text string) int {
	return CountWords(text)
}

// Stats reports words, characters and sentences of text. It never fails and
// ignores the summarizer limits.
func (s *Summarizer) Stats(text string) domain.Stats {
	return domain.Stats{
		Words:      CountWords(text),
		Characters: utf8.RuneCountInString(text),
		Sentences:  len(s.splitter.Split(text)),
	}
}

func (s *Summarizer) validate(text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyInput
	}
	words := CountWords(text)
	if words < s.minInputWords {
		return words, &InsufficientLengthError{Min: s.minInputWords, Actual: words}
	}
	return words, nil
}
