package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"textsum/internal/domain"
	"textsum/internal/history"
	"textsum/internal/logger"
	"textsum/internal/metrics"
	"textsum/internal/summarizer"
)

// Extractor is the part of the summarizer the service depends on.
type Extractor interface {
	Extract(text string) (summarizer.Result, error)
	Stats(text string) domain.Stats
}

// Options tune a SummaryService. Zero values are usable.
type Options struct {
	// Delay is waited before every summarization.
	Delay   time.Duration
	Metrics metrics.Recorder
	Logger  logger.Logger
	Now     func() time.Time
}

// SummaryService summarizes text on behalf of the signed-in user and keeps
// the session history.
type SummaryService struct {
	summarizer Extractor
	history    history.Storage
	delay      time.Duration
	metrics    metrics.Recorder
	log        logger.Logger
	now        func() time.Time
}

func NewSummaryService(sum Extractor, store history.Storage, opts Options) *SummaryService {
	if opts.Metrics == nil {
		opts.Metrics = metrics.Noop{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDiscard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SummaryService{
		summarizer: sum,
		history:    store,
		delay:      opts.Delay,
		metrics:    opts.Metrics,
		log:        opts.Logger.With("component", "summary_service"),
		now:        opts.Now,
	}
}

// Summarize summarizes the trimmed text and records it in the history. Failed
// attempts leave the history untouched.
func (s *SummaryService) Summarize(ctx context.Context, text string) (history.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.metrics.ObserveFailure(metrics.KindEmpty)
		return history.Item{}, summarizer.ErrEmptyInput
	}
	if err := s.wait(ctx); err != nil {
		s.metrics.ObserveFailure(metrics.KindCanceled)
		return history.Item{}, err
	}

	start := time.Now()
	res, err := s.summarizer.Extract(text)
	if err != nil {
		s.metrics.ObserveFailure(failureKind(err))
		s.log.Warn("summarization rejected", "err", err)
		return history.Item{}, err
	}
	elapsed := time.Since(start)

	item, err := s.history.Add(history.Item{
		CreatedAt:        s.now(),
		InputText:        text,
		Summary:          res.Summary,
		InputWordCount:   res.InputWords,
		SummaryWordCount: summarizer.CountWords(res.Summary),
	})
	if err != nil {
		return history.Item{}, err
	}
	s.metrics.ObserveSummary(item.InputWordCount, item.SummaryWordCount, res.FastPath, elapsed)
	s.log.Info("summary created",
		"id", item.ID,
		"input_words", item.InputWordCount,
		"summary_words", item.SummaryWordCount,
		"sentences", res.Sentences,
		"selected", res.SelectedSentences,
		"fast_path", res.FastPath,
	)
	return item, nil
}

func (s *SummaryService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// History returns the session history, newest first.
func (s *SummaryService) History() []history.Item {
	return s.history.List()
}

// Reuse returns a history item so its input and summary can be shown again.
func (s *SummaryService) Reuse(id string) (history.Item, error) {
	return s.history.Get(id)
}

func (s *SummaryService) Delete(id string) error {
	if err := s.history.Remove(id); err != nil {
		return err
	}
	s.log.Debug("history item deleted", "id", id)
	return nil
}

// Reset drops the whole history. It is called when the user signs out.
func (s *SummaryService) Reset() {
	s.history.Clear()
	s.log.Debug("history cleared")
}

// Stats reports the live word, character and sentence counts of text.
func (s *SummaryService) Stats(text string) domain.Stats {
	return s.summarizer.Stats(text)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, summarizer.ErrEmptyInput):
		return metrics.KindEmpty
	case errors.Is(err, summarizer.ErrInsufficientLength):
		return metrics.KindTooShort
	case errors.Is(err, summarizer.ErrUnprocessableInput):
		return metrics.KindUnprocessable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.KindCanceled
	default:
		return metrics.KindOther
	}
}
