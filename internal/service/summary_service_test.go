package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/history"
	"textsum/internal/history/memory"
	"textsum/internal/metrics"
	"textsum/internal/summarizer"
)

type fakeRecorder struct {
	mu        sync.Mutex
	summaries []bool
	failures  []string
}

func (f *fakeRecorder) ObserveSummary(_, _ int, fastPath bool, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, fastPath)
}

func (f *fakeRecorder) ObserveFailure(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, kind)
}

func text(sentences, wordsPer int) string {
	var parts []string
	for i := 0; i < sentences; i++ {
		words := make([]string, wordsPer)
		for j := range words {
			words[j] = fmt.Sprintf("w%dx%d", i, j)
		}
		parts = append(parts, strings.Join(words, " ")+".")
	}
	return strings.Join(parts, " ")
}

func newService(t *testing.T, opts Options) (*SummaryService, *fakeRecorder) {
	t.Helper()
	store, err := memory.NewStorage(50)
	require.NoError(t, err)
	rec := &fakeRecorder{}
	opts.Metrics = rec
	return NewSummaryService(summarizer.New(summarizer.Config{}), store, opts), rec
}

func TestSummaryService_Summarize(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	svc, rec := newService(t, Options{Now: func() time.Time { return now }})

	input := "  " + text(6, 10) + "\n"
	item, err := svc.Summarize(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, now, item.CreatedAt)
	assert.Equal(t, strings.TrimSpace(input), item.InputText)
	assert.Equal(t, strings.TrimSpace(input), item.Summary)
	assert.Equal(t, 60, item.InputWordCount)
	assert.Equal(t, 60, item.SummaryWordCount)
	assert.Equal(t, []bool{true}, rec.summaries)

	long, err := svc.Summarize(context.Background(), text(30, 12))
	require.NoError(t, err)
	assert.Equal(t, 360, long.InputWordCount)
	assert.LessOrEqual(t, long.SummaryWordCount, 200)
	assert.Equal(t, []bool{true, false}, rec.summaries)

	hist := svc.History()
	require.Len(t, hist, 2)
	assert.Equal(t, long.ID, hist[0].ID)
	assert.Equal(t, item.ID, hist[1].ID)
}

func TestSummaryService_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		kind    string
	}{
		{name: "empty", input: "   ", wantErr: summarizer.ErrEmptyInput, kind: metrics.KindEmpty},
		{name: "too short", input: text(2, 5), wantErr: summarizer.ErrInsufficientLength, kind: metrics.KindTooShort},
		{
			name:    "unprocessable",
			input:   strings.ReplaceAll(text(6, 10), ".", ""),
			wantErr: summarizer.ErrUnprocessableInput,
			kind:    metrics.KindUnprocessable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rec := newService(t, Options{})
			_, err := svc.Summarize(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.kind}, rec.failures)
			assert.Empty(t, rec.summaries)
			assert.Empty(t, svc.History())
		})
	}
}

func TestSummaryService_TooShortMessage(t *testing.T) {
	svc, _ := newService(t, Options{})
	_, err := svc.Summarize(context.Background(), text(2, 5))
	assert.EqualError(t, err, "text must be at least 50 words, current: 10 words")
}

func TestSummaryService_DelayCanceled(t *testing.T) {
	svc, rec := newService(t, Options{Delay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Summarize(ctx, text(6, 10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{metrics.KindCanceled}, rec.failures)
	assert.Empty(t, svc.History())
}

func TestSummaryService_DelayElapses(t *testing.T) {
	svc, _ := newService(t, Options{Delay: 10 * time.Millisecond})

	start := time.Now()
	_, err := svc.Summarize(context.Background(), text(6, 10))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSummaryService_ReuseDeleteReset(t *testing.T) {
	svc, _ := newService(t, Options{})

	first, err := svc.Summarize(context.Background(), text(6, 10))
	require.NoError(t, err)
	second, err := svc.Summarize(context.Background(), text(7, 10))
	require.NoError(t, err)

	got, err := svc.Reuse(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, svc.Delete(first.ID))
	_, err = svc.Reuse(first.ID)
	assert.ErrorIs(t, err, history.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(first.ID), history.ErrNotFound)
	require.Len(t, svc.History(), 1)
	assert.Equal(t, second.ID, svc.History()[0].ID)

	svc.Reset()
	assert.Empty(t, svc.History())
}

func TestSummaryService_Stats(t *testing.T) {
	svc, _ := newService(t, Options{})
	got := svc.Stats("One two. Three")
	assert.Equal(t, 3, got.Words)
	assert.Equal(t, 14, got.Characters)
	assert.Equal(t, 1, got.Sentences)
}
