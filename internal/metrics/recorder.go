package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records summarization metrics.
type Recorder interface {
	// ObserveSummary records a successful summarization.
	ObserveSummary(inputWords, summaryWords int, fastPath bool, d time.Duration)
	// ObserveFailure records a rejected input by error kind.
	ObserveFailure(kind string)
}

const (
	PathFastPath   = "fast_path"
	PathExtractive = "extractive"

	KindEmpty         = "empty"
	KindTooShort      = "too_short"
	KindUnprocessable = "unprocessable"
	KindCanceled      = "canceled"
	KindOther         = "other"
)

// Noop discards every observation.
type Noop struct{}

func (Noop) ObserveSummary(int, int, bool, time.Duration) {}
func (Noop) ObserveFailure(string)                        {}

// Prometheus implements Recorder on its own registry.
type Prometheus struct {
	registry      *prometheus.Registry
	summaries     *prometheus.CounterVec
	failures      *prometheus.CounterVec
	summaryWords  prometheus.Histogram
	inputWords    prometheus.Histogram
	durationHisto prometheus.Histogram
}

var wordBuckets = []float64{25, 50, 100, 150, 200, 300, 500, 1000, 2000}

// NewPrometheus creates the collectors and registers them on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textsum_summaries_total",
			Help: "Total number of summaries produced, by path",
		}, []string{"path"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textsum_summary_failures_total",
			Help: "Total number of rejected summarization requests, by kind",
		}, []string{"kind"}),
		summaryWords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "textsum_summary_words",
			Help:    "Distribution of summary lengths in words",
			Buckets: wordBuckets,
		}),
		inputWords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "textsum_input_words",
			Help:    "Distribution of input lengths in words",
			Buckets: wordBuckets,
		}),
		durationHisto: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "textsum_summarize_duration_seconds",
			Help:    "Time taken to produce a summary",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	p.registry.MustRegister(p.summaries, p.failures, p.summaryWords, p.inputWords, p.durationHisto)
	return p
}

func (p *Prometheus) ObserveSummary(inputWords, summaryWords int, fastPath bool, d time.Duration) {
	path := PathExtractive
	if fastPath {
		path = PathFastPath
	}
	p.summaries.WithLabelValues(path).Inc()
	p.inputWords.Observe(float64(inputWords))
	p.summaryWords.Observe(float64(summaryWords))
	p.durationHisto.Observe(d.Seconds())
}

func (p *Prometheus) ObserveFailure(kind string) {
	p.failures.WithLabelValues(kind).Inc()
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
