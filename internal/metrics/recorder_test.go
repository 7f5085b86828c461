package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_ObserveSummary(t *testing.T) {
	p := NewPrometheus()

	p.ObserveSummary(300, 190, false, 2*time.Millisecond)
	p.ObserveSummary(120, 120, true, time.Millisecond)
	p.ObserveSummary(80, 80, true, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.summaries.WithLabelValues(PathExtractive)))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.summaries.WithLabelValues(PathFastPath)))
	assert.Equal(t, 2, testutil.CollectAndCount(p.summaries))
}

func TestPrometheus_ObserveFailure(t *testing.T) {
	p := NewPrometheus()

	p.ObserveFailure(KindTooShort)
	p.ObserveFailure(KindTooShort)
	p.ObserveFailure(KindEmpty)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.failures.WithLabelValues(KindTooShort)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.failures.WithLabelValues(KindEmpty)))
}

func TestPrometheus_IndependentRegistries(t *testing.T) {
	a := NewPrometheus()
	b := NewPrometheus()

	a.ObserveFailure(KindOther)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.failures.WithLabelValues(KindOther)))
}

func TestPrometheus_Handler(t *testing.T) {
	p := NewPrometheus()
	p.ObserveSummary(250, 150, false, time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `textsum_summaries_total{path="extractive"} 1`))
	assert.Contains(t, body, "textsum_summary_words_bucket")
}

func TestNoop(t *testing.T) {
	var r Recorder = Noop{}
	assert.NotPanics(t, func() {
		r.ObserveSummary(1, 1, true, 0)
		r.ObserveFailure(KindOther)
	})
}
