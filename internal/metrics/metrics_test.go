package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"memberqa-backend/internal/models"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveQuestion(models.OutcomeAnswered)
	m.ObserveQuestion(models.OutcomeAnswered)
	m.ObserveQuestion(models.OutcomeNoMatch)
	m.ObserveFetch(20*time.Millisecond, "")
	m.ObserveFetch(5*time.Second, FetchFailureUpstream)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuestionsTotal.WithLabelValues("answered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuestionsTotal.WithLabelValues("no_match")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchFailuresTotal.WithLabelValues(FetchFailureUpstream)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FetchFailuresTotal.WithLabelValues(FetchFailurePayload)))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuestion(models.OutcomeFallback)
		m.ObserveFetch(time.Second, FetchFailureEmpty)
	})
}
