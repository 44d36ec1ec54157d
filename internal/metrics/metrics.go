// Package metrics exposes Prometheus collectors for the ask pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"memberqa-backend/internal/models"
)

// Fetch failure kinds used as the "kind" label.
const (
	FetchFailureUpstream = "upstream"
	FetchFailurePayload  = "payload"
	FetchFailureEmpty    = "empty"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
//
// Metrics:
//   - memberqa_questions_total{outcome} - answered questions by outcome
//   - memberqa_fetch_failures_total{kind} - failed message fetches by kind
//   - memberqa_fetch_duration_seconds - message fetch latency
type Metrics struct {
	QuestionsTotal     *prometheus.CounterVec
	FetchFailuresTotal *prometheus.CounterVec
	FetchDuration      prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QuestionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memberqa_questions_total",
				Help: "Total number of questions answered, by outcome",
			},
			[]string{"outcome"}, // "answered", "fallback" or "no_match"
		),
		FetchFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memberqa_fetch_failures_total",
				Help: "Total number of failed message fetches, by kind",
			},
			[]string{"kind"},
		),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "memberqa_fetch_duration_seconds",
			Help:    "Duration of message source fetches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
	}
}

// ObserveQuestion counts one answered question.
func (m *Metrics) ObserveQuestion(outcome models.Outcome) {
	if m == nil {
		return
	}
	m.QuestionsTotal.WithLabelValues(string(outcome)).Inc()
}

// ObserveFetch records a fetch that took d. kind is empty on success.
func (m *Metrics) ObserveFetch(d time.Duration, kind string) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
	if kind != "" {
		m.FetchFailuresTotal.WithLabelValues(kind).Inc()
	}
}
