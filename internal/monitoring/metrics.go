// internal/monitoring/metrics.go

// Package monitoring exposes Prometheus metrics for the discovery pipeline.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "couponscraper"

// Metrics holds the pipeline counters. Register one instance per process
// and pass it down; a nil *Metrics is valid and records nothing.
type Metrics struct {
	DocumentsFetched  *prometheus.CounterVec
	FetchErrors       *prometheus.CounterVec
	Candidates        prometheus.Counter
	RecordsAccepted   *prometheus.CounterVec
	DuplicatesSkipped prometheus.Counter
	RunDuration       prometheus.Histogram
}

// NewMetrics registers the pipeline metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DocumentsFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_fetched_total",
			Help:      "Documents fetched from each source",
		}, []string{"source"}),

		FetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "Source fetch failures, skipped without aborting the run",
		}, []string{"source"}),

		Candidates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Code candidates found by the pattern extractor",
		}),

		RecordsAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_accepted_total",
			Help:      "New coupon records accepted into the report",
		}, []string{"category"}),

		DuplicatesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_skipped_total",
			Help:      "Candidates dropped because the (code, brand) pair was already seen",
		}),

		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of complete pipeline runs",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// ObserveFetch records a fetched document for a source.
func (m *Metrics) ObserveFetch(source string) {
	if m == nil {
		return
	}
	m.DocumentsFetched.WithLabelValues(source).Inc()
}

// ObserveFetchError records a failed source fetch.
func (m *Metrics) ObserveFetchError(source string) {
	if m == nil {
		return
	}
	m.FetchErrors.WithLabelValues(source).Inc()
}

// ObserveCandidates records extracted candidates.
func (m *Metrics) ObserveCandidates(n int) {
	if m == nil {
		return
	}
	m.Candidates.Add(float64(n))
}

// ObserveAccepted records an accepted record.
func (m *Metrics) ObserveAccepted(category string) {
	if m == nil {
		return
	}
	m.RecordsAccepted.WithLabelValues(category).Inc()
}

// ObserveDuplicate records a dedup skip.
func (m *Metrics) ObserveDuplicate() {
	if m == nil {
		return
	}
	m.DuplicatesSkipped.Inc()
}

// ObserveRunDuration records a completed run.
func (m *Metrics) ObserveRunDuration(seconds float64) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(seconds)
}
