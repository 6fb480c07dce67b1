// internal/monitoring/metrics_test.go
package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveFetch("youtube:deals")
	m.ObserveFetch("youtube:deals")
	m.ObserveFetchError("web:example")
	m.ObserveCandidates(3)
	m.ObserveAccepted("fashion")
	m.ObserveDuplicate()

	if got := testutil.ToFloat64(m.DocumentsFetched.WithLabelValues("youtube:deals")); got != 2 {
		t.Errorf("documents_fetched_total = %v", got)
	}
	if got := testutil.ToFloat64(m.FetchErrors.WithLabelValues("web:example")); got != 1 {
		t.Errorf("fetch_errors_total = %v", got)
	}
	if got := testutil.ToFloat64(m.Candidates); got != 3 {
		t.Errorf("candidates_total = %v", got)
	}
	if got := testutil.ToFloat64(m.RecordsAccepted.WithLabelValues("fashion")); got != 1 {
		t.Errorf("records_accepted_total = %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	m.ObserveFetch("x")
	m.ObserveFetchError("x")
	m.ObserveCandidates(1)
	m.ObserveAccepted("general")
	m.ObserveDuplicate()
	m.ObserveRunDuration(1.5)
}
