package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncOperation(t *testing.T) {
	m := New()
	m.IncOperation("guest", "add", OutcomeSuccess)
	m.IncOperation("guest", "add", OutcomeSuccess)
	m.IncOperation("guest", "add", OutcomeDuplicate)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("guest", "add", OutcomeSuccess)); got != 2 {
		t.Errorf("Expected 2 successful adds, got %v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("guest", "add", OutcomeDuplicate)); got != 1 {
		t.Errorf("Expected 1 duplicate, got %v", got)
	}
}

func TestObservePersistCountsFailures(t *testing.T) {
	m := New()
	m.ObservePersist("venue", 3*time.Millisecond, nil)
	m.ObservePersist("venue", 5*time.Millisecond, errors.New("disk full"))

	if got := testutil.CollectAndCount(m.persist); got != 1 {
		t.Errorf("Expected one histogram series, got %d", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("venue", "persist", OutcomePersistence)); got != 1 {
		t.Errorf("Expected 1 persistence failure, got %v", got)
	}
}

func TestSetRecords(t *testing.T) {
	m := New()
	m.SetRecords("client", 4)
	m.SetRecords("client", 3)
	if got := testutil.ToFloat64(m.records.WithLabelValues("client")); got != 3 {
		t.Errorf("Expected gauge 3, got %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.IncOperation("guest", "add", OutcomeSuccess)
	m.ObservePersist("guest", time.Second, nil)
	m.SetRecords("guest", 1)
	if m.Registry() != nil {
		t.Error("Nil metrics should report nothing")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.IncOperation("event", "delete", OutcomeNotFound)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `fete_operations_total{kind="event",op="delete",outcome="not_found"} 1`) {
		t.Errorf("Expected operation counter in exposition, got:\n%s", body)
	}
}
