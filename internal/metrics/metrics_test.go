package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Observe(3, 8)
	if got := testutil.ToFloat64(m.PlaylistSize); got != 3 {
		t.Errorf("Expected size 3, got %v", got)
	}
	if got := testutil.ToFloat64(m.TotalWeight); got != 8 {
		t.Errorf("Expected total weight 8, got %v", got)
	}
}

func TestMetricsRecordError(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordError(OpPlay, "empty")
	m.RecordError(OpPlay, "empty")
	m.RecordError(OpRemove, "not_found")

	if got := testutil.ToFloat64(m.OperationErrors.WithLabelValues(OpPlay, "empty")); got != 2 {
		t.Errorf("Expected 2 play errors, got %v", got)
	}
	if got := testutil.ToFloat64(m.OperationErrors.WithLabelValues(OpRemove, "not_found")); got != 1 {
		t.Errorf("Expected 1 remove error, got %v", got)
	}
}

func TestRouterServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.SongsPlayed.Inc()

	router := NewRouter(reg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "songplaylist_songs_played_total 1") {
		t.Errorf("Metrics output missing played counter:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("Unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}
