package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"everafter/internal/metrics"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.IntentsCreated.WithLabelValues("luxury", metrics.OutcomeOK).Inc()

	if got := testutil.ToFloat64(a.IntentsCreated.WithLabelValues("luxury", metrics.OutcomeOK)); got != 1 {
		t.Fatalf("a: want 1, got %v", got)
	}
	if got := testutil.ToFloat64(b.IntentsCreated.WithLabelValues("luxury", metrics.OutcomeOK)); got != 0 {
		t.Fatalf("b: want 0, got %v", got)
	}
}

func TestHandler_ExposesDomainCounters(t *testing.T) {
	m := metrics.New()
	m.Notifications.WithLabelValues("contract", metrics.OutcomeOK).Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `everafter_notifications_total{kind="contract",outcome="ok"} 1`) {
		t.Fatalf("counter missing from exposition:\n%s", body)
	}
}
