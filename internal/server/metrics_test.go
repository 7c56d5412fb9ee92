package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/scoreboard/internal/logging"
	"github.com/agbru/scoreboard/internal/metrics"
)

// TestNewMetrics tests the Metrics constructor.
func TestNewMetrics(t *testing.T) {
	m := NewMetrics(nil)

	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
}

// TestMetrics_IncrementDecrementActiveRequests tests the active requests gauge.
func TestMetrics_IncrementDecrementActiveRequests(t *testing.T) {
	m := NewMetrics(nil)

	m.IncrementActiveRequests()
	m.IncrementActiveRequests()
	if got := testutil.ToFloat64(m.activeRequests); got != 2 {
		t.Errorf("active requests = %v, want 2", got)
	}
	m.DecrementActiveRequests()
	if got := testutil.ToFloat64(m.activeRequests); got != 1 {
		t.Errorf("active requests = %v, want 1", got)
	}
}

// TestMetrics_WritePrometheus tests the Prometheus metrics endpoint.
func TestMetrics_WritePrometheus(t *testing.T) {
	m := NewMetrics(metrics.NewCollector())

	m.IncrementActiveRequests()
	m.ObserveRequest("GET", 200)

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()

	m.WritePrometheus(rec, req)

	body := rec.Body.String()

	for _, want := range []string{
		"scoreboard_http_active_requests 1",
		`scoreboard_http_requests_total{method="GET",status="200"} 1`,
		"scoreboard_active_games",
		"go_",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

// TestServer_metricsMiddleware tests the metrics tracking middleware.
func TestServer_metricsMiddleware(t *testing.T) {
	t.Run("Next handler is called and status recorded", func(t *testing.T) {
		s := &Server{metrics: NewMetrics(nil)}

		nextCalled := false
		next := func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusTeapot)
		}

		handler := s.metricsMiddleware(next)
		req := httptest.NewRequest("POST", "/api/v1/games", http.NoBody)
		rec := httptest.NewRecorder()

		handler(rec, req)

		if !nextCalled {
			t.Error("next handler was not called")
		}
		if got := testutil.ToFloat64(s.metrics.requests.WithLabelValues("POST", "418")); got != 1 {
			t.Errorf("requests{POST,418} = %v, want 1", got)
		}
		if got := testutil.ToFloat64(s.metrics.activeRequests); got != 0 {
			t.Errorf("active requests = %v, want 0 after completion", got)
		}
	})

	t.Run("Implicit 200 is recorded", func(t *testing.T) {
		s := &Server{metrics: NewMetrics(nil)}

		handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {})
		handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", http.NoBody))

		if got := testutil.ToFloat64(s.metrics.requests.WithLabelValues("GET", "200")); got != 1 {
			t.Errorf("requests{GET,200} = %v, want 1", got)
		}
	})
}

// TestServer_handleMetrics tests the /metrics endpoint handler.
func TestServer_handleMetrics(t *testing.T) {
	t.Run("GET returns metrics", func(t *testing.T) {
		s := &Server{metrics: NewMetrics(nil), logger: newTestLogger()}

		req := httptest.NewRequest("GET", "/metrics", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleMetrics(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "scoreboard_") {
			t.Error("response should contain scoreboard metrics")
		}
	})

	for _, method := range []string{"POST", "PUT", "DELETE"} {
		t.Run(method+" returns method not allowed", func(t *testing.T) {
			s := &Server{metrics: NewMetrics(nil), logger: newTestLogger()}

			req := httptest.NewRequest(method, "/metrics", http.NoBody)
			rec := httptest.NewRecorder()

			s.handleMetrics(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
			}
			if rec.Header().Get("Allow") != "GET" {
				t.Errorf("Allow = %q, want GET", rec.Header().Get("Allow"))
			}
		})
	}
}

// testLogger is a minimal logger for testing that implements logging.Logger.
type testLogger struct{}

func newTestLogger() *testLogger                                  { return &testLogger{} }
func (l *testLogger) Info(_ string, _ ...logging.Field)           {}
func (l *testLogger) Error(_ string, _ error, _ ...logging.Field) {}
func (l *testLogger) Debug(_ string, _ ...logging.Field)          {}
func (l *testLogger) Printf(_ string, _ ...any)                   {}
func (l *testLogger) Println(_ ...any)                            {}
