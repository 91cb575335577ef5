package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read metrics body: %v", err)
	}
	return string(body)
}

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	m := NewMetrics()

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	routeCtx := chi.NewRouteContext()
	routeCtx.RoutePatterns = append(routeCtx.RoutePatterns, "/todos")
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected wrapped handler status, got %d", rec.Code)
	}

	body := scrape(t, m)
	if !strings.Contains(body, `tasklane_http_requests_total{code="418",route="/todos"} 1`) {
		t.Fatalf("request counter missing from metrics output:\n%s", body)
	}
	if !strings.Contains(body, `tasklane_http_request_duration_seconds_bucket{route="/todos"`) {
		t.Fatalf("duration histogram missing from metrics output:\n%s", body)
	}
}

func TestMetricsRegistererAcceptsCustomCollector(t *testing.T) {
	m := NewMetrics()

	jobs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tasklane_background_jobs_total",
		Help: "Number of completed background jobs.",
	})
	if err := m.Registerer().Register(jobs); err != nil {
		t.Fatalf("register custom collector: %v", err)
	}
	jobs.Inc()

	body := scrape(t, m)
	if !strings.Contains(body, "tasklane_background_jobs_total 1") {
		t.Fatalf("custom collector missing from metrics output:\n%s", body)
	}
}
