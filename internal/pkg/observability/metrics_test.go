package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	m := NewMetrics()
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	routeCtx := chi.NewRouteContext()
	routeCtx.RoutePatterns = append(routeCtx.RoutePatterns, "/api/v1/sheds/{id}")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sheds/abc", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	body := scrape(t, m)
	assert.Contains(t, body, `suhuevo_http_requests_total{code="418",route="/api/v1/sheds/{id}"} 1`)
	assert.Contains(t, body, `suhuevo_http_request_duration_seconds_bucket{route="/api/v1/sheds/{id}"`)
}

func TestDomainCounters(t *testing.T) {
	m := NewMetrics()
	m.PayrollRun("preview", 3)
	m.PayrollRun("commit", 2)
	m.ShedTransition("production", "inactive")
	m.CronJob("payroll-autoclose", errors.New("db down"))

	body := scrape(t, m)
	assert.Contains(t, body, `suhuevo_payroll_runs_total{mode="preview"} 1`)
	assert.Contains(t, body, `suhuevo_payroll_lines_total 5`)
	assert.Contains(t, body, `suhuevo_shed_status_transitions_total{from="production",to="inactive"} 1`)
	assert.Contains(t, body, `suhuevo_cron_job_executions_total{job="payroll-autoclose",result="failure"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.PayrollRun("commit", 1)
	m.ShedTransition("a", "b")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
