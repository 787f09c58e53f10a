package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the Prometheus metrics of the API. A nil *Metrics is a valid no-op.
type Metrics struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	payrollRuns       *prometheus.CounterVec
	payrollLines      prometheus.Counter
	shedTransitions   *prometheus.CounterVec
	cronJobExecutions *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "suhuevo_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "suhuevo_http_request_duration_seconds",
		Help:    "HTTP request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	payrollRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "suhuevo_payroll_runs_total",
		Help: "Payroll executions by mode (preview or commit).",
	}, []string{"mode"})
	payrollLines := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "suhuevo_payroll_lines_total",
		Help: "Payroll lines computed.",
	})
	shedTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "suhuevo_shed_status_transitions_total",
		Help: "Shed lifecycle transitions.",
	}, []string{"from", "to"})
	cronJobs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "suhuevo_cron_job_executions_total",
		Help: "Scheduled job executions by job and result.",
	}, []string{"job", "result"})
	registry.MustRegister(requests, duration, payrollRuns, payrollLines, shedTransitions, cronJobs)
	return &Metrics{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:     requests,
		requestDuration:   duration,
		payrollRuns:       payrollRuns,
		payrollLines:      payrollLines,
		shedTransitions:   shedTransitions,
		cronJobExecutions: cronJobs,
	}
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request count and latency per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) PayrollRun(mode string, lines int) {
	if m == nil {
		return
	}
	m.payrollRuns.WithLabelValues(mode).Inc()
	m.payrollLines.Add(float64(lines))
}

func (m *Metrics) ShedTransition(from, to string) {
	if m == nil {
		return
	}
	m.shedTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) CronJob(job string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.cronJobExecutions.WithLabelValues(job, result).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
