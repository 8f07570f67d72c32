package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	reviewsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boutique_reviews_submitted_total",
			Help: "Reviews accepted into the catalog.",
		},
	)
	overlayPersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boutique_overlay_persist_failures_total",
			Help: "Review overlay snapshots that could not be written.",
		},
	)
	consultationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boutique_consultations_total",
			Help: "Beauty consultations by outcome.",
		},
		[]string{"outcome"},
	)
	handoffsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boutique_handoffs_total",
			Help: "Messaging handoff links built, by kind.",
		},
		[]string{"kind"},
	)
	sessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boutique_sessions_created_total",
			Help: "Visitor sessions started.",
		},
	)
)

const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordReview() {
	reviewsSubmitted.Inc()
}

func RecordOverlayPersistFailure() {
	overlayPersistFailures.Inc()
}

func RecordConsultation(outcome string) {
	consultationsTotal.WithLabelValues(outcome).Inc()
}

func RecordHandoff(kind string) {
	handoffsTotal.WithLabelValues(kind).Inc()
}

func RecordSessionCreated() {
	sessionsCreated.Inc()
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware must wrap the ServeMux directly: the mux records the matched
// pattern on the request it receives, which is used as the path label.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			pathPattern := r.Pattern
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
