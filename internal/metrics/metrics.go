package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/ErlanBelekov/superpoll-api/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Auth metrics

	AuthAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "superpoll",
		Name:      "auth_attempts_total",
		Help:      "Sign-in attempts, by outcome.",
	}, []string{"outcome"})

	// Error log sink

	ErrorLogFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "superpoll",
		Name:      "error_log_failures_total",
		Help:      "Server errors that could not be written to the error log.",
	})

	ErrorLogsPrunedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "superpoll",
		Name:      "error_logs_pruned_total",
		Help:      "Error log records removed by the janitor.",
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "superpoll",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "superpoll",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		AuthAttemptsTotal,
		ErrorLogFailuresTotal,
		ErrorLogsPrunedTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer exposes /metrics and the liveness/readiness probes on a
// separate listener from the public API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	status := http.StatusOK
	if result.Status != "up" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
