package metrics

import (
	"jobportal-auth/internal/version"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func init() {
	prometheus.MustRegister(version.Collector(Namespace))
}

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_login_attempts_total",
			Help: "Total number of login attempts by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	TokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_token_refreshes_total",
			Help: "Total number of access token refresh attempts by outcome",
		},
		[]string{"outcome"},
	)

	SessionDecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_session_decode_failures_total",
			Help: "Total number of session cookies that could not be decoded",
		},
		[]string{"reason"},
	)

	SessionsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_sessions_issued_total",
			Help: "Total number of session cookies issued",
		},
	)

	IdentityRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_identity_request_duration_seconds",
			Help:    "Time to complete identity API requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	IdentityRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_identity_request_errors_total",
			Help: "Total number of failed identity API requests",
		},
		[]string{"endpoint"},
	)
)
