package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pulse_http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulse_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	SignupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pulse_signups_total", Help: "Accounts created"},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pulse_logins_total", Help: "Login attempts"},
		[]string{"outcome"},
	)
	PostsReviewedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pulse_posts_reviewed_total", Help: "Posts moderated"},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal, RequestDuration, SignupsTotal, LoginsTotal, PostsReviewedTotal,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
