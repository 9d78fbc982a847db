package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Business metrics
	PagesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_served_total",
			Help: "Total number of localized page views served",
		},
		[]string{"page", "locale"},
	)

	PageCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_hits_total",
			Help: "Page view cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	ContactSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of accepted contact form submissions",
		},
	)
)
