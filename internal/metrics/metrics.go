package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photopager_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "photopager_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	UpstreamFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "photopager_upstream_fetch_duration_seconds",
		Help:    "Duration of full photo collection fetches from upstream",
		Buckets: prometheus.DefBuckets,
	})

	UpstreamFetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photopager_upstream_fetch_errors_total",
		Help: "Failed upstream photo collection fetches by reason",
	}, []string{"reason"})

	PhotosServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photopager_photos_served_total",
		Help: "Photos rendered across all page views",
	})

	MirrorSyncs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photopager_mirror_syncs_total",
		Help: "Mirror sync runs by result",
	}, []string{"result"})
)
