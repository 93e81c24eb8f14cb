// Package metrics holds the Prometheus collectors for the HTTP layer and the
// archive lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growth_http_requests_total",
			Help: "Total HTTP requests handled by the API.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "growth_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ArchivesSubmitted counts archives that reached the store.
	ArchivesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "growth_archives_submitted_total",
		Help: "Archives submitted by users.",
	})

	// ArchivesAutoApproved counts archives approved by the random gate.
	ArchivesAutoApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "growth_archives_auto_approved_total",
		Help: "Archives approved automatically right after submission.",
	})

	// NotificationsDispatched counts committed notifications by type.
	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growth_notifications_dispatched_total",
			Help: "Notifications written for users, by type.",
		},
		[]string{"type"},
	)
)

// Middleware records request count and latency. The route template is used
// as the path label so ids do not blow up cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
