package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics exposes request-level Prometheus instruments.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportsTotal    *prometheus.CounterVec
}

// NewHTTPMetrics registers HTTP instruments with the default registry.
func NewHTTPMetrics() (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uniguide_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "uniguide_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uniguide_feedback_reports_total",
			Help: "Generated feedback reports by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.requestsTotal, m.requestDuration, m.reportsTotal} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return nil, err
		}
	}

	return m, nil
}

// RecordReport increments the report generation counter.
func (m *HTTPMetrics) RecordReport(outcome string) {
	if m == nil {
		return
	}
	m.reportsTotal.WithLabelValues(strings.TrimSpace(outcome)).Inc()
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.requestsTotal.WithLabelValues(route, method, status).Inc()
		m.requestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
