package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private Prometheus registry so tests can build as many
// instances as they like. The Observe methods are no-ops on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	portfolioQuery  *prometheus.CounterVec
	contactMessages *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		portfolioQuery: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_filter_queries_total",
			Help: "Portfolio filter evaluations, split by whether anything matched",
		}, []string{"result"}),
		contactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Contact form submissions by form kind and outcome",
		}, []string{"kind", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.portfolioQuery,
		m.contactMessages,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Register mounts GET /metrics.
func (m *Metrics) Register(r gin.IRouter) {
	r.GET("/metrics", gin.WrapH(m.Handler()))
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveFilter counts one filter evaluation.
func (m *Metrics) ObserveFilter(matched int) {
	if m == nil {
		return
	}
	result := "hit"
	if matched == 0 {
		result = "empty"
	}
	m.portfolioQuery.WithLabelValues(result).Inc()
}

// ObserveContact counts one contact submission outcome.
func (m *Metrics) ObserveContact(kind, outcome string) {
	if m == nil {
		return
	}
	m.contactMessages.WithLabelValues(kind, outcome).Inc()
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
