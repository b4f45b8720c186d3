package telemetry

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus observability primitives for the billing API.
type Metrics struct {
	apiRequests       *prometheus.CounterVec
	apiDuration       *prometheus.HistogramVec
	documentsRendered *prometheus.CounterVec
	renderDuration    *prometheus.HistogramVec
	emailsDispatched  *prometheus.CounterVec
	dispatchFailures  *prometheus.CounterVec
}

// NewMetrics registers on the process-wide default registry.
func NewMetrics() *Metrics {
	return NewMetricsFor(prometheus.DefaultRegisterer)
}

// NewMetricsFor registers and returns Prometheus metrics on reg.
func NewMetricsFor(reg prometheus.Registerer) *Metrics {
	apiRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kyberbiz_api_requests_total",
		Help: "Counts API requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	apiDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kyberbiz_api_duration_seconds",
		Help:    "API request latency per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	documentsRendered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kyberbiz_documents_rendered_total",
		Help: "PDF documents generated by kind and theme.",
	}, []string{"kind", "theme"})

	renderDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kyberbiz_document_render_duration_seconds",
		Help:    "PDF generation durations by kind.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	emailsDispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kyberbiz_emails_dispatched_total",
		Help: "Outbound billing emails by kind.",
	}, []string{"kind"})

	dispatchFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kyberbiz_email_dispatch_failures_total",
		Help: "Failed outbound email attempts by kind.",
	}, []string{"kind"})

	reg.MustRegister(
		apiRequests,
		apiDuration,
		documentsRendered,
		renderDuration,
		emailsDispatched,
		dispatchFailures,
	)

	return &Metrics{
		apiRequests:       apiRequests,
		apiDuration:       apiDuration,
		documentsRendered: documentsRendered,
		renderDuration:    renderDuration,
		emailsDispatched:  emailsDispatched,
		dispatchFailures:  dispatchFailures,
	}
}

// ObserveDocumentRendered records one generated document.
func (m *Metrics) ObserveDocumentRendered(kind, theme string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documentsRendered.WithLabelValues(kind, theme).Inc()
	m.renderDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveEmailDispatched records one outbound email attempt.
func (m *Metrics) ObserveEmailDispatched(kind string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.dispatchFailures.WithLabelValues(kind).Inc()
		return
	}
	m.emailsDispatched.WithLabelValues(kind).Inc()
}

// GinMiddleware records request counts and latency per route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.apiRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.apiDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
