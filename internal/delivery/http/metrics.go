package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/unipro/glassfinder/internal/usecase"
)

const (
	labelMethod = "method"
	labelPath   = "path"
	labelStatus = "status"

	unmatchedPath = "unmatched"
)

// Metrics holds the Prometheus collectors for the HTTP API
type Metrics struct {
	registry *prometheus.Registry
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics registers request collectors, plus catalog size gauges when
// catalogService is not nil, on a private registry
func NewMetrics(catalogService *usecase.CatalogService) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unipro_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{labelMethod, labelPath, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "unipro_http_request_duration_seconds",
				Help:    "HTTP latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{labelMethod, labelPath},
		),
	}
	reg.MustRegister(m.Requests, m.Latency)

	if catalogService != nil {
		reg.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "unipro_catalog_models",
				Help: "Mobile models in the loaded catalog",
			}, func() float64 {
				models, _ := catalogService.Stats()
				return float64(models)
			}),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "unipro_catalog_products",
				Help: "Products in the loaded catalog",
			}, func() float64 {
				_, products := catalogService.Stats()
				return float64(products)
			}),
		)
	}

	return m
}

// Register adds extra collectors, such as cache statistics
func (m *Metrics) Register(collectors ...prometheus.Collector) {
	m.registry.MustRegister(collectors...)
}

// Middleware records request count and latency by route pattern
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}

		m.Latency.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
		m.Requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
