// internal/monitoring/metrics.go
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Métriques Prometheus pour le service Combatlog
var (
	LinesParsedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "combatlog_lines_parsed_total",
			Help: "Total number of log lines parsed, by event kind",
		},
		[]string{"kind"},
	)

	ParseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "combatlog_parse_duration_seconds",
			Help:    "Duration of full log parses",
			Buckets: prometheus.DefBuckets,
		},
	)

	ResolverFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "combatlog_resolver_failures_total",
			Help: "Total number of failed action identity resolutions",
		},
	)

	EncountersUploadedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "combatlog_encounters_uploaded_total",
			Help: "Total number of uploaded encounters",
		},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// Metrics structure pour gérer les métriques
type Metrics struct {
	registry *prometheus.Registry
}

// NewMetrics crée une nouvelle instance de metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	// Enregistrer les métriques
	registry.MustRegister(LinesParsedTotal)
	registry.MustRegister(ParseDuration)
	registry.MustRegister(ResolverFailuresTotal)
	registry.MustRegister(EncountersUploadedTotal)
	registry.MustRegister(HTTPRequestsTotal)
	registry.MustRegister(HTTPRequestDuration)

	logrus.Info("Prometheus metrics initialized")

	return &Metrics{
		registry: registry,
	}
}

// Handler retourne le handler Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware Prometheus pour instrumenter les requêtes HTTP
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}
