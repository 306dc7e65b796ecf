package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector registra métricas HTTP en un registry propio (no el global,
// para que los tests puedan crear varios sin colisión de nombres).
type MetricsCollector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetricsCollector construye el collector y registra las métricas.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP atendidas",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	return &MetricsCollector{
		registry:        registry,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
	}
}

// Middleware cuenta y cronometra cada petición. Usa la ruta registrada (no la
// URL cruda) como label para mantener acotada la cardinalidad.
func (mc *MetricsCollector) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		mc.requestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		mc.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el endpoint /metrics en formato Prometheus.
func (mc *MetricsCollector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{}))
}
