package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBConnPoolStats  *prometheus.GaugeVec

	QuizValidations *prometheus.CounterVec
	XPAwarded       *prometheus.CounterVec
	AIRequests      *prometheus.CounterVec
}

// Default is wired by main; nil-safe helpers below make it optional in tests.
var Default *Metrics

func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		DBConnPoolStats: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "db_connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
		QuizValidations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "quiz_validations_total",
				Help:      "Quiz validations by outcome (passed, failed, error)",
			},
			[]string{"outcome"},
		),
		XPAwarded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "xp_awarded_total",
				Help:      "XP granted by source type",
			},
			[]string{"source"},
		),
		AIRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "capacitajun",
				Subsystem: serviceName,
				Name:      "ai_generator_requests_total",
				Help:      "AI generator calls by kind and result",
			},
			[]string{"kind", "result"},
		),
	}
}

// Middleware records count, latency and in-flight requests per route template.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the registry in Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) RecordDBPoolStats(open, inUse, idle int, waitCount int64, waitDuration time.Duration) {
	m.DBConnPoolStats.WithLabelValues("open").Set(float64(open))
	m.DBConnPoolStats.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(idle))
	m.DBConnPoolStats.WithLabelValues("wait_count").Set(float64(waitCount))
	m.DBConnPoolStats.WithLabelValues("wait_duration_ms").Set(float64(waitDuration.Milliseconds()))
}

func ObserveQuiz(outcome string) {
	if Default != nil {
		Default.QuizValidations.WithLabelValues(outcome).Inc()
	}
}

func ObserveXP(source string, points int) {
	if Default != nil && points > 0 {
		Default.XPAwarded.WithLabelValues(source).Add(float64(points))
	}
}

func ObserveAI(kind, result string) {
	if Default != nil {
		Default.AIRequests.WithLabelValues(kind, result).Inc()
	}
}
