package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge

	OperationsApplied *prometheus.CounterVec
	ValidationErrors  prometheus.Counter
	OrdersSubmitted   *prometheus.CounterVec
}

// New создает метрики и регистрирует их в дефолтном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		OperationsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "draft_operations_total",
			Help:        "Selection operations applied to order drafts",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),

		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "draft_validation_errors_total",
			Help:        "Validation errors reported for order drafts",
			ConstLabels: constLabels,
		}),

		OrdersSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "orders_submitted_total",
			Help:        "Orders handed off to the order service",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.OperationsApplied,
		m.ValidationErrors,
		m.OrdersSubmitted,
	)

	return m
}

// IncOperation учитывает применённую к черновику операцию
func (m *Metrics) IncOperation(kind string, outcome string) {
	m.OperationsApplied.WithLabelValues(kind, outcome).Inc()
}

// AddValidationErrors учитывает найденные ошибки валидации
func (m *Metrics) AddValidationErrors(n int) {
	if n > 0 {
		m.ValidationErrors.Add(float64(n))
	}
}

// IncOrderSubmitted учитывает попытку передачи заказа
func (m *Metrics) IncOrderSubmitted(outcome string) {
	m.OrdersSubmitted.WithLabelValues(outcome).Inc()
}

// Noop реализация для запуска без метрик
type Noop struct{}

func (Noop) IncOperation(string, string) {}
func (Noop) AddValidationErrors(int) {}
func (Noop) IncOrderSubmitted(string) {}
