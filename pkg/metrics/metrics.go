package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	QuotesTotal         *prometheus.CounterVec
	QuoteTotalAmount    *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
}

// New создает и регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		QuotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "quotes_total",
				Help:        "Price quotes by space type and outcome (priced or invalid reason)",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"space_type", "outcome"},
		),
		QuoteTotalAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "quote_total_clp",
				Help:        "Distribution of priced quote totals in CLP",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{10000, 25000, 50000, 100000, 200000, 400000, 800000, 1600000},
			},
			[]string{"space_type"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query duration in seconds",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections",
				Help:        "Database connection pool state",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"state"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QuotesTotal,
		m.QuoteTotalAmount,
		m.DBQueryDuration,
		m.DBOpenConnections,
	)

	return m
}

// ObserveQuote фиксирует результат расчета. outcome - "priced" или причина отказа.
// Безопасен для nil-получателя, чтобы use case работал с выключенными метриками.
func (m *Metrics) ObserveQuote(spaceType, outcome string, total int64) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(spaceType, outcome).Inc()
	if outcome == "priced" {
		m.QuoteTotalAmount.WithLabelValues(spaceType).Observe(float64(total))
	}
}
