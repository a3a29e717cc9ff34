package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrorsTotal *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	AvailabilityChecksTotal *prometheus.CounterVec
	AppointmentsTotal       *prometheus.CounterVec
	NotificationsTotal      *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AvailabilityChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Availability decisions by outcome (available, invalid, conflict, unknown)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		AppointmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_total",
			Help:        "Appointment lifecycle events",
			ConstLabels: constLabels,
		}, []string{"event"}),

		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Sent notifications by kind and result",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		m.DBQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// IncAvailabilityCheck фиксирует результат проверки доступности
func (m *Metrics) IncAvailabilityCheck(outcome string) {
	if m == nil {
		return
	}
	m.AvailabilityChecksTotal.WithLabelValues(outcome).Inc()
}

// IncAppointmentEvent фиксирует событие жизненного цикла записи
func (m *Metrics) IncAppointmentEvent(event string) {
	if m == nil {
		return
	}
	m.AppointmentsTotal.WithLabelValues(event).Inc()
}

// IncNotification фиксирует отправку уведомления
func (m *Metrics) IncNotification(kind string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.NotificationsTotal.WithLabelValues(kind, result).Inc()
}
