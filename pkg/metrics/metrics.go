package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы допуска бронирования
const (
	AdmissionAdmitted         = "admitted"
	AdmissionSlotFull         = "slot_full"
	AdmissionServiceTypeLimit = "service_type_limit"
	AdmissionSlotBusy         = "slot_busy"
	AdmissionInvalid          = "invalid"
	AdmissionError            = "error"
)

// Внешние зависимости, для которых применяется graceful degradation
const (
	DependencyCalendar = "calendar"
	DependencyCatalog  = "catalog"
	DependencyLocker   = "locker"
)

// Metrics набор Prometheus метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	slotQueriesTotal *prometheus.CounterVec
	slotsReturned    *prometheus.HistogramVec
	admissionsTotal  *prometheus.CounterVec
	degradedLookups  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		dbConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state.",
			},
			[]string{"service", "state"},
		),
		slotQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salon_slot_queries_total",
				Help: "Slot queries by resolved day state.",
			},
			[]string{"service", "day"},
		),
		slotsReturned: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salon_slots_returned",
				Help:    "Number of slots returned per query.",
				Buckets: []float64{0, 1, 2, 4, 8, 12, 16, 24, 32},
			},
			[]string{"service"},
		),
		admissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salon_admissions_total",
				Help: "Booking admission attempts by outcome.",
			},
			[]string{"service", "outcome"},
		),
		degradedLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salon_degraded_lookups_total",
				Help: "External lookups that failed and were replaced by defaults.",
			},
			[]string{"service", "dependency"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbConnections,
		m.slotQueriesTotal,
		m.slotsReturned,
		m.admissionsTotal,
		m.degradedLookups,
	)

	return m
}

// ObserveHTTPRequest записывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// ObserveSlotQuery записывает результат запроса слотов
func (m *Metrics) ObserveSlotQuery(open bool, slots int) {
	if m == nil {
		return
	}
	day := "closed"
	if open {
		day = "open"
	}
	m.slotQueriesTotal.WithLabelValues(m.serviceName, day).Inc()
	m.slotsReturned.WithLabelValues(m.serviceName).Observe(float64(slots))
}

// IncAdmission увеличивает счетчик исходов допуска бронирования
func (m *Metrics) IncAdmission(outcome string) {
	if m == nil {
		return
	}
	m.admissionsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// IncDegraded увеличивает счетчик деградировавших внешних запросов
func (m *Metrics) IncDegraded(dependency string) {
	if m == nil {
		return
	}
	m.degradedLookups.WithLabelValues(m.serviceName, dependency).Inc()
}
