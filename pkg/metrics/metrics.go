package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты обращения к кэшу доступности
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheShared = "shared"
	CacheError  = "error"
)

// Metrics набор метрик агента бронирования.
// Все методы безопасны для nil-получателя, чтобы метрики можно было отключить.
type Metrics struct {
	httpRequestsTotal       *prometheus.CounterVec
	httpRequestDuration     *prometheus.HistogramVec
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	cacheLookupsTotal       *prometheus.CounterVec
	bookingSubmissionsTotal *prometheus.CounterVec
}

// New регистрирует метрики в reg (обычно prometheus.DefaultRegisterer)
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of local API requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Local API request duration",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		upstreamRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_api_requests_total",
			Help:        "Total number of Booking API calls",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		upstreamRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_api_request_duration_seconds",
			Help:        "Booking API call duration",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		cacheLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_lookups_total",
			Help:        "Availability cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		bookingSubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTP учитывает запрос к локальному API
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream учитывает вызов Booking API; status = 0 означает сетевую ошибку
func (m *Metrics) ObserveUpstream(operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamRequestsTotal.WithLabelValues(operation, label).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// CacheLookup учитывает обращение к кэшу доступности
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookupsTotal.WithLabelValues(result).Inc()
}

// BookingSubmitted учитывает результат отправки бронирования
func (m *Metrics) BookingSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.bookingSubmissionsTotal.WithLabelValues(outcome).Inc()
}
