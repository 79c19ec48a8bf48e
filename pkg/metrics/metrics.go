package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingEventsTotal  *prometheus.CounterVec
	BookingsByStatus    *prometheus.GaugeVec
	NotificationsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
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
		BookingEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_events_total",
			Help:        "Total number of booking lifecycle events",
			ConstLabels: constLabels,
		}, []string{"type"}),
		BookingsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "bookings",
			Help:        "Current number of bookings by status",
			ConstLabels: constLabels,
		}, []string{"status"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Total number of booking notifications by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingEventsTotal,
		m.BookingsByStatus,
		m.NotificationsTotal,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SetBookingCounts обновляет gauge по статусам
func (m *Metrics) SetBookingCounts(pending, confirmed, cancelled int) {
	m.BookingsByStatus.WithLabelValues("pending").Set(float64(pending))
	m.BookingsByStatus.WithLabelValues("confirmed").Set(float64(confirmed))
	m.BookingsByStatus.WithLabelValues("cancelled").Set(float64(cancelled))
}

// ObserveNotification учитывает результат отправки уведомления (sent, link, failed)
func (m *Metrics) ObserveNotification(result string) {
	m.NotificationsTotal.WithLabelValues(result).Inc()
}

// ObserveEvent учитывает доменное событие
func (m *Metrics) ObserveEvent(eventType string) {
	m.BookingEventsTotal.WithLabelValues(eventType).Inc()
}

// ObserveHTTPRequest учитывает HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
