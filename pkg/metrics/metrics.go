package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campspots"

// Metrics owns a private registry with the booking and HTTP collectors
type Metrics struct {
	registry *prometheus.Registry

	bookingsCreated    prometheus.Counter
	bookingsRejected   *prometheus.CounterVec
	bookingTransitions *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	panicsRecovered    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		bookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Booking requests stored as pending.",
		}),
		bookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Booking requests refused, by reason.",
		}, []string{"reason"}),
		bookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Owner decisions on pending bookings, by resulting status.",
		}, []string{"status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.3, 0.6, 1, 3, 6},
		}, []string{"method", "route", "status"}),
		panicsRecovered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_recovered_total",
			Help:      "Requests recovered from a handler panic.",
		}),
	}
}

func (m *Metrics) BookingCreated() {
	m.bookingsCreated.Inc()
}

func (m *Metrics) BookingRejected(reason string) {
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingTransitioned(status string) {
	m.bookingTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) PanicRecovered() {
	m.panicsRecovered.Inc()
}

// Middleware observes request latency labelled by the matched route template
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text or OpenMetrics format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
