package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrdersCreated prometheus.Counter
}

func New(service string) *ServerMetrics {
	return NewWith(service, prometheus.DefaultRegisterer)
}

func NewWith(service string, reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nothing",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nothing",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nothing",
		Subsystem: service,
		Name:      "orders_created_total",
		Help:      "Total number of orders created at checkout.",
	})

	reg.MustRegister(requests, latency, ordersCreated)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, OrdersCreated: ordersCreated}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
