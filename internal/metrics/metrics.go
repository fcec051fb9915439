package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process counters exposed on the scrape endpoint.
// Constructed once at startup and passed in explicitly; there is no
// package-level registry.
type Metrics struct {
	OrdersCreated  prometheus.Counter
	OrdersRejected prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		OrdersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "stylevault_orders_created_total",
			Help: "Orders successfully persisted.",
		}),
		OrdersRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "stylevault_orders_rejected_total",
			Help: "Order submissions rejected by validation.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stylevault_http_requests_total",
			Help: "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "status"}),
	}
}

// NewRegistry builds a registry preloaded with the default process and
// Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
