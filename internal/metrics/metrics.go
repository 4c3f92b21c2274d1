package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "letybo"

// Collector holds the Prometheus metrics of the ordering service
type Collector struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Pricing metrics
	QuotesTotal         *prometheus.CounterVec
	SelectionRejections *prometheus.CounterVec

	// Order metrics
	OrdersPlaced *prometheus.CounterVec
	VialsOrdered *prometheus.CounterVec

	// Support metrics
	SupportRuns        *prometheus.CounterVec
	SupportRunDuration prometheus.Histogram
}

// New registers every metric plus the Go and process collectors on a fresh registry
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers the service metrics on reg
func NewWithRegistry(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		QuotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Total number of quotes computed",
			},
			[]string{"mode", "strategy"},
		),
		SelectionRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selection_rejections_total",
				Help:      "Selection changes rejected by the order form rules",
			},
			[]string{"operation"},
		),

		OrdersPlaced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_placed_total",
				Help:      "Total number of orders placed",
			},
			[]string{"mode"},
		),
		VialsOrdered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vials_ordered_total",
				Help:      "Vials shipped across placed orders",
			},
			[]string{"mode"},
		),

		SupportRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "support_runs_total",
				Help:      "Assistant runs by terminal status",
			},
			[]string{"status"},
		),
		SupportRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "support_run_duration_seconds",
				Help:      "Time from message post to assistant reply",
				Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
	}
}

// Registry is exposed for tests
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
