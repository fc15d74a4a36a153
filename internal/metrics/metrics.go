package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cargoeta"

// Collector holds the service metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	etaCalculations   *prometheus.CounterVec
	etaDuration       prometheus.Histogram
	containerLookups  *prometheus.CounterVec
	httpRequestsTotal *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		etaCalculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "eta",
				Name:      "calculations_total",
				Help:      "ETA calculations by result",
			},
			[]string{"result"},
		),

		etaDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "eta",
				Name:      "calculation_duration_seconds",
				Help:      "ETA calculation latency",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		),

		containerLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "containers",
				Name:      "lookups_total",
				Help:      "Container lookups by result and source",
			},
			[]string{"result", "source"},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status_code"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.etaCalculations,
		c.etaDuration,
		c.containerLookups,
		c.httpRequestsTotal,
	)
	return c
}

func (c *Collector) RecordEtaCalculation(result string, took time.Duration) {
	if c == nil {
		return
	}
	c.etaCalculations.WithLabelValues(result).Inc()
	c.etaDuration.Observe(took.Seconds())
}

func (c *Collector) RecordContainerLookup(result, source string) {
	if c == nil {
		return
	}
	c.containerLookups.WithLabelValues(result, source).Inc()
}

func (c *Collector) RecordHTTPRequest(method, route, statusCode string) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
