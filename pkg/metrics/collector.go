// Package metrics instruments SpaceTraders API traffic with Prometheus.
//
// The library itself records nothing; callers opt in by wrapping the
// transport of the *http.Client they hand to api.NewClientWithConfig:
//
//	collector := metrics.NewCollector()
//	_ = collector.Register(prometheus.DefaultRegisterer)
//	httpClient := &http.Client{Transport: metrics.NewInstrumentedTransport(nil, collector)}
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "spacetraders"
	subsystem = "client"
)

// Collector holds the API request metrics
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewCollector creates an unregistered collector
func NewCollector() *Collector {
	return &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by method, endpoint, and status code",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration distribution",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"method", "endpoint"},
		),

		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_requests_in_flight",
				Help:      "Number of API requests awaiting a response",
			},
		),
	}
}

// Register registers every metric with reg
func (c *Collector) Register(reg prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		c.requestsTotal,
		c.requestDuration,
		c.inFlight,
	}

	for _, metric := range metrics {
		if err := reg.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordRequest records a completed request. statusCode is 0 when no
// response was received.
func (c *Collector) RecordRequest(method, endpoint string, statusCode int, duration float64) {
	c.requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.WithLabelValues(method, endpoint).Observe(duration)
}
