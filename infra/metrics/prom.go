// Package metrics implements the core metrics sinks on Prometheus and
// InfluxDB.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/tzbucket/tzbucket/core/metrics"
)

// PromSink records operation events as Prometheus metrics.
type PromSink struct {
	lines    *prometheus.CounterVec
	errs     *prometheus.CounterVec
	requests *prometheus.HistogramVec
}

// NewPromSink registers the sink's collectors on the default
// Prometheus registerer. The metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers collectors on the provided
// registerer. A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tzbucket_lines_total",
		Help: "Total number of input lines processed per operation",
	}, []string{"op"})
	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tzbucket_errors_total",
		Help: "Total number of failed requests per operation and error kind",
	}, []string{"op", "kind"})
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tzbucket_request_duration_seconds",
		Help:    "Duration of completed requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	if err := reg.Register(lines); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			lines = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(errs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			errs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{lines: lines, errs: errs, requests: requests}, nil
}

// RecordLines increments the processed-lines counter.
func (s *PromSink) RecordLines(op string, n int) error {
	s.lines.WithLabelValues(op).Add(float64(n))
	return nil
}

// RecordError increments the error counter.
func (s *PromSink) RecordError(op, kind string) error {
	s.errs.WithLabelValues(op, kind).Inc()
	return nil
}

// RecordRequest observes the request duration histogram.
func (s *PromSink) RecordRequest(op string, d time.Duration) error {
	s.requests.WithLabelValues(op).Observe(d.Seconds())
	return nil
}

var _ coremetrics.Sink = (*PromSink)(nil)
