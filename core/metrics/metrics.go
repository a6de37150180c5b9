// Package metrics declares the observability surface of the tool.
// Sinks record how many input lines each operation processed, which
// errors occurred and how long requests took; implementations live in
// infra/metrics.
package metrics

import (
	"errors"
	"io"
	"time"
)

// Sink records operational events. Implementations must be safe for
// concurrent use.
type Sink interface {
	// RecordLines counts processed input lines for an operation
	// ("bucket", "range", "explain").
	RecordLines(op string, n int) error
	// RecordError counts a failed request by operation and error kind
	// ("parse", "policy", "runtime").
	RecordError(op, kind string) error
	// RecordRequest observes the duration of one completed request.
	RecordRequest(op string, d time.Duration) error
}

// Config selects which sinks are active.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`

	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordLines(string, int) error             { return nil }
func (NopSink) RecordError(string, string) error          { return nil }
func (NopSink) RecordRequest(string, time.Duration) error { return nil }

// MultiSink fans events out to several sinks and joins their errors.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordLines(op string, n int) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordLines(op, n))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordError(op, kind string) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordError(op, kind))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordRequest(op string, d time.Duration) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordRequest(op, d))
	}
	return errors.Join(errs...)
}

// Close releases every wrapped sink that holds resources.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
