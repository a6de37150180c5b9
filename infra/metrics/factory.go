package metrics

import (
	"fmt"

	"github.com/tzbucket/tzbucket/core/logger"
	coremetrics "github.com/tzbucket/tzbucket/core/metrics"
)

// NewSink assembles the configured sinks into a single Sink. With no
// sink enabled it returns a NopSink.
func NewSink(cfg coremetrics.Config, log logger.Logger) (coremetrics.Sink, error) {
	var sinks []coremetrics.Sink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg, log))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	}
	return coremetrics.NewMultiSink(sinks...), nil
}
