package hashring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/hashring/types"
)

// Option configures a Ring with optional dependencies.
type Option func(*ringOptions)

// ringOptions holds optional Ring configuration.
type ringOptions struct {
	logger     types.Logger
	metrics    types.MetricsCollector
	registerer prometheus.Registerer
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation, e.g. NewSlogLogger or NewNopLogger
//
// Example:
//
//	ring, err := hashring.New[string, Shard](150, hashring.WithLogger(hashring.NewSlogLogger(slog.Default())))
func WithLogger(logger Logger) Option {
	return func(o *ringOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *ringOptions) {
		o.metrics = metrics
	}
}

// WithRegisterer sets the Prometheus registerer used by NewFromConfig when
// metrics are enabled in the configuration. It has no effect on New.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *ringOptions) {
		o.registerer = reg
	}
}

func applyOptions(opts []Option) ringOptions {
	var options ringOptions
	for _, opt := range opts {
		opt(&options)
	}

	return options
}
