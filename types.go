package hashring

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/hashring/internal/logger"
	"github.com/arloliu/hashring/internal/logging"
	"github.com/arloliu/hashring/internal/metrics"
	"github.com/arloliu/hashring/types"
)

// Re-export contracts from the types package.
//
// Internal packages depend on types rather than the root package; these
// aliases let callers write hashring.Position, hashring.Logger, and so on.
type (
	Position         = types.Position
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Hasher computes ring positions for keys of type K.
type Hasher[K any] = types.Hasher[K]

// HasherFunc adapts a function to the Hasher interface.
type HasherFunc[K any] = types.HasherFunc[K]

// Merger is implemented by ring values that can absorb another value.
type Merger[V any] = types.Merger[V]

// NewSlogLogger returns a Logger backed by logger (slog.Default() if nil).
func NewSlogLogger(l *slog.Logger) Logger {
	return logging.NewSlog(l)
}

// NewNopLogger returns a Logger that discards all messages.
func NewNopLogger() Logger {
	return logger.NewNop()
}

// NewPrometheusMetrics returns a MetricsCollector that registers ring metrics
// on reg (prometheus.DefaultRegisterer if nil) under namespace ("hashring" if empty).
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
