package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/hashring/types"
)

// DefaultNamespace is used when NewPrometheus receives an empty namespace.
const DefaultNamespace = "hashring"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered on first use, or by Register, so
// constructing a PrometheusCollector that is never exercised leaves the
// registerer untouched. Collectors sharing a registerer and namespace share the
// same series: metrics that are already registered are adopted, not duplicated.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once
	regErr    error

	operations     *prometheus.CounterVec
	opLatency      *prometheus.HistogramVec
	merges         prometheus.Counter
	evictedLost    prometheus.Counter
	nodesGauge     prometheus.Gauge
	positionsGauge prometheus.Gauge
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "hashring" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

// Register creates and registers the ring metrics if that has not happened yet.
//
// Returns:
//   - error: Registration conflict with an incompatible metric of the same
//     name, nil if every metric is registered or adopted. The collector keeps
//     recording into its unregistered metrics after an error.
func (p *PrometheusCollector) Register() error {
	p.ensureRegistered()

	return p.regErr
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ring",
			Name:      "operations_total",
			Help:      "Total ring operations by operation and success.",
		}, []string{"op", "success"})

		p.opLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "ring",
			Name:      "operation_duration_seconds",
			Help:      "Latency of ring operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10), // 100ns .. ~26ms
		}, []string{"op"})

		p.merges = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ring",
			Name:      "merges_total",
			Help:      "Total deleted-node values merged into a successor.",
		})

		p.evictedLost = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ring",
			Name:      "evicted_values_lost_total",
			Help:      "Total deletes of the last node whose value had no successor to merge into.",
		})

		p.nodesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "ring",
			Name:      "nodes",
			Help:      "Current number of registered nodes.",
		})

		p.positionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "ring",
			Name:      "positions",
			Help:      "Current number of live positions (virtual nodes).",
		})

		var errs []error
		p.operations = register(p.reg, p.operations, &errs)
		p.opLatency = register(p.reg, p.opLatency, &errs)
		p.merges = register(p.reg, p.merges, &errs)
		p.evictedLost = register(p.reg, p.evictedLost, &errs)
		p.nodesGauge = register(p.reg, p.nodesGauge, &errs)
		p.positionsGauge = register(p.reg, p.positionsGauge, &errs)
		p.regErr = errors.Join(errs...)
	})
}

// register registers c on reg and returns the collector to record into: c
// itself, or the equivalent collector registered earlier. Other registration
// errors are appended to errs and c is returned unregistered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C, errs *[]error) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	*errs = append(*errs, fmt.Errorf("register ring metrics: %w", err))

	return c
}

// RecordOperation counts the operation and observes its latency.
func (p *PrometheusCollector) RecordOperation(op string, success bool, duration float64) {
	p.ensureRegistered()
	p.operations.WithLabelValues(op, strconv.FormatBool(success)).Inc()
	p.opLatency.WithLabelValues(op).Observe(duration)
}

// RecordMerge increments the merge counter.
func (p *PrometheusCollector) RecordMerge() {
	p.ensureRegistered()
	p.merges.Inc()
}

// RecordEvictedValueLost increments the lost evicted value counter.
func (p *PrometheusCollector) RecordEvictedValueLost() {
	p.ensureRegistered()
	p.evictedLost.Inc()
}

// SetNodeCount sets the registered node gauge.
func (p *PrometheusCollector) SetNodeCount(count int) {
	p.ensureRegistered()
	p.nodesGauge.Set(float64(count))
}

// SetPositionCount sets the live position gauge.
func (p *PrometheusCollector) SetPositionCount(count int) {
	p.ensureRegistered()
	p.positionsGauge.Set(float64(count))
}
