// Package metrics provides MetricsCollector implementations for the ring.
package metrics

import "github.com/arloliu/hashring/types"

// NopMetrics discards all metrics. It is the ring's default collector.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordOperation discards the operation metric.
func (n *NopMetrics) RecordOperation(_ /* op */ string, _ /* success */ bool, _ /* duration */ float64) {
	// No-op
}

// RecordMerge discards the merge metric.
func (n *NopMetrics) RecordMerge() {
	// No-op
}

// RecordEvictedValueLost discards the evicted value loss metric.
func (n *NopMetrics) RecordEvictedValueLost() {
	// No-op
}

// SetNodeCount discards the node count metric.
func (n *NopMetrics) SetNodeCount(_ /* count */ int) {
	// No-op
}

// SetPositionCount discards the position count metric.
func (n *NopMetrics) SetPositionCount(_ /* count */ int) {
	// No-op
}
