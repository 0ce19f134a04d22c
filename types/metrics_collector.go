package types

// MetricsCollector defines methods for recording ring metrics.
//
// Implementations should be non-blocking and must be safe for concurrent use:
// the ring calls them from whichever goroutine issued the operation.
type MetricsCollector interface {
	// RecordOperation records the outcome of a ring operation.
	//
	// Parameters:
	//   - op: Operation name ("add", "get", "delete")
	//   - success: true if the operation returned no error
	//   - duration: Time taken in seconds
	RecordOperation(op string, success bool, duration float64)

	// RecordMerge records a deleted node's value being merged into its successor.
	RecordMerge()

	// RecordEvictedValueLost records a delete of the last node, whose value had no successor.
	RecordEvictedValueLost()

	// SetNodeCount sets the number of registered nodes (gauge metric).
	SetNodeCount(count int)

	// SetPositionCount sets the number of live positions on the ring (gauge metric).
	SetPositionCount(count int)
}
