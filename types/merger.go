package types

// Merger is implemented by ring values that can absorb another value of the
// same type.
//
// Merge is called exactly once when a node is deleted: the receiver is the
// value of the surviving successor node, other is the evicted value, and the
// returned value replaces the successor's stored value.
type Merger[V any] interface {
	Merge(other V) V
}
