package types

// Hasher computes the ring positions of a key.
//
// Implementations must be deterministic: the same key and weight always yield
// the same position, within a process and across processes. Positions for a
// given key should be spread roughly uniformly over the 128-bit keyspace.
type Hasher[K any] interface {
	// Position returns the ring position of the weight-th replica of key.
	Position(key K, weight int) Position
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[K any] func(key K, weight int) Position

// Position calls f(key, weight).
func (f HasherFunc[K]) Position(key K, weight int) Position {
	return f(key, weight)
}
