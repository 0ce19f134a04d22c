package testing

import "github.com/arloliu/hashring/types"

// Counter is an int64 ring value that merges by addition.
type Counter int64

var _ types.Merger[Counter] = Counter(0)

// Merge returns c + other.
func (c Counter) Merge(other Counter) Counter {
	return c + other
}

// Bag is a ring value that collects items; merging concatenates.
type Bag []string

var _ types.Merger[Bag] = Bag(nil)

// Merge returns b followed by other's items.
func (b Bag) Merge(other Bag) Bag {
	merged := make(Bag, 0, len(b)+len(other))
	merged = append(merged, b...)

	return append(merged, other...)
}
