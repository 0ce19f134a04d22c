// Package testing provides test utilities for code built on hashring.
//
// It follows Go's convention of shipping testing helpers in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - Counter: an int64 ring value that merges by addition
//   - PositionTable: a Hasher with explicitly pinned positions, for
//     deterministic successor and wrap-around scenarios
//   - NewTestLogger: a Logger writing through testing.TB
//
// Example usage:
//
//	import (
//	    "testing"
//	    ringtest "github.com/arloliu/hashring/testing"
//	)
//
//	func TestRouting(t *testing.T) {
//	    table := ringtest.NewPositionTable[string](nil)
//	    table.Set("node-a", ringtest.Pos(100))
//	    ring, _ := hashring.NewWithHasher[string, ringtest.Counter](1, table)
//	    // ...
//	}
package testing
