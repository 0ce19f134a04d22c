// Package hashring provides a concurrent consistent-hashing ring whose nodes
// carry mergeable values.
//
// The ring maps arbitrary keys onto a dynamic set of nodes so that load is
// spread evenly, adding or removing a node moves only the keys adjacent to
// its positions, and a deleted node's value is folded into the node that
// inherits its traffic instead of being discarded. It is the building block
// behind sharded caches, load balancers and partitioned storage layers.
//
// # Quick Start
//
//	type Hits int64
//
//	func (h Hits) Merge(other Hits) Hits { return h + other }
//
//	ring, err := hashring.New[string, Hits](150)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = ring.AddNode("cache-0", 0)
//	_ = ring.AddNode("cache-1", 0)
//
//	h, err := ring.GetNode("user:42")
//	if err == nil {
//	    h.Update(func(v Hits) Hits { return v + 1 })
//	}
//
//	// cache-0's hits are added to whichever node now owns its keys
//	_ = ring.DeleteNode("cache-0")
//
// # Placement
//
// Each node is placed at Replicas positions on a 128-bit circular keyspace,
// computed by a Hasher from the key and a weight 0..Replicas-1. A lookup key
// is hashed at weight 0 and routed to the nearest position at or after it,
// wrapping to the smallest position when it exceeds them all. The hasher
// package provides MD5 (default), XXH3 and xxHash implementations; any
// deterministic Hasher can be supplied with NewWithHasher.
//
// # Concurrency
//
// AddNode and DeleteNode are serialized by a structural read/write lock and
// are all-or-nothing: a failing AddNode leaves the ring untouched, and readers
// never observe a node with only some of its positions present. Values live
// behind Handle, which has its own lock, so updating one node's value never
// blocks work on other nodes.
//
// # Deleted nodes
//
// A Handle obtained before its node is deleted is retired by DeleteNode. Its
// value now lives in the successor, so writes through the old handle are lost.
// Long-lived writers should use Handle.TryUpdate and call GetNode again when it
// reports the handle as retired:
//
//	for {
//	    h, err := ring.GetNode(key)
//	    if err != nil {
//	        return err
//	    }
//	    if _, ok := h.TryUpdate(incr); ok {
//	        break
//	    }
//	}
//
// DeleteNode on the only remaining node removes it and returns
// ErrNoRemainingNodes; its value has no successor and is lost. Read it from the
// node's Handle first if it matters.
//
// # Configuration
//
// NewFromConfig builds a ring from a Config, which can be loaded from YAML with
// LoadConfig. See the examples/ directory for a complete program.
package hashring
