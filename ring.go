package hashring

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/hashring/hasher"
	"github.com/arloliu/hashring/internal/index"
	"github.com/arloliu/hashring/internal/logger"
	"github.com/arloliu/hashring/internal/metrics"
	"github.com/arloliu/hashring/types"
)

// Operation names reported to the MetricsCollector.
const (
	opAdd    = "add"
	opGet    = "get"
	opDelete = "delete"
)

// opList labels consistency violations found while listing; it is not a metric.
const opList = "list"

var errPositionUnowned = errors.New("indexed position has no owner")

// Ring is a consistent hash ring that maps keys onto a dynamic set of nodes.
//
// Each node is placed on the ring at Replicas positions computed by the ring's
// Hasher. A lookup key is routed to the node owning the nearest position at or
// after the key's weight-0 position, wrapping around the keyspace. Deleting a
// node merges its value into the node that inherits its traffic.
//
// Ring is safe for concurrent use. AddNode and DeleteNode take the structural
// lock exclusively, so readers never observe a node with only some of its
// positions present. Values are guarded by their own Handle locks.
type Ring[K comparable, V types.Merger[V]] struct {
	mu sync.RWMutex

	replicas int
	hasher   types.Hasher[K]

	// index holds every live position in ascending order
	index *index.Index

	// store maps each live position to its owner; all positions of a node share one handle
	store *xsync.Map[types.Position, slot[K, V]]

	// keys lists registered nodes in insertion order
	keys []K

	// nodes maps each registered node to its value handle
	nodes map[K]*Handle[V]

	logger  types.Logger
	metrics types.MetricsCollector
}

// slot is a Value Store entry.
type slot[K comparable, V any] struct {
	key    K
	handle *Handle[V]
}

// Entry is a node and a snapshot of its value, as returned by Nodes.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// VirtualNode is a live ring position and the node that owns it.
type VirtualNode[K comparable] struct {
	Position types.Position
	Key      K
}

// New creates an empty ring that places each node at replicas positions using
// the MD5 hasher.
//
// Parameters:
//   - replicas: Positions per node (higher = smoother distribution)
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Ring[K, V]: Empty ring
//   - error: ErrInvalidReplicaCount if replicas <= 0
//
// Example:
//
//	ring, err := hashring.New[string, Counter](150)
//	if err != nil { /* handle */ }
//	_ = ring.AddNode("cache-0", 0)
//	h, _ := ring.GetNode("user:42")
func New[K comparable, V types.Merger[V]](replicas int, opts ...Option) (*Ring[K, V], error) {
	return NewWithHasher[K, V](replicas, hasher.MD5[K](), opts...)
}

// NewWithHasher creates an empty ring that computes positions with h.
//
// Parameters:
//   - replicas: Positions per node
//   - h: Hash capability for K (see the hasher package)
//   - opts: Optional configuration
//
// Returns:
//   - *Ring[K, V]: Empty ring
//   - error: ErrInvalidReplicaCount if replicas <= 0, ErrInvalidConfig if h is nil
func NewWithHasher[K comparable, V types.Merger[V]](replicas int, h types.Hasher[K], opts ...Option) (*Ring[K, V], error) {
	if replicas <= 0 {
		return nil, fmt.Errorf("replicas %d: %w", replicas, ErrInvalidReplicaCount)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: hasher is required", ErrInvalidConfig)
	}

	options := applyOptions(opts)
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Ring[K, V]{
		replicas: replicas,
		hasher:   h,
		index:    index.New(0),
		store:    xsync.NewMap[types.Position, slot[K, V]](),
		nodes:    make(map[K]*Handle[V]),
		logger:   options.logger,
		metrics:  options.metrics,
	}, nil
}

// NewFromConfig creates an empty ring from cfg.
//
// Missing fields are filled with SetDefaults before validation. When
// cfg.Metrics.Enabled is set and no WithMetrics option is given, a Prometheus
// collector is registered on the WithRegisterer registerer, or on
// prometheus.DefaultRegisterer. Rings configured with the same registerer and
// namespace report into shared series.
//
// Returns:
//   - *Ring[K, V]: Empty ring
//   - error: Configuration error from Validate or hasher lookup, or
//     ErrInvalidConfig if the metrics conflict with ones already registered
func NewFromConfig[K comparable, V types.Merger[V]](cfg Config, opts ...Option) (*Ring[K, V], error) {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h, err := hasher.ByName[K](cfg.HashAlgorithm, cfg.HashSeed)
	if err != nil {
		return nil, err
	}

	options := applyOptions(opts)
	if cfg.Metrics.Enabled && options.metrics == nil {
		collector := metrics.NewPrometheus(options.registerer, cfg.Metrics.Namespace)
		if err := collector.Register(); err != nil {
			return nil, fmt.Errorf("%w: metrics namespace %q: %w", ErrInvalidConfig, cfg.Metrics.Namespace, err)
		}
		opts = append(opts, WithMetrics(collector))
	}

	return NewWithHasher[K, V](cfg.Replicas, h, opts...)
}

// Replicas returns the number of positions generated per node.
func (r *Ring[K, V]) Replicas() int {
	return r.replicas
}

// AddNode registers key with value at all of its positions.
//
// Every position is checked before the ring is modified: if any of them is
// already occupied, or two of the key's own positions coincide, the call fails
// and the ring is left exactly as it was.
//
// Returns:
//   - error: ErrNodeAlreadyExists on any position collision
func (r *Ring[K, V]) AddNode(key K, value V) (err error) {
	start := time.Now()
	defer func() { r.metrics.RecordOperation(opAdd, err == nil, time.Since(start).Seconds()) }()

	positions := r.positions(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[key]; exists {
		return fmt.Errorf("add %v: %w", key, ErrNodeAlreadyExists)
	}

	seen := make(map[types.Position]struct{}, len(positions))
	for weight, p := range positions {
		_, dup := seen[p]
		if dup || r.index.Contains(p) {
			r.logger.Debug("node position collides", "key", key, "weight", weight, "position", types.PositionHex(p))
			return fmt.Errorf("add %v: weight %d at %s: %w", key, weight, types.PositionHex(p), ErrNodeAlreadyExists)
		}
		seen[p] = struct{}{}
	}

	if err := r.index.InsertAll(positions); err != nil {
		r.violation(opAdd, key, err)
	}
	h := newHandle(value)
	for _, p := range positions {
		r.store.Store(p, slot[K, V]{key: key, handle: h})
	}
	r.keys = append(r.keys, key)
	r.nodes[key] = h
	r.recordSize()

	r.logger.Debug("node added", "key", key, "replicas", r.replicas, "nodes", len(r.keys))

	return nil
}

// GetNode routes key to the node owning the nearest position at or after the
// key's weight-0 position and returns that node's value handle.
//
// key does not need to be registered: this is the lookup path used to route
// arbitrary keys to nodes.
//
// Returns:
//   - *Handle[V]: Handle of the owning node's value
//   - error: ErrEmptyRing if the ring has no nodes
func (r *Ring[K, V]) GetNode(key K) (h *Handle[V], err error) {
	start := time.Now()
	defer func() { r.metrics.RecordOperation(opGet, err == nil, time.Since(start).Seconds()) }()

	p := r.hasher.Position(key, 0)

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.successor(p)
	if !ok {
		return nil, fmt.Errorf("get %v: %w", key, ErrEmptyRing)
	}

	return s.handle, nil
}

// Locate returns the registered node that key routes to.
//
// Returns:
//   - K: Owning node
//   - error: ErrEmptyRing if the ring has no nodes
func (r *Ring[K, V]) Locate(key K) (K, error) {
	p := r.hasher.Position(key, 0)

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.successor(p)
	if !ok {
		var zero K
		return zero, fmt.Errorf("locate %v: %w", key, ErrEmptyRing)
	}

	return s.key, nil
}

// Node returns the value handle of the registered node key, without routing.
func (r *Ring[K, V]) Node(key K) (*Handle[V], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.nodes[key]

	return h, ok
}

// DeleteNode removes all positions of key and merges its value into the node
// that inherits its traffic.
//
// The inheriting node is the successor of key's weight-0 position once key's
// positions are gone. Its value becomes successor.Merge(evicted).
//
// Deleting the last node still removes it, but there is nothing to merge into:
// ErrNoRemainingNodes is returned and the evicted value is discarded. Callers
// that need the value should read it from the node's handle before deleting.
//
// Returns:
//   - error: ErrNodeNotFound if key is not registered, ErrNoRemainingNodes
//     if key was the last node
func (r *Ring[K, V]) DeleteNode(key K) (err error) {
	start := time.Now()
	defer func() { r.metrics.RecordOperation(opDelete, err == nil, time.Since(start).Seconds()) }()

	positions := r.positions(key)
	primary := positions[0]

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[key]; !exists {
		return fmt.Errorf("delete %v: %w", key, ErrNodeNotFound)
	}

	evicted, ok := r.store.Load(primary)
	if !ok || evicted.key != key {
		r.violation(opDelete, key, fmt.Errorf("primary position %s not owned by node", types.PositionHex(primary)))
	}

	if err := r.index.RemoveAll(positions); err != nil {
		r.violation(opDelete, key, err)
	}
	for _, p := range positions {
		if _, ok := r.store.LoadAndDelete(p); !ok {
			r.violation(opDelete, key, fmt.Errorf("position %s has no value", types.PositionHex(p)))
		}
	}
	delete(r.nodes, key)
	r.keys = slices.DeleteFunc(r.keys, func(k K) bool { return k == key })
	r.recordSize()

	succPos, ok := r.index.NearestSuccessor(primary)
	if !ok {
		evicted.handle.retire()
		r.metrics.RecordEvictedValueLost()
		r.logger.Warn("last node deleted, evicted value discarded", "key", key)

		return fmt.Errorf("delete %v: %w", key, ErrNoRemainingNodes)
	}

	successor, ok := r.store.Load(succPos)
	if !ok {
		r.violation(opDelete, key, fmt.Errorf("successor position %s has no value", types.PositionHex(succPos)))
	}

	mergeInto(successor.handle, evicted.handle, succPos.Cmp(primary) < 0)
	r.metrics.RecordMerge()
	r.logger.Debug("node deleted", "key", key, "successor", successor.key, "nodes", len(r.keys))

	return nil
}

// Contains reports whether key is a registered node.
func (r *Ring[K, V]) Contains(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.nodes[key]

	return ok
}

// Len returns the number of registered nodes.
func (r *Ring[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keys)
}

// Size returns the number of live positions, always Len() * Replicas().
func (r *Ring[K, V]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.index.Len()
}

// Nodes returns every registered node with a snapshot of its value, in
// insertion order.
func (r *Ring[K, V]) Nodes() []Entry[K, V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry[K, V], 0, len(r.keys))
	for _, k := range r.keys {
		entries = append(entries, Entry[K, V]{Key: k, Value: r.nodes[k].Load()})
	}

	return entries
}

// VirtualNodes returns every live position with its owning node, in ascending
// position order.
func (r *Ring[K, V]) VirtualNodes() []VirtualNode[K] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := r.index.Positions()
	vnodes := make([]VirtualNode[K], 0, len(positions))
	for _, p := range positions {
		s, ok := r.store.Load(p)
		if !ok {
			r.violation(opList, types.PositionHex(p), errPositionUnowned)
		}
		vnodes = append(vnodes, VirtualNode[K]{Position: p, Key: s.key})
	}

	return vnodes
}

// positions computes the positions of key for weights 0..replicas-1.
func (r *Ring[K, V]) positions(key K) []types.Position {
	positions := make([]types.Position, r.replicas)
	for w := range positions {
		positions[w] = r.hasher.Position(key, w)
	}

	return positions
}

// successor resolves the slot owning the nearest position at or after p.
// The caller must hold r.mu.
func (r *Ring[K, V]) successor(p types.Position) (slot[K, V], bool) {
	succ, ok := r.index.NearestSuccessor(p)
	if !ok {
		return slot[K, V]{}, false
	}

	s, ok := r.store.Load(succ)
	if !ok {
		r.violation(opGet, types.PositionHex(succ), errPositionUnowned)
	}

	return s, true
}

// recordSize publishes node and position gauges. The caller must hold r.mu.
func (r *Ring[K, V]) recordSize() {
	r.metrics.SetNodeCount(len(r.keys))
	r.metrics.SetPositionCount(r.index.Len())
}

// violation reports a broken structural invariant and panics.
//
// subject names what was being processed: a node key, or the hex position when
// no key is known.
func (r *Ring[K, V]) violation(op string, subject any, cause error) {
	r.logger.Error("ring consistency violation", "op", op, "subject", subject, "error", cause)

	panic(fmt.Errorf("%w: %s %v: %w", ErrConsistencyViolation, op, subject, cause))
}

// mergeInto sets dst to dst.Merge(src) and retires src while holding both
// handle locks.
//
// Locks are taken in ring position order; dstFirst reports whether dst's
// position is lower than src's.
func mergeInto[V types.Merger[V]](dst, src *Handle[V], dstFirst bool) {
	first, second := src, dst
	if dstFirst {
		first, second = dst, src
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	dst.value = dst.value.Merge(src.value)
	src.retired = true
}
