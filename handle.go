package hashring

import "sync"

// Handle is a shared, individually locked reference to a node's value.
//
// Every position of a node refers to the same Handle, so a mutation made
// through a handle obtained for one position is visible through all of them.
// Handle locks are independent of the ring's structural lock: mutating one
// node's value never blocks lookups or mutations of other nodes.
//
// A handle is retired when its node is deleted: its value has been merged into
// the successor (or discarded with the last node) and writes through it are
// no longer seen by the ring. Writers holding a handle across a possible
// DeleteNode should use TryUpdate and route the key again when it fails.
type Handle[V any] struct {
	mu      sync.RWMutex
	value   V
	retired bool
}

func newHandle[V any](value V) *Handle[V] {
	return &Handle[V]{value: value}
}

// Load returns a snapshot of the current value.
func (h *Handle[V]) Load() V {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.value
}

// Store replaces the current value.
func (h *Handle[V]) Store(value V) {
	h.mu.Lock()
	h.value = value
	h.mu.Unlock()
}

// Update atomically replaces the value with fn(current) and returns the new value.
//
// fn runs with the handle locked. It must not call back into the ring, since a
// concurrent DeleteNode may hold the ring lock while waiting for this handle.
// An update to a retired handle is lost; see TryUpdate.
func (h *Handle[V]) Update(fn func(V) V) V {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.value = fn(h.value)

	return h.value
}

// TryUpdate is Update for a handle whose node may have been deleted.
//
// It applies fn and returns the new value and true, or returns the final value
// and false without calling fn once the handle is retired.
func (h *Handle[V]) TryUpdate(fn func(V) V) (V, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.retired {
		return h.value, false
	}
	h.value = fn(h.value)

	return h.value, true
}

// Retired reports whether the handle's node has been deleted.
func (h *Handle[V]) Retired() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.retired
}

func (h *Handle[V]) retire() {
	h.mu.Lock()
	h.retired = true
	h.mu.Unlock()
}
