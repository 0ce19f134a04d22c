package testing

import (
	"sync"

	"lukechampine.com/uint128"

	"github.com/arloliu/hashring/hasher"
	"github.com/arloliu/hashring/types"
)

// Pos returns the position v, for writing readable expectations.
func Pos(v uint64) types.Position {
	return uint128.From64(v)
}

// PositionTable is a Hasher whose positions are pinned per key.
//
// Keys without an entry, or weights beyond the pinned positions, fall back to
// the wrapped hasher. PositionTable is safe for concurrent use.
type PositionTable[K comparable] struct {
	mu       sync.RWMutex
	table    map[K][]types.Position
	fallback types.Hasher[K]
}

var _ types.Hasher[string] = (*PositionTable[string])(nil)

// NewPositionTable creates an empty table. A nil fallback uses hasher.MD5.
func NewPositionTable[K comparable](fallback types.Hasher[K]) *PositionTable[K] {
	if fallback == nil {
		fallback = hasher.MD5[K]()
	}

	return &PositionTable[K]{
		table:    make(map[K][]types.Position),
		fallback: fallback,
	}
}

// Set pins the positions of key: positions[w] is returned for weight w.
func (t *PositionTable[K]) Set(key K, positions ...types.Position) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.table[key] = append([]types.Position(nil), positions...)
}

// Position implements types.Hasher.
func (t *PositionTable[K]) Position(key K, weight int) types.Position {
	t.mu.RLock()
	positions, ok := t.table[key]
	t.mu.RUnlock()

	if ok && weight < len(positions) {
		return positions[weight]
	}

	return t.fallback.Position(key, weight)
}
