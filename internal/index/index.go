// Package index implements the ring's sorted position index.
package index

import (
	"fmt"
	"slices"

	"github.com/arloliu/hashring/types"
)

// Index is an ascending, duplicate-free set of ring positions.
//
// Index is not safe for concurrent use; the ring serializes access to it with
// its structural lock.
type Index struct {
	// positions are sorted ascending for binary search
	positions []types.Position
}

// New creates an empty index with room for capacity positions.
func New(capacity int) *Index {
	return &Index{positions: make([]types.Position, 0, capacity)}
}

// Len returns the number of stored positions.
func (x *Index) Len() int {
	return len(x.positions)
}

// Contains reports whether p is stored.
func (x *Index) Contains(p types.Position) bool {
	_, found := x.search(p)

	return found
}

// Insert adds p while preserving sort order.
//
// Returns:
//   - error: types.ErrDuplicateVirtualNode if p is already stored
func (x *Index) Insert(p types.Position) error {
	idx, found := x.search(p)
	if found {
		return fmt.Errorf("insert %s: %w", types.PositionHex(p), types.ErrDuplicateVirtualNode)
	}

	x.positions = slices.Insert(x.positions, idx, p)

	return nil
}

// Remove deletes p from the index.
//
// Returns:
//   - error: types.ErrConsistencyViolation if p is not stored
func (x *Index) Remove(p types.Position) error {
	idx, found := x.search(p)
	if !found {
		return fmt.Errorf("remove %s: position not present: %w", types.PositionHex(p), types.ErrConsistencyViolation)
	}

	x.positions = slices.Delete(x.positions, idx, idx+1)

	return nil
}

// InsertAll adds every position of ps in a single merge pass.
//
// The batch is sorted once and merged backwards into the grown slice, so
// inserting a node's R positions costs O(R log R + n) instead of R separate
// O(n) shifts. Nothing is inserted if any position is already stored or
// repeated within ps.
//
// Returns:
//   - error: types.ErrDuplicateVirtualNode on the first conflicting position
func (x *Index) InsertAll(ps []types.Position) error {
	batch := slices.Clone(ps)
	slices.SortFunc(batch, types.ComparePositions)

	for i, p := range batch {
		if (i > 0 && batch[i-1] == p) || x.Contains(p) {
			return fmt.Errorf("insert %s: %w", types.PositionHex(p), types.ErrDuplicateVirtualNode)
		}
	}

	i := len(x.positions) - 1
	x.positions = append(x.positions, batch...)
	for j, k := len(batch)-1, len(x.positions)-1; j >= 0; k-- {
		if i >= 0 && x.positions[i].Cmp(batch[j]) > 0 {
			x.positions[k] = x.positions[i]
			i--
		} else {
			x.positions[k] = batch[j]
			j--
		}
	}

	return nil
}

// RemoveAll deletes every position of ps in a single compaction pass.
//
// Nothing is removed if any position of ps is not stored.
//
// Returns:
//   - error: types.ErrConsistencyViolation on the first missing position
func (x *Index) RemoveAll(ps []types.Position) error {
	drop := make(map[types.Position]struct{}, len(ps))
	for _, p := range ps {
		if !x.Contains(p) {
			return fmt.Errorf("remove %s: position not present: %w", types.PositionHex(p), types.ErrConsistencyViolation)
		}
		drop[p] = struct{}{}
	}

	x.positions = slices.DeleteFunc(x.positions, func(p types.Position) bool {
		_, ok := drop[p]

		return ok
	})

	return nil
}

// NearestSuccessor returns the smallest stored position >= p.
//
// If p is greater than every stored position the search wraps around and the
// smallest stored position is returned. The boolean is false only when the
// index is empty.
func (x *Index) NearestSuccessor(p types.Position) (types.Position, bool) {
	if len(x.positions) == 0 {
		return types.Position{}, false
	}

	idx, _ := x.search(p)
	// If idx >= len(positions), wrap around to the first position
	if idx >= len(x.positions) {
		idx = 0
	}

	return x.positions[idx], true
}

// Positions returns a copy of the stored positions in ascending order.
func (x *Index) Positions() []types.Position {
	return slices.Clone(x.positions)
}

// search returns the index of the first position >= p and whether it equals p.
func (x *Index) search(p types.Position) (int, bool) {
	return slices.BinarySearchFunc(x.positions, p, types.ComparePositions)
}
