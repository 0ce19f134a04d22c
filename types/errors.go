package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hashring library.
//
// Errors are grouped into four categories. Every specific error wraps its
// category, so callers can match either level with errors.Is():
//
//	errors.Is(err, ErrNodeNotFound) // exact condition
//	errors.Is(err, ErrNotFound)     // any not-found condition
//
// Components add context with fmt.Errorf("%s: %w", msg, err).

// Category errors.
var (
	// ErrConfiguration is the category for invalid ring construction parameters.
	ErrConfiguration = errors.New("configuration error")

	// ErrCollision is the category for ring positions that are already occupied.
	ErrCollision = errors.New("position collision")

	// ErrNotFound is the category for lookups or deletes against absent keys or an empty ring.
	ErrNotFound = errors.New("not found")

	// ErrConsistencyViolation indicates a broken internal invariant.
	//
	// It is never returned for user input. The ring raises it with panic because
	// it means some key no longer has all of its positions present.
	ErrConsistencyViolation = errors.New("consistency violation")
)

// Configuration errors.
var (
	// ErrInvalidReplicaCount is returned when the replica count is not positive.
	ErrInvalidReplicaCount = fmt.Errorf("%w: replica count must be greater than 0", ErrConfiguration)

	// ErrUnknownHashAlgorithm is returned when a configured hash algorithm name is not recognized.
	ErrUnknownHashAlgorithm = fmt.Errorf("%w: unknown hash algorithm", ErrConfiguration)

	// ErrInvalidConfig is returned when a configuration file or value is malformed.
	ErrInvalidConfig = fmt.Errorf("%w: invalid configuration", ErrConfiguration)
)

// Collision errors.
var (
	// ErrNodeAlreadyExists is returned by AddNode when any of the key's positions is occupied.
	ErrNodeAlreadyExists = fmt.Errorf("%w: node already exists", ErrCollision)

	// ErrDuplicateVirtualNode is returned by the position index on duplicate insertion.
	ErrDuplicateVirtualNode = fmt.Errorf("%w: duplicate virtual node", ErrCollision)
)

// Not-found errors.
var (
	// ErrNodeNotFound is returned by DeleteNode for a key that is not registered.
	ErrNodeNotFound = fmt.Errorf("%w: node not found", ErrNotFound)

	// ErrNoRemainingNodes is returned by DeleteNode when the deleted node was the last one.
	// The node's positions are removed but its value has nothing to merge into and is lost.
	ErrNoRemainingNodes = fmt.Errorf("%w: no remaining nodes", ErrNotFound)

	// ErrEmptyRing is returned by lookups against a ring without live positions.
	ErrEmptyRing = fmt.Errorf("%w: ring is empty", ErrNotFound)
)
