package hashring

import "github.com/arloliu/hashring/types"

// Sentinel errors re-exported from the types package.
//
// Specific errors wrap their category, so both levels match with errors.Is().
var (
	// ErrConfiguration is the category for invalid construction parameters.
	ErrConfiguration = types.ErrConfiguration

	// ErrCollision is the category for occupied ring positions.
	ErrCollision = types.ErrCollision

	// ErrNotFound is the category for absent nodes and empty rings.
	ErrNotFound = types.ErrNotFound

	// ErrConsistencyViolation is raised with panic when a structural invariant is broken.
	ErrConsistencyViolation = types.ErrConsistencyViolation

	// ErrInvalidReplicaCount is returned when the replica count is not positive.
	ErrInvalidReplicaCount = types.ErrInvalidReplicaCount

	// ErrUnknownHashAlgorithm is returned for unsupported hash algorithm names.
	ErrUnknownHashAlgorithm = types.ErrUnknownHashAlgorithm

	// ErrInvalidConfig is returned for malformed configuration.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrNodeAlreadyExists is returned by AddNode on any position collision.
	ErrNodeAlreadyExists = types.ErrNodeAlreadyExists

	// ErrNodeNotFound is returned by DeleteNode for unregistered keys.
	ErrNodeNotFound = types.ErrNodeNotFound

	// ErrNoRemainingNodes is returned by DeleteNode when the last node is deleted.
	ErrNoRemainingNodes = types.ErrNoRemainingNodes

	// ErrEmptyRing is returned by lookups on a ring without nodes.
	ErrEmptyRing = types.ErrEmptyRing
)
