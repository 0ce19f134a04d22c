package hasher

import (
	"fmt"
	"strconv"

	"github.com/arloliu/hashring/types"
)

// Algorithm names accepted by ByName.
const (
	AlgorithmMD5    = "md5"
	AlgorithmXXH3   = "xxh3"
	AlgorithmXXHash = "xxhash"
)

// Algorithms lists the supported algorithm names.
func Algorithms() []string {
	return []string{AlgorithmMD5, AlgorithmXXH3, AlgorithmXXHash}
}

// ByName returns the hasher registered under name.
//
// Parameters:
//   - name: Algorithm name ("md5", "xxh3", "xxhash")
//   - seed: Hash seed, used only by "xxh3" (0 means unseeded)
//
// Returns:
//   - types.Hasher[K]: The hasher
//   - error: types.ErrUnknownHashAlgorithm for unsupported names
func ByName[K any](name string, seed uint64) (types.Hasher[K], error) {
	switch name {
	case AlgorithmMD5:
		return MD5[K](), nil
	case AlgorithmXXH3:
		return XXH3[K](seed), nil
	case AlgorithmXXHash:
		return XXHash[K](), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, types.ErrUnknownHashAlgorithm)
	}
}

// Canonical returns the string digested for the weight-th replica of key.
func Canonical[K any](key K, weight int) string {
	// Fast path for the common string key
	if s, ok := any(key).(string); ok {
		return s + "-" + strconv.Itoa(weight)
	}

	return fmt.Sprintf("%v-%d", key, weight)
}
