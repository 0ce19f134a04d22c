package hasher

import (
	"github.com/zeebo/xxh3"
	"lukechampine.com/uint128"

	"github.com/arloliu/hashring/types"
)

// XXH3 returns a hasher based on the 128-bit XXH3 digest of the canonical key
// string.
//
// Parameters:
//   - seed: Seed for the hash function (0 for unseeded, non-zero for a separate keyspace)
func XXH3[K any](seed uint64) types.Hasher[K] {
	return types.HasherFunc[K](func(key K, weight int) types.Position {
		var h xxh3.Uint128
		if seed != 0 {
			h = xxh3.HashString128Seed(Canonical(key, weight), seed)
		} else {
			h = xxh3.HashString128(Canonical(key, weight))
		}

		return uint128.New(h.Lo, h.Hi)
	})
}
