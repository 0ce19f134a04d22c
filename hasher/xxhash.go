package hasher

import (
	"github.com/cespare/xxhash/v2"
	"lukechampine.com/uint128"

	"github.com/arloliu/hashring/types"
)

// separator is appended to the digest state to derive the low word.
var separator = []byte{0xff}

// XXHash returns a hasher that builds a 128-bit position from two chained
// 64-bit xxHash sums: the high word covers the canonical key string, the low
// word covers the same string followed by one separator byte.
func XXHash[K any]() types.Hasher[K] {
	return types.HasherFunc[K](func(key K, weight int) types.Position {
		d := xxhash.New()
		_, _ = d.WriteString(Canonical(key, weight))
		hi := d.Sum64()
		_, _ = d.Write(separator)
		lo := d.Sum64()

		return uint128.New(lo, hi)
	})
}
