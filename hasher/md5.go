package hasher

import (
	"crypto/md5" //nolint:gosec // positions need spread, not collision resistance

	"github.com/arloliu/hashring/types"
)

// MD5 returns a hasher that reads the MD5 digest of the canonical key string
// as a big-endian 128-bit position.
func MD5[K any]() types.Hasher[K] {
	return types.HasherFunc[K](func(key K, weight int) types.Position {
		digest := md5.Sum([]byte(Canonical(key, weight))) //nolint:gosec

		return types.PositionFromBytes(digest[:])
	})
}
