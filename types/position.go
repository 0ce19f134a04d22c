package types

import (
	"encoding/hex"

	"lukechampine.com/uint128"
)

// Position is a point on the ring's circular keyspace [0, 2^128).
type Position = uint128.Uint128

// PositionFromBytes interprets a digest as a big-endian unsigned integer.
//
// Digests longer than 16 bytes are truncated to their leading 16 bytes; shorter
// digests are left-padded with zeros.
func PositionFromBytes(digest []byte) Position {
	var buf [16]byte
	if len(digest) >= len(buf) {
		copy(buf[:], digest[:len(buf)])
	} else {
		copy(buf[len(buf)-len(digest):], digest)
	}

	return uint128.FromBytesBE(buf[:])
}

// PositionFromHex parses a 32-character hexadecimal digest into a Position.
func PositionFromHex(s string) (Position, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return uint128.Zero, err
	}

	return PositionFromBytes(b), nil
}

// PositionHex formats a position as a zero-padded 32-character hex string.
func PositionHex(p Position) string {
	var buf [16]byte
	p.PutBytesBE(buf[:])

	return hex.EncodeToString(buf[:])
}

// ComparePositions orders two positions for use with the slices package.
func ComparePositions(a, b Position) int {
	return a.Cmp(b)
}
