// Package hasher provides built-in Hash capability implementations.
//
// Each hasher turns a (key, weight) pair into a 128-bit ring position by
// digesting the key's canonical representation "<key>-<weight>", where the key
// is formatted with %v. Keys implementing fmt.Stringer are formatted through
// their String method.
//
// Available hashers:
//
//   - MD5: 128-bit MD5 digest read big-endian (default; stable with other MD5 rings)
//   - XXH3: 128-bit XXH3 digest with an optional seed (fastest)
//   - XXHash: two chained 64-bit xxHash sums
//
// None of these provide secrecy. They only need to avoid accidental position
// collisions between distinct (key, weight) pairs.
package hasher
