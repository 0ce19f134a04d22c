// Package types holds the contracts shared by every hashring package.
//
// The ring is generic over two independent capabilities:
//
//   - Hasher: turns a (key, weight) pair into a 128-bit ring Position
//   - Merger: folds a deleted node's value into its successor's value
//
// It also defines the Logger and MetricsCollector interfaces consumed by the
// ring, and the sentinel errors returned by ring operations. Keeping them here
// lets internal packages depend on the contracts without importing the root
// hashring package.
package types
