package hashring

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hashring/hasher"
	ringtest "github.com/arloliu/hashring/testing"
)

// randomKeys returns n random lookup keys from a fixed seed.
func randomKeys(n int, seed uint64) []string {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "lookup-" + strconv.FormatUint(rng.Uint64(), 36)
	}

	return keys
}

func countOwners(t *testing.T, ring *counterRing, keys []string) map[string]int {
	t.Helper()

	counts := make(map[string]int)
	for _, key := range keys {
		owner, err := ring.Locate(key)
		require.NoError(t, err)
		counts[owner]++
	}

	return counts
}

func TestRing_Distribution(t *testing.T) {
	const (
		nodes   = 4
		lookups = 20000
	)
	keys := randomKeys(lookups, 42)
	expected := lookups / nodes

	// tolerance is the allowed max-min spread as a fraction of the expected load
	tests := []struct {
		replicas  int
		tolerance float64
	}{
		{replicas: 64, tolerance: 0.75},
		{replicas: 256, tolerance: 0.35},
	}

	for _, algo := range hasher.Algorithms() {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/replicas=%d", algo, tt.replicas), func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.Replicas = tt.replicas
				cfg.HashAlgorithm = algo
				ring, err := NewFromConfig[string, ringtest.Counter](cfg)
				require.NoError(t, err)

				for i := range nodes {
					require.NoError(t, ring.AddNode(fmt.Sprintf("node-%d", i), 0))
				}

				counts := countOwners(t, ring, keys)
				require.Len(t, counts, nodes, "every node should receive lookups")

				lowest, highest := lookups, 0
				for _, c := range counts {
					lowest = min(lowest, c)
					highest = max(highest, c)
				}

				spread := float64(highest-lowest) / float64(expected)
				t.Logf("min=%d max=%d spread=%.3f", lowest, highest, spread)
				require.LessOrEqual(t, spread, tt.tolerance)
			})
		}
	}
}

func TestRing_MinimalDisruption(t *testing.T) {
	keys := randomKeys(5000, 7)

	t.Run("adding a node only moves keys to that node", func(t *testing.T) {
		ring := newCounterRing(t, 100)
		for i := range 4 {
			require.NoError(t, ring.AddNode(fmt.Sprintf("node-%d", i), 0))
		}

		before := make(map[string]string, len(keys))
		for _, key := range keys {
			before[key], _ = ring.Locate(key)
		}

		require.NoError(t, ring.AddNode("node-new", 0))

		moved := 0
		for _, key := range keys {
			after, err := ring.Locate(key)
			require.NoError(t, err)
			if after != before[key] {
				require.Equal(t, "node-new", after, "key %s moved between existing nodes", key)
				moved++
			}
		}

		// about 1/5 of the keys should move; allow generous slack
		ratio := float64(moved) / float64(len(keys))
		require.Greater(t, ratio, 0.10)
		require.Less(t, ratio, 0.30)
	})

	t.Run("deleting a node only moves that node's keys", func(t *testing.T) {
		ring := newCounterRing(t, 100)
		for i := range 5 {
			require.NoError(t, ring.AddNode(fmt.Sprintf("node-%d", i), 0))
		}

		before := make(map[string]string, len(keys))
		for _, key := range keys {
			before[key], _ = ring.Locate(key)
		}

		require.NoError(t, ring.DeleteNode("node-2"))

		for _, key := range keys {
			after, err := ring.Locate(key)
			require.NoError(t, err)
			if before[key] != "node-2" {
				require.Equal(t, before[key], after, "key %s should not move", key)
			} else {
				require.NotEqual(t, "node-2", after)
			}
		}
	})

	t.Run("traffic and value move together on delete", func(t *testing.T) {
		ring := newCounterRing(t, 1)
		for i := range 6 {
			require.NoError(t, ring.AddNode(fmt.Sprintf("node-%d", i), ringtest.Counter(1)))
		}

		// With one replica the deleted node's lookups all go to a single heir:
		// the owner of the next position after node-3's.
		primary := hasher.MD5[string]().Position("node-3", 0)
		vnodes := ring.VirtualNodes()
		heir := vnodes[0].Key
		for _, vn := range vnodes {
			if vn.Position.Cmp(primary) > 0 {
				heir = vn.Key
				break
			}
		}

		owner, err := ring.Locate("node-3")
		require.NoError(t, err)
		require.Equal(t, "node-3", owner)

		require.NoError(t, ring.DeleteNode("node-3"))

		owner, err = ring.Locate("node-3")
		require.NoError(t, err)
		require.Equal(t, heir, owner)

		h, ok := ring.Node(heir)
		require.True(t, ok)
		require.Equal(t, ringtest.Counter(2), h.Load())
	})
}

func BenchmarkRing_GetNode(b *testing.B) {
	ring, err := New[string, ringtest.Counter](DefaultReplicas)
	require.NoError(b, err)
	for i := range 32 {
		require.NoError(b, ring.AddNode(fmt.Sprintf("node-%d", i), 0))
	}
	keys := randomKeys(1024, 1)

	i := 0
	for b.Loop() {
		_, _ = ring.GetNode(keys[i&1023])
		i++
	}
}

func BenchmarkRing_AddDeleteNode(b *testing.B) {
	ring, err := New[string, ringtest.Counter](DefaultReplicas)
	require.NoError(b, err)
	for i := range 32 {
		require.NoError(b, ring.AddNode(fmt.Sprintf("node-%d", i), 0))
	}

	for b.Loop() {
		_ = ring.AddNode("churn", 1)
		_ = ring.DeleteNode("churn")
	}
}
