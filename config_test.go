package hashring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 150, cfg.Replicas)
	require.Equal(t, "md5", cfg.HashAlgorithm)
	require.Zero(t, cfg.HashSeed)
	require.False(t, cfg.Metrics.Enabled)
	require.Equal(t, "hashring", cfg.Metrics.Namespace)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Replicas:      32,
			HashAlgorithm: "xxh3",
			HashSeed:      7,
			Metrics:       MetricsConfig{Enabled: true, Namespace: "cache"},
		}
		SetDefaults(&cfg)

		require.Equal(t, 32, cfg.Replicas)
		require.Equal(t, "xxh3", cfg.HashAlgorithm)
		require.Equal(t, uint64(7), cfg.HashSeed)
		require.True(t, cfg.Metrics.Enabled)
		require.Equal(t, "cache", cfg.Metrics.Namespace)
	})

	t.Run("keeps negative replicas for validation", func(t *testing.T) {
		cfg := Config{Replicas: -3}
		SetDefaults(&cfg)

		require.Equal(t, -3, cfg.Replicas)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidReplicaCount)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{"defaults are valid", func(*Config) {}, nil},
		{"zero replicas", func(cfg *Config) { cfg.Replicas = 0 }, ErrInvalidReplicaCount},
		{"negative replicas", func(cfg *Config) { cfg.Replicas = -1 }, ErrInvalidReplicaCount},
		{"unknown algorithm", func(cfg *Config) { cfg.HashAlgorithm = "sha256" }, ErrUnknownHashAlgorithm},
		{"seed with md5", func(cfg *Config) { cfg.HashSeed = 1 }, ErrInvalidConfig},
		{"seed with xxh3", func(cfg *Config) { cfg.HashAlgorithm = "xxh3"; cfg.HashSeed = 1 }, nil},
		{"xxhash", func(cfg *Config) { cfg.HashAlgorithm = "xxhash" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

// TestConfig_YAML checks the yaml tags map onto Config fields.
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
replicas: 200
hashAlgorithm: xxh3
hashSeed: 42
metrics:
  enabled: true
  namespace: cache
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 200, cfg.Replicas)
	require.Equal(t, "xxh3", cfg.HashAlgorithm)
	require.Equal(t, uint64(42), cfg.HashSeed)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "cache", cfg.Metrics.Namespace)
}

func TestParseConfig(t *testing.T) {
	t.Run("partial document gets defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("hashAlgorithm: xxhash\n"))
		require.NoError(t, err)

		require.Equal(t, "xxhash", cfg.HashAlgorithm)
		require.Equal(t, DefaultReplicas, cfg.Replicas)
		require.Equal(t, "hashring", cfg.Metrics.Namespace)
	})

	t.Run("empty document is the default config", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := ParseConfig([]byte("replica: 3\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("replicas: [1, 2\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("validates", func(t *testing.T) {
		_, err := ParseConfig([]byte("replicas: -5\n"))
		require.ErrorIs(t, err, ErrInvalidReplicaCount)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("replicas: 64\nmetrics:\n  enabled: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Replicas)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "md5", cfg.HashAlgorithm)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
