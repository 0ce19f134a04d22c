package hashring

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/hashring/hasher"
	"github.com/arloliu/hashring/internal/metrics"
)

// DefaultReplicas is the default number of positions per node.
const DefaultReplicas = 150

// MetricsConfig controls the Prometheus collector installed by NewFromConfig.
type MetricsConfig struct {
	// Enabled installs a Prometheus collector unless WithMetrics is given.
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metrics namespace.
	// Default: "hashring"
	Namespace string `yaml:"namespace"`
}

// Config is the configuration consumed by NewFromConfig.
//
// Example YAML:
//
//	replicas: 200
//	hashAlgorithm: xxh3
//	hashSeed: 42
//	metrics:
//	  enabled: true
//	  namespace: cache
type Config struct {
	// Replicas is the number of positions generated per node.
	// Higher values give a smoother load distribution at the cost of memory
	// and slower AddNode/DeleteNode.
	// A zero value is treated as unset and replaced by DefaultReplicas.
	// Recommended range: 100-300 (default: 150).
	Replicas int `yaml:"replicas"`

	// HashAlgorithm selects the hasher: "md5" (default), "xxh3" or "xxhash".
	// Changing it moves every node, so all members of a deployment must agree.
	HashAlgorithm string `yaml:"hashAlgorithm"`

	// HashSeed seeds the "xxh3" hasher (0 = unseeded). Other algorithms reject a seed.
	HashSeed uint64 `yaml:"hashSeed"`

	// Metrics controls Prometheus instrumentation.
	Metrics MetricsConfig `yaml:"metrics"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Replicas:      DefaultReplicas,
		HashAlgorithm: hasher.AlgorithmMD5,
		HashSeed:      0,
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: metrics.DefaultNamespace,
		},
	}
}

// SetDefaults fills in missing configuration values.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Replicas == 0 {
		cfg.Replicas = defaults.Replicas
	}
	if cfg.HashAlgorithm == "" {
		cfg.HashAlgorithm = defaults.HashAlgorithm
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	// Note: HashSeed of 0 is valid (unseeded) and Metrics.Enabled defaults to false
}

// Validate checks configuration constraints.
//
// Rules:
//   - Replicas > 0
//   - HashAlgorithm is one of hasher.Algorithms()
//   - HashSeed is 0 unless HashAlgorithm is "xxh3"
//
// Returns:
//   - error: Wrapped ErrInvalidReplicaCount, ErrUnknownHashAlgorithm or ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Replicas <= 0 {
		return fmt.Errorf("replicas (%d): %w", cfg.Replicas, ErrInvalidReplicaCount)
	}

	if !slices.Contains(hasher.Algorithms(), cfg.HashAlgorithm) {
		return fmt.Errorf("hashAlgorithm %q (supported: %v): %w", cfg.HashAlgorithm, hasher.Algorithms(), ErrUnknownHashAlgorithm)
	}

	if cfg.HashSeed != 0 && cfg.HashAlgorithm != hasher.AlgorithmXXH3 {
		return fmt.Errorf("%w: hashSeed is only supported by %q, got algorithm %q",
			ErrInvalidConfig, hasher.AlgorithmXXH3, cfg.HashAlgorithm)
	}

	return nil
}

// ParseConfig decodes a YAML document, applies defaults and validates the result.
//
// Unknown fields are rejected. An empty document yields DefaultConfig().
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}
