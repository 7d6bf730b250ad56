// Package config loads quadrec settings from defaults, an optional YAML file
// and QUADREC_ environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. QUADREC_INDEX_MAX_DEPTH.
	EnvPrefix = "QUADREC_"
	// PathEnvVar names the YAML config file.
	PathEnvVar = "QUADREC_CONFIG"
)

// Config is the root configuration.
type Config struct {
	Catalog    CatalogConfig    `koanf:"catalog"`
	Store      StoreConfig      `koanf:"store"`
	Projection ProjectionConfig `koanf:"projection"`
	Index      IndexConfig      `koanf:"index"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Log        LogConfig        `koanf:"log"`
}

// CatalogConfig locates the item CSV.
type CatalogConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// StoreConfig is the SQLite DSN; empty disables persistence.
type StoreConfig struct {
	DSN string `koanf:"dsn"`
}

// ProjectionConfig tunes t-SNE and the output square.
type ProjectionConfig struct {
	Perplexity   float64 `koanf:"perplexity" validate:"gt=0"`
	LearningRate float64 `koanf:"learning_rate" validate:"gt=0"`
	Iterations   int     `koanf:"iterations" validate:"min=1"`
	Seed         int64   `koanf:"seed"`
	Workers      int     `koanf:"workers" validate:"min=0"`
	ScaleMin     float64 `koanf:"scale_min"`
	ScaleMax     float64 `koanf:"scale_max" validate:"gtfield=ScaleMin"`
}

// IndexConfig tunes the quadtree.
type IndexConfig struct {
	MaxDepth int `koanf:"max_depth" validate:"min=1,max=4096"`
}

// RecommendConfig bounds queries.
type RecommendConfig struct {
	MaxK int `koanf:"max_k" validate:"min=1"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Path: "flowers.csv"},
		Projection: ProjectionConfig{
			Perplexity:   50,
			LearningRate: 200,
			Iterations:   1000,
			Seed:         1,
			ScaleMin:     0,
			ScaleMax:     100,
		},
		Index:     IndexConfig{MaxDepth: 256},
		Recommend: RecommendConfig{MaxK: 200},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Load layers defaults, the YAML file at path (or $QUADREC_CONFIG when path
// is empty) and the environment, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var sections = []string{"catalog", "store", "projection", "index", "recommend", "log"}

// envKey maps QUADREC_PROJECTION_LEARNING_RATE to projection.learning_rate.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "config" {
		return ""
	}
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
