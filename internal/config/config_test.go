package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quadrec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  path: /data/items.csv
projection:
  iterations: 300
  scale_max: 10
index:
  max_depth: 32
`), 0o600))

	t.Setenv(PathEnvVar, path)
	t.Setenv("QUADREC_INDEX_MAX_DEPTH", "64")
	t.Setenv("QUADREC_STORE_DSN", "file:items.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/items.csv", cfg.Catalog.Path)
	assert.Equal(t, 300, cfg.Projection.Iterations)
	assert.Equal(t, 10.0, cfg.Projection.ScaleMax)
	assert.Equal(t, 64, cfg.Index.MaxDepth)
	assert.Equal(t, "file:items.db", cfg.Store.DSN)
	assert.Equal(t, 200, cfg.Recommend.MaxK)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	t.Setenv("QUADREC_RECOMMEND_MAX_K", "0")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "projection.learning_rate", envKey("QUADREC_PROJECTION_LEARNING_RATE"))
	assert.Equal(t, "log.level", envKey("QUADREC_LOG_LEVEL"))
	assert.Equal(t, "", envKey("QUADREC_CONFIG"))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Projection.ScaleMax = cfg.Projection.ScaleMin
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Log.Format = "xml"
	assert.Error(t, Validate(cfg))
}
