package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 10000, c.MaxInputBytes)
	assert.Equal(t, 0.75, c.Fuzzy.ConfidenceThreshold)
	assert.Equal(t, 2, c.Fuzzy.MaxLengthDelta)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
http_addr: ":9090"
redis:
  addr: "localhost:6379"
  db: 2
dictionary_path: /data/english.txt
max_input_bytes: 500
fuzzy:
  confidence_threshold: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
	assert.Equal(t, 2, c.Redis.DB)
	assert.Equal(t, "/data/english.txt", c.DictionaryPath)
	assert.Equal(t, 500, c.MaxInputBytes)
	assert.Equal(t, 0.8, c.Fuzzy.ConfidenceThreshold)
	// untouched fields keep defaults
	assert.Equal(t, 5, c.Fuzzy.MaxSuggestions)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`http_addr: ":9090"`), 0o644))

	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("REDIS_DB", "5")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", c.HTTPAddr)
	assert.Equal(t, 5, c.Redis.DB)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`max_input_bytes: -1`), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{not yaml`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
