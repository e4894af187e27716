package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, 6, cfg.Codec.Level)
	assert.True(t, cfg.Codec.ZlibHeader)
	assert.Positive(t, cfg.ReadBufferSize)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
codec:
  level: 1
  zlib_header: false
read_buffer_size: 4096
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Codec.Level)
	assert.False(t, cfg.Codec.ZlibHeader)
	assert.Equal(t, 4096, cfg.ReadBufferSize)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	_, err := LoadConfig(write("level.yaml", "codec:\n  level: 42\nread_buffer_size: 1\n"))
	assert.ErrorContains(t, err, "compression level")

	_, err = LoadConfig(write("buffer.yaml", "codec:\n  level: 3\nread_buffer_size: 0\n"))
	assert.ErrorContains(t, err, "read buffer size")

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
