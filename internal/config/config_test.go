package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "default", cfg.Level)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "native", cfg.Defaults.LineEnding)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "probsheet.yaml")
		content := "format: ndjson\nverbose: true\ndefaults:\n  line_ending: crlf\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "crlf", cfg.Defaults.LineEnding)
		// Unset keys keep their defaults
		assert.Equal(t, "default", cfg.Level)
		assert.False(t, cfg.Quiet)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "probsheet.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0o644))

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})
}
