package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/qrpro/internal/model"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_MissingFile verifies that a missing config file is not an error
// and yields the built-in defaults.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "qrcodes", cfg.OutputDir)
	assert.Equal(t, model.FormatPNG, cfg.Format)
	assert.Equal(t, 10, cfg.Scale)
}

// TestLoad_PartialOverride verifies that fields present in the file override
// the defaults while absent fields keep them.
func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, "outputDir: out\nforeground: navy\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "navy", cfg.Foreground)
	// Untouched fields keep their defaults.
	assert.Equal(t, "white", cfg.Background)
	assert.Equal(t, model.FormatPNG, cfg.Format)
	assert.Equal(t, 10, cfg.Scale)
}

// TestLoad_FullOverride verifies a config file setting every field.
func TestLoad_FullOverride(t *testing.T) {
	path := writeConfig(t, `
outputDir: artifacts
format: both
foreground: darkgreen
background: pink
scale: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "artifacts", cfg.OutputDir)
	assert.Equal(t, model.FormatBoth, cfg.Format)
	assert.Equal(t, "darkgreen", cfg.Foreground)
	assert.Equal(t, "pink", cfg.Background)
	assert.Equal(t, 4, cfg.Scale)
}

// TestLoad_InvalidFormat verifies that a config with an unknown format is
// rejected — a config the user wrote should not be silently ignored.
func TestLoad_InvalidFormat(t *testing.T) {
	path := writeConfig(t, "format: jpeg\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// TestLoad_InvalidScale verifies that a non-positive scale is rejected.
func TestLoad_InvalidScale(t *testing.T) {
	path := writeConfig(t, "scale: 0\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scale")
}

// TestLoad_MalformedYAML verifies that unparseable YAML is an error.
func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "outputDir: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}
