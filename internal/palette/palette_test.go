package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResolve_CaseInsensitive verifies that "RED" and "red" yield the same
// RGB triple — lookups normalize case before matching.
func TestResolve_CaseInsensitive(t *testing.T) {
	upper := Resolve("RED", Foreground)
	lower := Resolve("red", Foreground)

	assert.Equal(t, lower, upper)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, lower)
}

// TestResolve_UnknownFallsBackByRole verifies the role-based fallback:
// an unknown name resolves to black for the foreground role and white for
// the background role. This is documented behavior, not an error path.
func TestResolve_UnknownFallsBackByRole(t *testing.T) {
	fg := Resolve("mauve", Foreground)
	assert.Equal(t, color.RGBA{A: 255}, fg, "unknown foreground should fall back to black")

	bg := Resolve("mauve", Background)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, bg,
		"unknown background should fall back to white")
}

// TestResolve_FullTable verifies every entry of the 12-color table resolves
// to its fixed RGB triple. The triples are part of the CLI's contract — a
// rendered artifact's pixels are checked against them.
func TestResolve_FullTable(t *testing.T) {
	expected := map[string]color.RGBA{
		"black":     {0, 0, 0, 255},
		"white":     {255, 255, 255, 255},
		"red":       {255, 0, 0, 255},
		"green":     {0, 255, 0, 255},
		"blue":      {0, 0, 255, 255},
		"yellow":    {255, 255, 0, 255},
		"purple":    {128, 0, 128, 255},
		"orange":    {255, 165, 0, 255},
		"pink":      {255, 192, 203, 255},
		"cyan":      {0, 255, 255, 255},
		"navy":      {0, 0, 128, 255},
		"darkgreen": {0, 100, 0, 255},
	}

	for name, want := range expected {
		assert.Equal(t, want, Resolve(name, Foreground), "color %q", name)
	}
}

// TestIsDefault verifies the black-on-white detection used to pick between
// the built-in raster writer and the custom renderer. Unknown names count as
// default because they fall back to the default colors.
func TestIsDefault(t *testing.T) {
	assert.True(t, IsDefault("black", "white"))
	assert.True(t, IsDefault("BLACK", "WHITE"))
	assert.True(t, IsDefault("mauve", "eggshell"), "unknown names fall back to defaults")

	assert.False(t, IsDefault("blue", "white"))
	assert.False(t, IsDefault("black", "yellow"))
}

// TestNames verifies the color list is complete, sorted, and stable —
// it feeds help text and the "colors" subcommand.
func TestNames(t *testing.T) {
	names := Names()

	assert.Len(t, names, 12)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "darkgreen")
	assert.Contains(t, names, "navy")
}
