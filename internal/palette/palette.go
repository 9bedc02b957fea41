package palette

import (
	"image/color"
	"sort"
	"strings"
)

// Role distinguishes foreground from background resolution, which only
// affects the fallback color for unknown names.
type Role int

const (
	// Foreground is the module (dark cell) color role. Unknown names
	// resolve to black.
	Foreground Role = iota

	// Background is the empty-cell color role. Unknown names resolve
	// to white.
	Background
)

// table is the closed set of supported color names. The RGB triples are
// fixed; adding names here would widen the CLI's accepted flag values.
var table = map[string]color.RGBA{
	"black":     {R: 0, G: 0, B: 0, A: 255},
	"white":     {R: 255, G: 255, B: 255, A: 255},
	"red":       {R: 255, G: 0, B: 0, A: 255},
	"green":     {R: 0, G: 255, B: 0, A: 255},
	"blue":      {R: 0, G: 0, B: 255, A: 255},
	"yellow":    {R: 255, G: 255, B: 0, A: 255},
	"purple":    {R: 128, G: 0, B: 128, A: 255},
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"pink":      {R: 255, G: 192, B: 203, A: 255},
	"cyan":      {R: 0, G: 255, B: 255, A: 255},
	"navy":      {R: 0, G: 0, B: 128, A: 255},
	"darkgreen": {R: 0, G: 100, B: 0, A: 255},
}

// Default colors per role, also used as the fallback for unknown names.
var (
	defaultForeground = table["black"]
	defaultBackground = table["white"]
)

// Resolve maps a color name to its RGB value. The lookup is an exact,
// case-insensitive match against the 12-entry table. Unknown names return
// the role's default (black for Foreground, white for Background) — this
// fallback is an explicit design choice, not an error, so Resolve never
// fails.
func Resolve(name string, role Role) color.RGBA {
	if c, ok := table[strings.ToLower(name)]; ok {
		return c
	}
	if role == Background {
		return defaultBackground
	}
	return defaultForeground
}

// IsKnown reports whether name is one of the 12 supported color names.
// The CLI uses this to warn (not fail) when a flag value will fall back
// to the role default.
func IsKnown(name string) bool {
	_, ok := table[strings.ToLower(name)]
	return ok
}

// IsDefault reports whether the fg/bg name pair resolves to the standard
// black-on-white rendering. The generation orchestrator uses this to decide
// between the encoder's built-in raster writer and the custom renderer.
func IsDefault(fgName, bgName string) bool {
	fg := Resolve(fgName, Foreground)
	bg := Resolve(bgName, Background)
	return fg == defaultForeground && bg == defaultBackground
}

// Names returns the supported color names in sorted order, for help text
// and the "colors" subcommand.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
