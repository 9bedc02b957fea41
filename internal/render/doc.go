// Package render draws QR bit matrices into image artifacts.
//
// Three output paths are supported:
//   - Raster: an RGBA image with one scale×scale pixel block per module,
//     painted in a caller-supplied foreground/background color pair.
//   - Vector: a self-contained SVG assembled from <rect> elements. The
//     encoding library has no vector writer of its own, so the SVG is
//     built directly from the bit matrix, always black-on-white.
//   - Terminal: a half-block Unicode preview on a writer, via qrterminal.
//
// The package renders whatever matrix it is given; deciding between the
// encoder's built-in writer and the custom raster path (and falling back on
// failure) is the generation orchestrator's job.
package render
