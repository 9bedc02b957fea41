// Package qr contains the two orchestrators at the heart of the CLI:
// generation (payload → encoded matrix → artifact files on disk) and
// decoding (image file → payload text → prefix classification).
//
// Encoding is delegated to github.com/skip2/go-qrcode and decoding to
// github.com/makiuchi-d/gozxing; this package contributes the control flow,
// file naming, output-directory handling, and the raster fallback strategy.
// Errors are surfaced as model.CLIError values carrying the exit code the
// CLI should use.
package qr
