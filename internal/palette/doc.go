// Package palette resolves the fixed set of named colors used for custom
// QR rendering.
//
// The palette is a closed, 12-entry table. Resolution is a total function:
// unknown names never error, they fall back to the default color for the
// role being resolved (black for foreground, white for background).
package palette
