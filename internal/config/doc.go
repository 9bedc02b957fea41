// Package config loads optional per-directory defaults for the qrpro CLI.
//
// A qrpro.yaml file in the working directory can set the output directory,
// default format, colors, and module scale. Flags always win over the file,
// and the file wins over built-in defaults. A missing file is not an error —
// the built-in defaults apply.
package config
