// Package batch processes JSONC manifests describing multiple QR
// generation jobs.
//
// A manifest is a JSON-with-comments file listing jobs, each either a plain
// text payload or a WiFi credential set, with optional per-job name, format,
// and colors. Jobs run sequentially; a failing job is reported in its result
// and does not abort the rest of the batch.
//
// JSONC is used (rather than strict JSON) so manifests can carry comments —
// the file is written and maintained by hand.
package batch
