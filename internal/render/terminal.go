package render

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// Terminal prints a scannable half-block preview of the payload to w.
// This mirrors the on-screen preview the tool shows after generating an
// artifact, so users can scan straight from the terminal without opening
// the file.
//
// qrterminal encodes the payload itself (medium error correction), so the
// preview is independent of the artifact pipeline.
func Terminal(w io.Writer, payload string) {
	qrterminal.GenerateHalfBlock(payload, qrterminal.M, w)
}
