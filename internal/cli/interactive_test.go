// Package cli — interactive_test.go contains unit tests for the interactive
// menu's exit paths. The paths under test all return before any generation
// or decoding happens, so no artifacts are written.
package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/qrpro/internal/model"
)

// TestRunInteractive_EOFAtMenuCancels verifies that a closed input stream
// at the menu prompt reports user cancellation rather than a generic error.
func TestRunInteractive_EOFAtMenuCancels(t *testing.T) {
	err := runInteractive(strings.NewReader(""))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitUserCancelled, cliErr.Code)
}

// TestRunInteractive_EOFMidFlowCancels verifies that cancellation is honored
// at every prompt, not just the menu: choosing the WiFi flow and then closing
// the stream at the SSID prompt cancels the same way.
func TestRunInteractive_EOFMidFlowCancels(t *testing.T) {
	err := runInteractive(strings.NewReader("2\n"))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitUserCancelled, cliErr.Code)
}

// TestRunInteractive_InvalidChoice verifies that an unrecognized menu choice
// is invalid input, with a message naming the offending value.
func TestRunInteractive_InvalidChoice(t *testing.T) {
	err := runInteractive(strings.NewReader("9\n"))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitInvalidInput, cliErr.Code)
	assert.Contains(t, cliErr.Message, `"9"`)
}

// TestInteractive_InterruptIsCleanExit verifies that an interrupt while
// waiting at a prompt ends the session successfully (nil error, so exit 0)
// rather than as a cancellation or failure. The test stands in for Ctrl-C
// by handing the session an already-cancelled context; the input side is an
// unwritten pipe so the prompt can only observe the interrupt.
func TestInteractive_InterruptIsCleanExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()

	err := interactiveWithContext(ctx, r)
	assert.NoError(t, err)
}

// TestPrompt_TrimsWhitespace verifies that prompt answers are trimmed, so
// trailing spaces or a copy-pasted value with padding do not leak into
// payloads.
func TestPrompt_TrimsWhitespace(t *testing.T) {
	p := &prompter{
		ctx:   context.Background(),
		lines: readLines(strings.NewReader("  HomeNet  \n")),
	}

	answer, err := p.prompt("SSID: ")
	require.NoError(t, err)
	assert.Equal(t, "HomeNet", answer)
}
