// Package cli — interactive.go implements the interactive menu shown when
// qrpro is invoked without a subcommand.
//
// The menu offers the three core operations (generate text, generate WiFi,
// decode image) and prompts for the inputs each one needs. Everything past
// the prompts reuses the same run functions the subcommands use, so the two
// entry points cannot drift apart.
//
// Two ways out of the menu are not errors in the usual sense: Ctrl-C is a
// clean, successful termination (exit 0), and Ctrl-D (closed stdin) cancels
// with ExitUserCancelled.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mmr-tortoise/qrpro/internal/model"
)

// errInterrupted marks a SIGINT received while waiting at a prompt.
// It never escapes the interactive layer: runInteractive translates it
// into a clean exit.
var errInterrupted = errors.New("interrupted")

// promptLine is one unit read from the input stream: a line of text, or
// the read error that ended the stream.
type promptLine struct {
	text string
	err  error
}

// prompter serializes prompt reads against interrupt delivery. Reads come
// from a channel fed by a background goroutine because a blocking
// bufio.Scanner.Scan on stdin cannot observe a context.
type prompter struct {
	ctx   context.Context
	lines <-chan promptLine
}

// readLines scans in line by line on a background goroutine. The channel
// closes on EOF. The goroutine may outlive an interrupted session; it exits
// when the input stream does.
func readLines(in io.Reader) <-chan promptLine {
	lines := make(chan promptLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- promptLine{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			lines <- promptLine{err: err}
		}
	}()
	return lines
}

// prompt prints a label and waits for one trimmed line or an interrupt,
// whichever comes first. A closed input stream is reported as user
// cancellation, not as an error in the usual sense: Ctrl-D at a prompt
// means "never mind".
func (p *prompter) prompt(label string) (string, error) {
	fmt.Print(label)

	select {
	case <-p.ctx.Done():
		return "", errInterrupted
	case line, ok := <-p.lines:
		if !ok {
			return "", model.NewCLIError(model.ExitUserCancelled, "cancelled")
		}
		if line.err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError, "failed to read user input", line.err)
		}
		return strings.TrimSpace(line.text), nil
	}
}

// runInteractive shows the operation menu and dispatches to the chosen
// flow, with SIGINT armed for the duration of the session.
func runInteractive(in io.Reader) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return interactiveWithContext(ctx, in)
}

// interactiveWithContext is the session body behind runInteractive, split
// out so tests can supply their own context in place of the signal handler.
// Interruption ends the session cleanly: a user backing out of a menu got
// exactly what they asked for.
func interactiveWithContext(ctx context.Context, in io.Reader) error {
	p := &prompter{ctx: ctx, lines: readLines(in)}

	err := interactiveSession(p)
	if errors.Is(err, errInterrupted) {
		fmt.Println()
		return nil
	}
	return err
}

// interactiveSession prints the menu and runs the chosen flow.
func interactiveSession(p *prompter) error {
	fmt.Println("What would you like to do?")
	fmt.Println("  1) Generate a QR code from text")
	fmt.Println("  2) Generate a WiFi network QR code")
	fmt.Println("  3) Decode a QR code from an image")

	choice, err := p.prompt("\nChoice [1-3]: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return interactiveGenerate(p)
	case "2":
		return interactiveWifi(p)
	case "3":
		return interactiveDecode(p)
	default:
		return model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("invalid choice %q (expected 1, 2, or 3)", choice))
	}
}

// interactiveGenerate prompts for a text payload and runs the generate flow
// with default output settings.
func interactiveGenerate(p *prompter) error {
	text, err := p.prompt("Text to encode: ")
	if err != nil {
		return err
	}
	return runGenerate(text, &generateFlags{})
}

// interactiveWifi prompts for the WiFi credential fields and runs the wifi
// flow. Empty answers take the same defaults as the wifi subcommand's flags.
func interactiveWifi(p *prompter) error {
	ssid, err := p.prompt("Network name (SSID): ")
	if err != nil {
		return err
	}

	password, err := p.prompt("Password (empty for open network): ")
	if err != nil {
		return err
	}

	security, err := p.prompt("Security [WPA/WEP/nopass] (default WPA): ")
	if err != nil {
		return err
	}
	if security == "" {
		security = "WPA"
	}

	hiddenAnswer, err := p.prompt("Hidden network? [y/N] ")
	if err != nil {
		return err
	}
	hidden := strings.EqualFold(hiddenAnswer, "y") || strings.EqualFold(hiddenAnswer, "yes")

	return runWifi(ssid, &wifiFlags{
		password: password,
		security: security,
		hidden:   hidden,
	})
}

// interactiveDecode prompts for an image path and runs the decode flow.
func interactiveDecode(p *prompter) error {
	path, err := p.prompt("Image file to decode: ")
	if err != nil {
		return err
	}
	return runDecode(path)
}
