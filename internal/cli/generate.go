// Package cli — generate.go implements the "qrpro generate" command.
//
// The generate command encodes a plain text payload as a QR code and writes
// it to the output directory as PNG, SVG, or both. Unless suppressed, a
// half-block preview of the code is printed to the terminal so the result
// can be scanned straight off the screen.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/palette"
	"github.com/mmr-tortoise/qrpro/internal/qr"
	"github.com/mmr-tortoise/qrpro/internal/render"
)

// generateFlags holds the flag values for the generate command.
// These are bound to cobra flags in NewGenerateCommand.
type generateFlags struct {
	// name is the artifact base name, without extension.
	// Empty means a timestamp-derived default.
	name string

	// format selects png, svg, or both. Empty means the configured default.
	format string

	// foreground and background are palette color names for the PNG.
	// Empty means the configured defaults.
	foreground string
	background string

	// quiet suppresses the terminal preview.
	quiet bool
}

// NewGenerateCommand creates the "generate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Generate a QR code from text",
		Long: `Generate a QR code from a text payload and write it to the output
directory as PNG, SVG, or both.

Colors apply to the PNG artifact only; SVG output is always black on white.
Unknown color names fall back to black and white.

Examples:
  qrpro generate "https://example.com"
  qrpro generate --format both --name homepage "https://example.com"
  qrpro generate --fg navy --bg yellow "hello"`,

		// Exactly one positional argument (the payload) is required.
		Args: cobra.ExactArgs(1),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Artifact base name (default: timestamp)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: png, svg, both")
	cmd.Flags().StringVar(&flags.foreground, "fg", "", "Module color name for PNG output")
	cmd.Flags().StringVar(&flags.background, "bg", "", "Background color name for PNG output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress the terminal preview")

	return cmd
}

// runGenerate is the main logic function for the generate command.
// It validates the payload, resolves format and colors against the
// configured defaults, writes the artifacts, and reports the result.
func runGenerate(text string, flags *generateFlags) error {
	cfg, err := loadDefaults()
	if err != nil {
		return err
	}

	if err := model.ValidatePayload(text); err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid payload", err)
	}

	format := cfg.Format
	if flags.format != "" {
		format, err = model.ParseOutputFormat(flags.format)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, "invalid --format", err)
		}
	}

	fg, bg := resolveColorNames(flags.foreground, flags.background, cfg.Foreground, cfg.Background)

	name := flags.name
	if name == "" {
		name = qr.TimestampBaseName(time.Now())
	}

	generator := qr.NewGenerator(cfg.OutputDir)
	generator.Scale = cfg.Scale

	VerboseLog("Generating %s artifact(s) named %q in %s", format, name, cfg.OutputDir)
	artifacts, err := generator.Generate(text, name, format, fg, bg)
	if err != nil {
		return err
	}

	if !flags.quiet && !IsJSONOutput() {
		render.Terminal(os.Stdout, text)
	}

	printGenerateResult(text, name, artifacts)
	return nil
}

// resolveColorNames picks the effective color names from flags and config.
// Unknown names are kept (the palette resolver falls back to black/white),
// but a verbose note flags the likely typo.
func resolveColorNames(fgFlag, bgFlag, fgDefault, bgDefault string) (string, string) {
	fg, bg := fgDefault, bgDefault
	if fgFlag != "" {
		fg = fgFlag
	}
	if bgFlag != "" {
		bg = bgFlag
	}

	if !palette.IsKnown(fg) {
		VerboseLog("Unknown foreground color %q, falling back to black", fg)
	}
	if !palette.IsKnown(bg) {
		VerboseLog("Unknown background color %q, falling back to white", bg)
	}
	return fg, bg
}

// printGenerateResult outputs the generation result in text or JSON format,
// depending on the global --json flag.
func printGenerateResult(payload, name string, artifacts []qr.Artifact) {
	if IsJSONOutput() {
		printGenerateResultJSON(payload, name, artifacts)
	} else {
		printGenerateResultText(name, artifacts)
	}
}

// printGenerateResultJSON outputs the generation result as structured JSON.
func printGenerateResultJSON(payload, name string, artifacts []qr.Artifact) {
	result := map[string]interface{}{
		"name":      name,
		"payload":   payload,
		"artifacts": artifacts,
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printGenerateResultText outputs the generation result as human-readable text.
func printGenerateResultText(name string, artifacts []qr.Artifact) {
	fmt.Printf("Generated QR code %q\n", name)
	for _, a := range artifacts {
		fmt.Printf("  %s: %s\n", a.Format, a.Path)
	}
}
