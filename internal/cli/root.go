// Package cli implements the cobra-based CLI commands for qrpro.
//
// Each subcommand (generate, wifi, decode, batch, list, colors) is defined
// in its own file within this package. This file defines the root command
// that serves as the parent for all subcommands and handles global flags.
//
// Running the binary with no subcommand drops into a small interactive menu
// (see interactive.go) instead of printing usage.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/config"
	"github.com/mmr-tortoise/qrpro/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine consumption.
	// When false (default), output uses human-readable text format.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool

	// configPath is the location of the YAML defaults file.
	// Defaults to qrpro.yaml in the working directory; a missing file is
	// not an error (built-in defaults apply).
	configPath string

	// outputDirFlag overrides the configured artifact directory when set.
	outputDirFlag string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command carries the global flags and registers all subcommands.
// Invoked bare, it does not print usage — it starts the interactive menu,
// which walks the user through the three core operations.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "qrpro",
		Short: "Generate and decode QR codes",
		Long: `qrpro generates QR codes from plain text or WiFi credentials as PNG
and/or SVG files, and decodes QR codes from existing images.

Decoded payloads are classified by prefix (WiFi, URL, phone, email, text),
and WiFi payloads are broken out into their credential fields.

Run without a subcommand for an interactive menu.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// A bare invocation falls through to the interactive menu rather
		// than the cobra help screen.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin())
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName,
		"Path to the YAML defaults file")
	rootCmd.PersistentFlags().StringVarP(&outputDirFlag, "output-dir", "o", "",
		"Directory for generated artifacts (overrides config)")

	// Register subcommands. Each subcommand is defined in its own file
	// (generate.go, wifi.go, etc.) and returns a *cobra.Command.
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewWifiCommand())
	rootCmd.AddCommand(NewDecodeCommand())
	rootCmd.AddCommand(NewBatchCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewColorsCommand())

	return rootCmd
}

// loadDefaults reads the YAML config file and applies global flag overrides
// on top. Precedence, lowest to highest: built-in defaults, config file,
// command-line flags.
func loadDefaults() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, model.WrapCLIError(model.ExitInvalidInput, "invalid configuration", err)
	}
	VerboseLog("Loaded defaults (outputDir=%s format=%s fg=%s bg=%s scale=%d)",
		cfg.OutputDir, cfg.Format, cfg.Foreground, cfg.Background, cfg.Scale)

	if outputDirFlag != "" {
		cfg.OutputDir = outputDirFlag
	}
	return cfg, nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// We write to stderr for errors, even in JSON mode, because stdout
		// is reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
