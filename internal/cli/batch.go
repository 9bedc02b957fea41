// Package cli — batch.go implements the "qrpro batch" command.
//
// The batch command reads a JSONC manifest describing multiple generation
// jobs and runs them in order. Jobs fail independently: the command reports
// every job's outcome and exits non-zero only if at least one job failed.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/batch"
	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/qr"
)

// NewBatchCommand creates the "batch" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Generate QR codes from a JSONC manifest",
		Long: `Run every generation job listed in a JSONC manifest file. Comments
are allowed in the manifest.

Each job is either a text payload or a WiFi credential set, with optional
per-job name, format, and colors; unset fields fall back to the configured
defaults. A failing job does not stop the batch.

Example manifest:
  {
    // onboarding codes
    "jobs": [
      {"text": "https://example.com", "name": "homepage"},
      {"wifi": {"ssid": "GuestNet", "security": "nopass"}, "format": "both"}
    ]
  }

Examples:
  qrpro batch codes.jsonc
  qrpro batch --output-dir out --json codes.jsonc`,

		// Exactly one positional argument (the manifest path) is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0])
		},
	}

	return cmd
}

// runBatch is the main logic function for the batch command.
// It loads the manifest, runs every job against a single generator, and
// summarizes the outcomes.
func runBatch(path string) error {
	cfg, err := loadDefaults()
	if err != nil {
		return err
	}

	manifest, err := batch.Load(path)
	if err != nil {
		return err
	}
	VerboseLog("Loaded manifest %s with %d job(s)", path, len(manifest.Jobs))

	generator := qr.NewGenerator(cfg.OutputDir)
	generator.Scale = cfg.Scale

	results := batch.NewRunner(generator, cfg).Run(manifest)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	printBatchResult(results, failed)

	if failed > 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("%d of %d jobs failed", failed, len(results)))
	}
	return nil
}

// printBatchResult outputs per-job outcomes in text or JSON format.
func printBatchResult(results []batch.Result, failed int) {
	if IsJSONOutput() {
		printBatchResultJSON(results, failed)
	} else {
		printBatchResultText(results, failed)
	}
}

// batchJobJSON is the JSON output structure for a single batch job.
type batchJobJSON struct {
	Name      string        `json:"name"`
	Artifacts []qr.Artifact `json:"artifacts,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// printBatchResultJSON outputs the batch outcome as structured JSON.
func printBatchResultJSON(results []batch.Result, failed int) {
	type resultJSON struct {
		Jobs   []batchJobJSON `json:"jobs"`
		Failed int            `json:"failed"`
	}

	out := resultJSON{
		// Empty slice instead of nil so JSON output shows [] rather than null.
		Jobs:   make([]batchJobJSON, 0, len(results)),
		Failed: failed,
	}

	for _, r := range results {
		entry := batchJobJSON{Name: r.Name, Artifacts: r.Artifacts}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		out.Jobs = append(out.Jobs, entry)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printBatchResultText outputs the batch outcome as human-readable text.
func printBatchResultText(results []batch.Result, failed int) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("FAIL %s: %v\n", r.Name, r.Err)
			continue
		}
		for _, a := range r.Artifacts {
			fmt.Printf("ok   %s: %s\n", r.Name, a.Path)
		}
	}
	fmt.Printf("\n%d job(s), %d failed\n", len(results), failed)
}
