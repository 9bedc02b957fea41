// Package cli — list.go implements the "qrpro list" command.
//
// The list command shows the QR artifacts present in the output directory,
// with their format, size, and modification time, as a text table or JSON
// array depending on the --json flag. Only .png and .svg files are listed;
// anything else in the directory is ignored.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/model"
)

// artifactInfo describes one listed artifact file.
type artifactInfo struct {
	// Name is the file name within the output directory.
	Name string `json:"name"`

	// Format is derived from the file extension (png or svg).
	Format string `json:"format"`

	// SizeBytes is the file size.
	SizeBytes int64 `json:"sizeBytes"`

	// Modified is the file's last modification time.
	Modified time.Time `json:"modified"`
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated QR artifacts",
		Long: `List the QR artifacts in the output directory with their format,
size, and modification time.

Examples:
  qrpro list
  qrpro list --output-dir out --json`,

		// No positional arguments are required for the list command.
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}

	return cmd
}

// runList is the main logic function for the list command.
// It scans the output directory for artifacts and prints them.
func runList() error {
	cfg, err := loadDefaults()
	if err != nil {
		return err
	}

	artifacts, err := collectArtifacts(cfg.OutputDir)
	if err != nil {
		return err
	}
	VerboseLog("Found %d artifact(s) in %s", len(artifacts), cfg.OutputDir)

	printListResult(cfg.OutputDir, artifacts)
	return nil
}

// collectArtifacts scans dir for .png and .svg files and returns them
// sorted by name. A missing directory is not an error — it simply means
// nothing has been generated yet.
func collectArtifacts(dir string) ([]artifactInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read output directory %s", dir), err)
	}

	var artifacts []artifactInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".png" && ext != ".svg" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// The file disappeared between ReadDir and Info. Skip it.
			VerboseLog("Warning: skipping %s: %v", entry.Name(), err)
			continue
		}

		artifacts = append(artifacts, artifactInfo{
			Name:      entry.Name(),
			Format:    strings.TrimPrefix(ext, "."),
			SizeBytes: info.Size(),
			Modified:  info.ModTime(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})

	return artifacts, nil
}

// printListResult outputs the artifact list in text or JSON format,
// depending on the global --json flag.
func printListResult(dir string, artifacts []artifactInfo) {
	if IsJSONOutput() {
		printListResultJSON(dir, artifacts)
	} else {
		printListResultText(artifacts)
	}
}

// printListResultJSON outputs the artifact list as structured JSON.
// The top-level key is "artifacts" containing an array of artifact objects.
func printListResultJSON(dir string, artifacts []artifactInfo) {
	type resultJSON struct {
		OutputDir string         `json:"outputDir"`
		Artifacts []artifactInfo `json:"artifacts"`
	}

	result := resultJSON{
		OutputDir: dir,
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null when no artifacts are found.
		Artifacts: make([]artifactInfo, 0, len(artifacts)),
	}
	result.Artifacts = append(result.Artifacts, artifacts...)

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printListResultText outputs the artifact list as a human-readable
// text table with aligned columns.
//
// The table format is:
//
//	NAME                           FORMAT  SIZE      MODIFIED
//	homepage.png                   png     1.2 KiB   2026-08-23 12:00:05
//	wifi_HomeNet_20260823_120105.png png   1.4 KiB   2026-08-23 12:01:05
func printListResultText(artifacts []artifactInfo) {
	if len(artifacts) == 0 {
		fmt.Println("No artifacts found.")
		return
	}

	fmt.Printf("%-40s %-7s %-10s %s\n", "NAME", "FORMAT", "SIZE", "MODIFIED")
	for _, a := range artifacts {
		fmt.Printf("%-40s %-7s %-10s %s\n",
			a.Name,
			a.Format,
			FormatSize(a.SizeBytes),
			a.Modified.Format("2006-01-02 15:04:05"),
		)
	}
}

// FormatSize renders a byte count as a short human-readable string using
// binary units (KiB, MiB). Artifacts are small, so two units are enough.
//
// This function is exported for testing purposes (tested in list_test.go).
//
// Example:
//
//	812     → "812 B"
//	1253    → "1.2 KiB"
//	3145728 → "3.0 MiB"
func FormatSize(bytes int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
	)

	switch {
	case bytes >= mib:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/float64(mib))
	case bytes >= kib:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/float64(kib))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
