package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/qrpro/internal/model"
)

// Manifest is the parsed top-level structure of a batch file.
type Manifest struct {
	// Jobs lists the generation jobs in execution order.
	// Must contain at least one entry.
	Jobs []Job `json:"jobs"`
}

// Job describes one QR artifact to generate. Exactly one of Text or Wifi
// must be set; the remaining fields are optional and fall back to the
// runner's defaults.
type Job struct {
	// Name is the artifact base name (without extension). When empty, a
	// timestamp-derived name is used, suffixed with the job's position so
	// unnamed jobs in the same batch do not collide.
	Name string `json:"name,omitempty"`

	// Text is a plain payload to encode. Mutually exclusive with Wifi.
	Text string `json:"text,omitempty"`

	// Wifi is a credential set to encode as a WIFI: payload.
	// Mutually exclusive with Text.
	Wifi *model.WifiCredentials `json:"wifi,omitempty"`

	// Format overrides the default output format for this job.
	Format model.OutputFormat `json:"format,omitempty"`

	// Foreground overrides the default module color for this job.
	Foreground string `json:"foreground,omitempty"`

	// Background overrides the default background color for this job.
	Background string `json:"background,omitempty"`
}

// Load reads a batch manifest, strips JSONC comments, and parses it.
//
// Validation here covers manifest structure only (at least one job, exactly
// one payload source per job, known format if one is given). Payload-level
// validation happens when each job runs, so one bad payload fails one job,
// not the whole file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitFileNotFound,
				fmt.Sprintf("manifest not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read manifest %s", path), err)
	}

	var manifest Manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidInput,
			fmt.Sprintf("failed to parse manifest %s", path), err)
	}

	if len(manifest.Jobs) == 0 {
		return nil, model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("manifest %s contains no jobs", path))
	}

	for i := range manifest.Jobs {
		if err := manifest.Jobs[i].validate(); err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidInput,
				fmt.Sprintf("manifest %s: job %d", path, i+1), err)
		}
	}

	return &manifest, nil
}

// validate checks the structural constraint on a job: exactly one payload
// source, and a known format when one is specified.
func (j *Job) validate() error {
	hasText := j.Text != ""
	hasWifi := j.Wifi != nil

	switch {
	case hasText && hasWifi:
		return fmt.Errorf("has both text and wifi, exactly one payload source is allowed")
	case !hasText && !hasWifi:
		return fmt.Errorf("has neither text nor wifi, one payload source is required")
	}

	if j.Format != "" && !j.Format.IsValid() {
		return fmt.Errorf("invalid format %q (valid: png, svg, both)", j.Format)
	}

	return nil
}
