package batch

import (
	"fmt"
	"time"

	"github.com/mmr-tortoise/qrpro/internal/config"
	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/qr"
	"github.com/mmr-tortoise/qrpro/internal/wifi"
)

// Result is the outcome of one batch job.
type Result struct {
	// Name is the artifact base name the job resolved to.
	Name string `json:"name"`

	// Artifacts lists the files written. Empty when Err is set.
	Artifacts []qr.Artifact `json:"artifacts,omitempty"`

	// Err is the job's failure, nil on success. A failed job does not
	// stop the batch; callers inspect each result individually.
	Err error `json:"-"`
}

// Runner executes manifest jobs against a generator, filling unset job
// fields from the defaults.
type Runner struct {
	// Generator writes the artifacts.
	Generator *qr.Generator

	// Defaults supplies format and colors for jobs that leave them unset.
	Defaults config.Config

	// Now provides timestamps for default artifact names.
	// Overridable for tests; nil means time.Now.
	Now func() time.Time
}

// NewRunner returns a Runner over the given generator and defaults.
func NewRunner(g *qr.Generator, defaults config.Config) *Runner {
	return &Runner{Generator: g, Defaults: defaults, Now: time.Now}
}

// Run executes every job in order and returns one result per job, in the
// same order. Jobs fail independently: an invalid payload or write error in
// one job is recorded in its result and the batch moves on.
func (r *Runner) Run(manifest *Manifest) []Result {
	results := make([]Result, 0, len(manifest.Jobs))
	for i := range manifest.Jobs {
		results = append(results, r.runJob(&manifest.Jobs[i], i))
	}
	return results
}

// runJob resolves a job's payload, name, format and colors, then generates.
func (r *Runner) runJob(job *Job, index int) Result {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	var payload, defaultName string
	if job.Wifi != nil {
		creds := *job.Wifi
		if err := creds.Validate(); err != nil {
			return Result{Name: job.Name, Err: model.WrapCLIError(model.ExitInvalidInput,
				fmt.Sprintf("job %d", index+1), err)}
		}
		payload = wifi.Encode(creds)
		defaultName = qr.WifiBaseName(creds.SSID, now)
	} else {
		if err := model.ValidatePayload(job.Text); err != nil {
			return Result{Name: job.Name, Err: model.WrapCLIError(model.ExitInvalidInput,
				fmt.Sprintf("job %d", index+1), err)}
		}
		payload = job.Text
		defaultName = qr.TimestampBaseName(now)
	}

	name := job.Name
	if name == "" {
		// Unnamed jobs get a positional suffix: timestamp names alone
		// collide when several jobs run within the same second.
		name = fmt.Sprintf("%s_%d", defaultName, index+1)
	}

	format := job.Format
	if format == "" {
		format = r.Defaults.Format
	}
	fg := job.Foreground
	if fg == "" {
		fg = r.Defaults.Foreground
	}
	bg := job.Background
	if bg == "" {
		bg = r.Defaults.Background
	}

	artifacts, err := r.Generator.Generate(payload, name, format, fg, bg)
	if err != nil {
		return Result{Name: name, Err: err}
	}
	return Result{Name: name, Artifacts: artifacts}
}
