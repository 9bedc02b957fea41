package batch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/qrpro/internal/config"
	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/qr"
)

// writeManifest writes manifest content to a temp file and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_StripsComments verifies that JSONC comments are stripped before
// parsing — manifests are hand-written files, so comments are expected.
func TestLoad_StripsComments(t *testing.T) {
	path := writeManifest(t, `{
	// fleet onboarding codes
	"jobs": [
		{"text": "hello", "name": "greeting"}, // plain payload
		{"wifi": {"ssid": "HomeNet", "password": "secret123"}, "name": "home"}
	]
}`)

	manifest, err := Load(path)
	require.NoError(t, err)
	require.Len(t, manifest.Jobs, 2)

	assert.Equal(t, "hello", manifest.Jobs[0].Text)
	require.NotNil(t, manifest.Jobs[1].Wifi)
	assert.Equal(t, "HomeNet", manifest.Jobs[1].Wifi.SSID)
}

// TestLoad_Missing verifies a missing manifest reports ExitFileNotFound.
func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitFileNotFound, cliErr.Code)
}

// TestLoad_EmptyJobs verifies that a manifest without jobs is rejected.
func TestLoad_EmptyJobs(t *testing.T) {
	path := writeManifest(t, `{"jobs": []}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no jobs")
}

// TestLoad_RejectsAmbiguousJob verifies that a job carrying both text and
// wifi payloads is rejected — the payload source must be unambiguous.
func TestLoad_RejectsAmbiguousJob(t *testing.T) {
	path := writeManifest(t, `{"jobs": [
		{"text": "x", "wifi": {"ssid": "net"}}
	]}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one payload source")
}

// TestLoad_RejectsEmptyJob verifies that a job with neither payload source
// is rejected at load time.
func TestLoad_RejectsEmptyJob(t *testing.T) {
	path := writeManifest(t, `{"jobs": [{"name": "empty"}]}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one payload source is required")
}

// TestRun_MixedJobs verifies a batch with text and wifi jobs produces the
// expected artifacts, applying defaults where the job leaves fields unset.
func TestRun_MixedJobs(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(qr.NewGenerator(dir), config.Default())

	manifest := &Manifest{Jobs: []Job{
		{Text: "hello", Name: "greeting", Format: model.FormatBoth},
		{Wifi: &model.WifiCredentials{SSID: "HomeNet", Password: "secret123"}, Name: "home"},
	}}

	results := runner.Run(manifest)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	assert.Len(t, results[0].Artifacts, 2, "both format writes two artifacts")

	require.NoError(t, results[1].Err)
	require.Len(t, results[1].Artifacts, 1, "default format is png only")
	assert.Equal(t, filepath.Join(dir, "home.png"), results[1].Artifacts[0].Path)
}

// TestRun_FailingJobDoesNotAbort verifies batch isolation: an invalid job is
// reported in its own result and the following jobs still run.
func TestRun_FailingJobDoesNotAbort(t *testing.T) {
	runner := NewRunner(qr.NewGenerator(t.TempDir()), config.Default())

	manifest := &Manifest{Jobs: []Job{
		{Text: "   ", Name: "blank"}, // whitespace-only payload fails validation
		{Text: "still runs", Name: "survivor"},
	}}

	results := runner.Run(manifest)
	require.Len(t, results, 2)

	assert.Error(t, results[0].Err, "whitespace payload should fail its job")
	assert.NoError(t, results[1].Err, "later jobs should be unaffected")
	assert.NotEmpty(t, results[1].Artifacts)
}

// TestRun_UnnamedJobsGetPositionalNames verifies that unnamed jobs derive
// distinct names even when generated within the same second.
func TestRun_UnnamedJobsGetPositionalNames(t *testing.T) {
	runner := NewRunner(qr.NewGenerator(t.TempDir()), config.Default())
	fixed := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	runner.Now = func() time.Time { return fixed }

	manifest := &Manifest{Jobs: []Job{
		{Text: "one"},
		{Text: "two"},
	}}

	results := runner.Run(manifest)
	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)

	assert.Equal(t, "2026-08-23_12-00-00_1", results[0].Name)
	assert.Equal(t, "2026-08-23_12-00-00_2", results[1].Name)
	assert.NotEqual(t, results[0].Artifacts[0].Path, results[1].Artifacts[0].Path)
}
