package qr

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/palette"
	"github.com/mmr-tortoise/qrpro/internal/render"
)

// DefaultOutputDir is the directory artifacts are written to, created
// relative to the working directory if absent.
const DefaultOutputDir = "qrcodes"

// Artifact describes one file written by a generation call.
type Artifact struct {
	// Path is the location of the written file, including the output
	// directory prefix.
	Path string `json:"path"`

	// Format is the artifact's format (png or svg — never both; a "both"
	// generation produces two artifacts).
	Format model.OutputFormat `json:"format"`
}

// Generator writes QR code artifacts into an output directory.
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	// OutputDir is the artifact directory. Created on first use if absent.
	OutputDir string

	// Scale is the rendered size of one module in pixels (raster) or the
	// width/height multiplier (vector).
	Scale int
}

// NewGenerator returns a Generator writing into outputDir at the default
// scale. An empty outputDir selects DefaultOutputDir.
func NewGenerator(outputDir string) *Generator {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Generator{OutputDir: outputDir, Scale: render.DefaultScale}
}

// EnsureOutputDir creates the output directory if it does not exist yet.
// Generate calls this itself; it is exported so the CLI can create the
// directory once up front and report the side effect to the user.
func (g *Generator) EnsureOutputDir() error {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return model.WrapCLIError(model.ExitEncodeFailure,
			fmt.Sprintf("failed to create output directory %q", g.OutputDir), err)
	}
	return nil
}

// Generate encodes text and writes the artifact(s) selected by format.
//
// The caller is responsible for validating text with model.ValidatePayload
// first; Generate does not re-validate. fgName and bgName are palette color
// names and only affect the raster path — unknown names fall back to the
// role defaults rather than failing.
//
// For FormatBoth the SVG is written first, then the PNG; a failure in either
// write aborts the call as a whole, so a "both" call that errors may leave
// one artifact behind. Nothing is retried.
func (g *Generator) Generate(text, baseName string, format model.OutputFormat, fgName, bgName string) ([]Artifact, error) {
	if !format.IsValid() {
		return nil, model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("invalid output format %q", format))
	}
	if err := g.EnsureOutputDir(); err != nil {
		return nil, err
	}

	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitEncodeFailure, "failed to encode QR code", err)
	}

	var artifacts []Artifact

	if format == model.FormatSVG || format == model.FormatBoth {
		path := filepath.Join(g.OutputDir, baseName+".svg")
		if err := render.WriteSVG(path, code.Bitmap(), g.Scale); err != nil {
			return nil, model.WrapCLIError(model.ExitEncodeFailure,
				fmt.Sprintf("failed to write SVG artifact %s", path), err)
		}
		artifacts = append(artifacts, Artifact{Path: path, Format: model.FormatSVG})
	}

	if format == model.FormatPNG || format == model.FormatBoth {
		path := filepath.Join(g.OutputDir, baseName+".png")
		if err := g.writePNG(code, path, fgName, bgName); err != nil {
			return nil, model.WrapCLIError(model.ExitEncodeFailure,
				fmt.Sprintf("failed to write PNG artifact %s", path), err)
		}
		artifacts = append(artifacts, Artifact{Path: path, Format: model.FormatPNG})
	}

	return artifacts, nil
}

// writePNG writes the raster artifact. Default black-on-white colors use the
// encoder's built-in writer directly; custom colors go through the two-step
// raster strategy (custom renderer, baseline on failure).
func (g *Generator) writePNG(code *qrcode.QRCode, path, fgName, bgName string) error {
	baseline := func() error {
		// Negative size selects per-module scaling in the encoder's writer:
		// each module becomes |size| pixels, matching the custom renderer.
		return code.WriteFile(-g.Scale, path)
	}

	if palette.IsDefault(fgName, bgName) {
		return baseline()
	}

	fg := palette.Resolve(fgName, palette.Foreground)
	bg := palette.Resolve(bgName, palette.Background)
	custom := func() error {
		return render.WriteRasterPNG(path, code.Bitmap(), fg, bg, g.Scale)
	}

	return rasterStrategy(custom, baseline)
}

// rasterStrategy is the explicit degrade-gracefully policy for custom-colored
// rendering: attempt the custom renderer, and if it fails use the baseline
// black/white writer instead of propagating the error. The failure path is a
// named step here (rather than an inline error swallow) so it stays visible
// in review and tests.
func rasterStrategy(custom, baseline func() error) error {
	if err := custom(); err != nil {
		return baseline()
	}
	return nil
}

// TimestampBaseName returns the default artifact base name for a plain text
// payload: the generation time formatted as YYYY-MM-DD_HH-MM-SS.
func TimestampBaseName(now time.Time) string {
	return now.Format("2006-01-02_15-04-05")
}

// WifiBaseName returns the default artifact base name for a WiFi payload:
// wifi_<ssid>_YYYYMMDD_HHMMSS.
func WifiBaseName(ssid string, now time.Time) string {
	return fmt.Sprintf("wifi_%s_%s", ssid, now.Format("20060102_150405"))
}
