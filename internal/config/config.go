package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/qr"
	"github.com/mmr-tortoise/qrpro/internal/render"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "qrpro.yaml"

// Config holds the tool's defaults. Zero/empty fields mean "use the
// built-in default" — Load fills them in, so consumers never see an
// incomplete Config.
type Config struct {
	// OutputDir is the artifact directory. Default: "qrcodes".
	OutputDir string `yaml:"outputDir"`

	// Format is the default output format (png, svg or both). Default: png.
	Format model.OutputFormat `yaml:"format"`

	// Foreground is the default module color name. Default: black.
	Foreground string `yaml:"foreground"`

	// Background is the default background color name. Default: white.
	Background string `yaml:"background"`

	// Scale is the rendered module size in pixels. Default: 10.
	Scale int `yaml:"scale"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() Config {
	return Config{
		OutputDir:  qr.DefaultOutputDir,
		Format:     model.FormatPNG,
		Foreground: "black",
		Background: "white",
		Scale:      render.DefaultScale,
	}
}

// Load reads the config file at path and merges it over the built-in
// defaults. A missing file yields the defaults with no error; a present
// but malformed or invalid file is an error, because silently ignoring a
// config the user wrote would be worse than failing.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Unmarshal over the defaults: fields absent from the file keep their
	// default values, fields present override them.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(path); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// validate rejects config values that would fail every later command
// anyway, pointing at the file so the user knows where the bad value
// came from.
func (c Config) validate(path string) error {
	if !c.Format.IsValid() {
		return fmt.Errorf("config %s: invalid format %q (valid: png, svg, both)", path, c.Format)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config %s: invalid scale %d (must be >= 1)", path, c.Scale)
	}
	return nil
}
