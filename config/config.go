package config

import (
	"os"

	"github.com/osuushi/areamesh"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds meshing options and render settings.
type Config struct {
	// Meshing
	SamplesPerSegment int     `yaml:"samples_per_segment"`
	Epsilon           float64 `yaml:"epsilon"`
	AllowRelative     bool    `yaml:"allow_relative"`

	// Render settings
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"`
	LineWidth  float64 `yaml:"line_width"`
}

func Default() Config {
	opts := areamesh.DefaultOptions()
	return Config{
		SamplesPerSegment: opts.SamplesPerSegment,
		Epsilon:           opts.Epsilon,
		AllowRelative:     opts.AllowRelative,
		Width:             800,
		Height:            600,
		Background:        "black",
		LineWidth:         1,
	}
}

// Load reads a YAML config file. Fields not set in the file keep their
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Zero
// values and a nil Epsilon are unset.
type Flags struct {
	Samples int
	Epsilon *float64
	Width   int
	Height  int
}

// Resolve applies flag overrides.
func (c *Config) Resolve(flags Flags) {
	if flags.Samples > 0 {
		c.SamplesPerSegment = flags.Samples
	}
	if flags.Epsilon != nil {
		c.Epsilon = *flags.Epsilon
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
}

func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return errors.WithMessage(err, "config")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.LineWidth <= 0 {
		return errors.Errorf("config: line width must be positive, got %v", c.LineWidth)
	}
	return nil
}

func (c Config) Options() areamesh.Options {
	return areamesh.Options{
		SamplesPerSegment: c.SamplesPerSegment,
		Epsilon:           c.Epsilon,
		AllowRelative:     c.AllowRelative,
	}
}
