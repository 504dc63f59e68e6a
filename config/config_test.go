package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/areamesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "areamesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, areamesh.DefaultOptions(), cfg.Options())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
samples_per_segment: 4
allow_relative: true
width: 320
background: "#202020"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	expected := Default()
	expected.SamplesPerSegment = 4
	expected.AllowRelative = true
	expected.Width = 320
	expected.Background = "#202020"
	assert.Equal(t, expected, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "samples_per_segment: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "width: wide"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{})
	assert.Equal(t, Default(), cfg, "unset flags change nothing")

	cfg.Resolve(Flags{Samples: 5})
	assert.Equal(t, 5, cfg.SamplesPerSegment)
	assert.Equal(t, Default().Epsilon, cfg.Epsilon)

	zero := 0.0
	cfg.Resolve(Flags{Samples: 3, Epsilon: &zero, Width: 10, Height: 20})
	assert.Equal(t, 3, cfg.SamplesPerSegment)
	assert.Equal(t, 0.0, cfg.Epsilon)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"samples":    func(c *Config) { c.SamplesPerSegment = 0 },
		"epsilon":    func(c *Config) { c.Epsilon = -1 },
		"width":      func(c *Config) { c.Width = 0 },
		"height":     func(c *Config) { c.Height = -5 },
		"line width": func(c *Config) { c.LineWidth = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.SamplesPerSegment = 0
	assert.ErrorIs(t, cfg.Validate(), areamesh.ErrInvalidOptions)
}
