package coffee

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/coffee/graphics"
)

// RunConfig configures the window and the run loop.
type RunConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	// TPS is the number of ticks per second. Zero means 60.
	TPS int `yaml:"tps"`

	ShowFPS bool `yaml:"show_fps"`
	// Debug prints frame timings and layout cache statistics to stderr.
	Debug bool `yaml:"debug"`
	// ExplainUI outlines every layout box of the user interface.
	ExplainUI bool `yaml:"explain_ui"`

	// ScreenshotDir receives screenshots. Empty means "screenshots".
	ScreenshotDir string `yaml:"screenshot_dir"`
	// TestScript is the path of a JSON test script replayed on start.
	TestScript string `yaml:"test_script"`
	// TerminalProgress also reports loading progress on stderr.
	TerminalProgress bool `yaml:"terminal_progress"`

	// Background clears the frame before Draw when its alpha is not zero.
	Background graphics.Color `yaml:"-"`
}

// DefaultConfig returns the configuration used for zero fields.
func DefaultConfig() RunConfig {
	return RunConfig{
		Title:         "Coffee",
		Width:         1280,
		Height:        1024,
		TPS:           60,
		ScreenshotDir: "screenshots",
	}
}

func (c RunConfig) withDefaults() RunConfig {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}

// LoadConfig reads a YAML configuration file over the defaults. A missing
// file is not an error.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("coffee: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("coffee: failed to parse %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}
