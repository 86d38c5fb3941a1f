package host

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/arbor"
	"gopkg.in/yaml.v3"
)

// RunConfig configures a Host window and session.
type RunConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	TPS     int    `yaml:"tps"`
	ShowFPS bool   `yaml:"showFPS"`

	// Script, when set, is the path of a YAML touch script that replaces real
	// pointer input.
	Script string `yaml:"script,omitempty"`

	// ClearColor fills the game layer at the start of every frame.
	ClearColor arbor.Color `yaml:"clearColor"`

	Log arbor.LogConfig `yaml:"log"`
}

// Defaults applied to zero fields.
const (
	DefaultTitle  = "arbor"
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTPS    = 60
)

// withDefaults returns c with zero fields replaced by defaults.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = DefaultTPS
	}
	return c
}

// LoadRunConfig reads a YAML run configuration from path and applies
// defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	defer f.Close()
	return DecodeRunConfig(f)
}

// DecodeRunConfig reads a YAML run configuration from r and applies
// defaults. An empty document yields the defaults.
func DecodeRunConfig(r io.Reader) (RunConfig, error) {
	var c RunConfig
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return RunConfig{}, fmt.Errorf("decode run config: %w", err)
	}
	return c.withDefaults(), nil
}
