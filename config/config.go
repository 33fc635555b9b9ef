// Package config loads and saves editor preferences as YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/studio/editor"
)

const DefaultPath = ".studio.yaml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Window       Window               `yaml:"window"`
	Debug        bool                 `yaml:"debug"`
	Display      editor.DisplayState  `yaml:"display"`
	Export       editor.ExportOptions `yaml:"export"`
	HistoryLimit int                  `yaml:"history_limit"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 800,
			Title:  "Studio",
		},
		Display:      editor.DefaultDisplay(),
		Export:       editor.DefaultExportOptions(),
		HistoryLimit: editor.DefaultHistoryLimit,
	}
}

// Load reads path over the defaults, so a partial file only overrides the
// keys it names. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := rejectEmpty(&doc); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if doc.Kind != 0 {
		if err := doc.Decode(&cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// rejectEmpty fails on keys without a value. An unquoted hex color such as
// `selected_color: #4f46e5` is a YAML comment and would otherwise leave the
// key empty without a word.
func rejectEmpty(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!null" {
				return fmt.Errorf("line %d: %s has no value (quote colors: \"#4f46e5\")", key.Line, key.Value)
			}
		}
	}
	for _, c := range n.Content {
		if err := rejectEmpty(c); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Display.LightIntensity < editor.MinLightIntensity || c.Display.LightIntensity > editor.MaxLightIntensity {
		return fmt.Errorf("light_intensity %g not in [%g, %g]", c.Display.LightIntensity, editor.MinLightIntensity, editor.MaxLightIntensity)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit %d is negative", c.HistoryLimit)
	}
	return c.Export.Validate()
}

// Save writes c to path, creating parent directories.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// SessionOptions maps the preferences onto a new editor session.
func (c Config) SessionOptions() editor.Options {
	display := c.Display
	export := c.Export
	return editor.Options{
		Display:      &display,
		Export:       &export,
		HistoryLimit: c.HistoryLimit,
	}
}
