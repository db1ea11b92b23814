package config

import (
	"ai-roi/domain/aitools"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "config.yml"

// File represents the structure of config.yml used by the tool.
// Only the ai_tools section is modeled.
type File struct {
	AITools *aitools.Config `yaml:"ai_tools"`
}

// Path returns CONFIG_PATH or the default location.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load parses the YAML configuration file at path and returns the economics
// config. A missing file or a file without an ai_tools section yields the
// defaults. Fields left out of the section keep their default values.
func Load(path string) (aitools.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("config.default", "path", path)
			return aitools.DefaultConfig(), nil
		}
		return aitools.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(b, path)
}

// Parse decodes raw YAML. name is only used in log and error messages.
func Parse(b []byte, name string) (aitools.Config, error) {
	cfg := aitools.DefaultConfig()
	f := File{AITools: &cfg}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return aitools.Config{}, fmt.Errorf("parse config %s: %w", name, err)
	}
	if f.AITools == nil {
		cfg = aitools.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return aitools.Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	slog.Info("config.loaded", "path", name, "tools", len(cfg.ToolCosts), "buckets", len(cfg.TimeSavedMap))
	return cfg, nil
}
