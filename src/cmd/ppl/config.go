package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds configuration loaded from ~/.ppl/config.yaml
type CLIConfig struct {
	Debug         bool     `yaml:"debug"`
	Trace         bool     `yaml:"trace"`
	LogCategories []string `yaml:"log_categories"`
	Color         string   `yaml:"color"` // "auto", "always" or "never"
	HistoryFile   string   `yaml:"history_file"`
}

// defaultCLIConfig is used when no config file can be read
func defaultCLIConfig() CLIConfig {
	return CLIConfig{
		Color: "auto",
	}
}

const defaultConfigContent = `# PPL CLI configuration
# This file is automatically created on first run

# Show debug logging on stderr (same as -debug)
debug: false

# Log every executed line (same as -trace)
trace: false

# Restrict debug logging to these categories; empty means all.
# Categories: parse, command, variable, argument, io, math, list, type, flow, system
log_categories: []

# Colored error output: "auto", "always" or "never"
color: auto

# REPL history file; empty uses ~/.ppl/history
history_file: ""
`

// getConfigFilePath returns the path to ~/.ppl/config.yaml
func getConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ppl", "config.yaml")
}

// loadCLIConfig reads the config file at path, creating it with defaults if it
// does not exist yet. An empty path yields the defaults.
func loadCLIConfig(path string) (CLIConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		createDefaultConfig(path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return defaultCLIConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// validate normalizes and checks config values
func (c *CLIConfig) validate() error {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case "":
		c.Color = "auto"
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: color must be auto, always or never, got %q", c.Color)
	}
	return nil
}

// createDefaultConfig writes the default config file, ignoring failures
func createDefaultConfig(path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	_ = os.WriteFile(path, []byte(defaultConfigContent), 0644)
}
