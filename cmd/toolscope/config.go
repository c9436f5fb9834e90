package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// appConfig is the optional toolscope.yaml file. Every field can also
// be set from the command line; flags win over the file.
type appConfig struct {
	// Source is the default catalog reference: a file path or an
	// http(s) URL.
	Source string `yaml:"source"`

	// Watch reloads the catalog automatically when a file source
	// changes on disk.
	Watch bool `yaml:"watch"`

	// LogFile enables debug logging to the given path. The TUI owns
	// the terminal, so logs never go to stderr while it runs.
	LogFile string `yaml:"log_file"`
}

// loadAppConfig reads a YAML config file. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing. A missing
// file is not an error; the zero config is returned.
func loadAppConfig(path string) (appConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return appConfig{}, nil
		}
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg appConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return appConfig{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
