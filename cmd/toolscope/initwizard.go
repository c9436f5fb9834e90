package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// runWizard collects the config interactively and returns it as YAML.
func runWizard() ([]byte, error) {
	cfg := appConfig{Source: "tools.json"}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Catalog source").
			Description("A JSON file path or an http(s) URL.").
			Value(&cfg.Source).
			Validate(validateNonEmpty),
		huh.NewConfirm().
			Title("Reload automatically when the file changes?").
			Value(&cfg.Watch),
		huh.NewInput().
			Title("Debug log file (empty = no logging)").
			Value(&cfg.LogFile),
	)).Run(); err != nil {
		return nil, err
	}

	return yaml.Marshal(cfg)
}

// runInit writes a config file via the wizard, confirming before
// overwriting an existing one.
func runInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		var overwrite bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
				Value(&overwrite),
		)).Run(); err != nil {
			return err
		}
		if !overwrite {
			return nil
		}
	}

	data, err := runWizard()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file, not a secret
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)

	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}
