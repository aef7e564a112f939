package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// fileConfig mirrors the subset of CLI flags a project can pin in
// .jslexrc.yaml so they don't need repeating on every invocation. CLI
// flags always take precedence over the file: loadConfig only supplies
// defaults for flags the user never set.
type fileConfig struct {
	Encoding string `yaml:"encoding"`
	Harmony  bool   `yaml:"harmony"`
}

// loadConfig reads .jslexrc.yaml from the current directory, returning a
// zero fileConfig (not an error) when the file does not exist: the
// config file is optional.
func loadConfig() (fileConfig, error) {
	path := ".jslexrc.yaml"
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse %s: %w", filepath.Clean(path), err)
	}
	return cfg, nil
}

// applyConfigDefaults fills in --use-harmony and the encoding selection
// flags from cfg wherever the corresponding cobra flag was left at its
// zero value, i.e. never explicitly set on the command line.
func applyConfigDefaults(cfg fileConfig) {
	if !useHarmony && cfg.Harmony {
		useHarmony = true
	}
	if !useLatin1 && !useUTF8 && !useUTF16 {
		switch cfg.Encoding {
		case "latin1":
			useLatin1 = true
		case "utf16":
			useUTF16 = true
		case "utf8":
			useUTF8 = true
		}
	}
}
