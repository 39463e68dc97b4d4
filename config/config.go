// Package config loads the ambient settings the CLI needs beyond the
// grammar/table core: where grammar and trace files live, and whether
// a build should treat conflicts as fatal.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kfx-lang/lr0table/specfmt"
)

// Config is the tool's ambient configuration, optionally loaded from a
// YAML file. Whether conflicts should be fatal is exposed as a flag
// rather than guessed at.
type Config struct {
	GrammarDir      string `yaml:"grammarDir"`
	TraceDir        string `yaml:"traceDir"`
	StrictConflicts bool   `yaml:"strictConflicts"`
}

// Default returns the configuration the original tool's behavior
// implies: conflicts are warnings, not fatal errors, and grammar and
// trace files live in specfmt's default directories.
func Default() *Config {
	return &Config{
		GrammarDir:      specfmt.GrammarDir,
		TraceDir:        specfmt.TraceDir,
		StrictConflicts: false,
	}
}

// Load reads a YAML config file at path, applying its fields over
// Default(). A missing file is not an error: Default() alone is a
// complete, valid configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
