package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".a11yaudit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file shape. All fields are optional; CLI
// flags override anything set here.
type File struct {
	// DisabledRules lists rule identifiers to skip during evaluation.
	DisabledRules []string `yaml:"disabled_rules"`

	// Format is the default export format.
	Format string `yaml:"format"`

	// Filter is the default severity filter.
	Filter string `yaml:"filter"`

	// SortKey and SortOrder are the default export ordering.
	SortKey   string `yaml:"sort_key"`
	SortOrder string `yaml:"sort_order"`

	// Output is the default export file path.
	Output string `yaml:"output"`
}

// LoadConfigFile loads defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly given by the
// user: a missing implicit dotfile is normal, a missing --config file is not.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .a11yaudit in the current directory
// 3. Look for .a11yaudit in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ApplyFile overlays file-provided defaults onto the config, leaving any
// value the user already set via flags untouched. The caller passes the
// pre-flag defaults so "already set" can be detected.
func (c *Config) ApplyFile(cf *File, defaults *Config) {
	if cf == nil {
		return
	}

	if len(c.DisabledRules) == 0 {
		c.DisabledRules = cf.DisabledRules
	}
	if cf.Format != "" && c.Format == defaults.Format {
		c.Format = cf.Format
	}
	if cf.Filter != "" && c.Filter == defaults.Filter {
		c.Filter = cf.Filter
	}
	if cf.SortKey != "" && c.SortKey == defaults.SortKey {
		c.SortKey = cf.SortKey
	}
	if cf.SortOrder != "" && c.SortOrder == defaults.SortOrder {
		c.SortOrder = cf.SortOrder
	}
	if cf.Output != "" && c.OutputPath == "" {
		c.OutputPath = cf.Output
	}
}
