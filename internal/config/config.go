package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "a11yaudit"

	// DefaultConcurrency of 8 parallel page evaluations keeps a large crawl
	// batch fast without starving the rest of the process. Evaluation is
	// CPU-bound regex work, so going far beyond the core count buys nothing.
	DefaultConcurrency = 8

	// DefaultFormat is the export format used when none is requested.
	DefaultFormat = "markdown"

	// DefaultFilter shows every audited page.
	DefaultFilter = "all"

	// DefaultSortKey and DefaultSortOrder put the worst-scoring pages first,
	// which is the order someone fixing issues wants to read.
	DefaultSortKey   = "score"
	DefaultSortOrder = "asc"
)

// Config holds all configuration options for a11yaudit.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// InputPath is the crawl records file to audit, or "-" for stdin.
	InputPath string

	// Format is the export format: json, csv, or markdown.
	Format string

	// Filter is the page-level severity filter applied before export:
	// all, error, warning, or info.
	Filter string

	// SortKey orders the exported pages: score, url, or issues.
	SortKey string

	// SortOrder is asc or desc.
	SortOrder string

	// OutputPath is where the export file is written. When empty, the file
	// is written to the current directory under its generated name.
	OutputPath string

	// Concurrency is the number of pages evaluated in parallel.
	Concurrency int

	// DisabledRules lists rule identifiers excluded from evaluation.
	// Unknown identifiers are ignored.
	DisabledRules []string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .a11yaudit in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// DBDir is the directory path for storing the SQLite run history.
	// Defaults to the XDG data directory when saving is enabled.
	DBDir string

	// SaveToDB indicates whether to save the audit run to the database
	// for later comparison.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		Filter:      DefaultFilter,
		SortKey:     DefaultSortKey,
		SortOrder:   DefaultSortOrder,
		Concurrency: DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for a11yaudit.
// On Linux: ~/.local/share/a11yaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for a11yaudit.
// On Linux: ~/.config/a11yaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes later
// ones irrelevant. Format, filter, and sort values are validated where
// they are parsed into their typed forms.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}
