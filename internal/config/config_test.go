package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Format)
	}
	if cfg.Filter != "all" {
		t.Errorf("Filter = %q, want all", cfg.Filter)
	}
	if cfg.SortKey != "score" || cfg.SortOrder != "asc" {
		t.Errorf("sort = %s/%s, want score/asc", cfg.SortKey, cfg.SortOrder)
	}
	if cfg.Concurrency != DefaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", cfg.Concurrency, DefaultConcurrency)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) { c.InputPath = "records.json" },
		},
		{
			name:   "stdin input is valid",
			mutate: func(c *Config) { c.InputPath = "-" },
		},
		{
			name:    "missing input",
			mutate:  func(c *Config) {},
			wantErr: ErrNoInput,
		},
		{
			name: "zero concurrency",
			mutate: func(c *Config) {
				c.InputPath = "records.json"
				c.Concurrency = 0
			},
			wantErr: ErrInvalidConcurrency,
		},
		{
			name: "negative concurrency",
			mutate: func(c *Config) {
				c.InputPath = "records.json"
				c.Concurrency = -1
			},
			wantErr: ErrInvalidConcurrency,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestXDGDataDir(t *testing.T) {
	t.Parallel()

	dir := XDGDataDir()
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("XDGDataDir() = %q, want path ending in %q", dir, AppName)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `disabled_rules:
  - landmark-nav
format: csv
filter: error
sort_key: url
sort_order: desc
output: reports/audit.csv
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if len(cf.DisabledRules) != 1 || cf.DisabledRules[0] != "landmark-nav" {
			t.Errorf("DisabledRules = %v, want [landmark-nav]", cf.DisabledRules)
		}
		if cf.Format != "csv" || cf.Filter != "error" {
			t.Errorf("Format/Filter = %s/%s, want csv/error", cf.Format, cf.Filter)
		}
		if cf.SortKey != "url" || cf.SortOrder != "desc" {
			t.Errorf("sort = %s/%s, want url/desc", cf.SortKey, cf.SortOrder)
		}
		if cf.Output != "reports/audit.csv" {
			t.Errorf("Output = %q, want reports/audit.csv", cf.Output)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfigFile() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("format: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("LoadConfigFile() error = nil, want yaml error")
		}
	})
}

func TestFindConfigFileExplicitPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("format: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := FindConfigFile(path); got != path {
		t.Errorf("FindConfigFile(%q) = %q, want the path itself", path, got)
	}
	if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
		t.Errorf("FindConfigFile(missing) = %q, want empty", got)
	}
}

func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("file fills unset values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(&File{
			DisabledRules: []string{"img-alt"},
			Format:        "json",
			Filter:        "error",
			SortKey:       "url",
			SortOrder:     "desc",
			Output:        "out.json",
		}, NewConfig())

		if cfg.Format != "json" || cfg.Filter != "error" {
			t.Errorf("Format/Filter = %s/%s, want json/error", cfg.Format, cfg.Filter)
		}
		if cfg.SortKey != "url" || cfg.SortOrder != "desc" {
			t.Errorf("sort = %s/%s, want url/desc", cfg.SortKey, cfg.SortOrder)
		}
		if cfg.OutputPath != "out.json" {
			t.Errorf("OutputPath = %q, want out.json", cfg.OutputPath)
		}
		if len(cfg.DisabledRules) != 1 || cfg.DisabledRules[0] != "img-alt" {
			t.Errorf("DisabledRules = %v, want [img-alt]", cfg.DisabledRules)
		}
	})

	t.Run("flags win over file", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Format = "csv" // explicitly set, differs from default
		cfg.ApplyFile(&File{Format: "json"}, NewConfig())

		if cfg.Format != "csv" {
			t.Errorf("Format = %q, want flag value csv", cfg.Format)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(nil, NewConfig())
		if cfg.Format != DefaultFormat {
			t.Errorf("Format = %q, want default", cfg.Format)
		}
	})
}
