package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
	if cfg.Data.Separator != ";" {
		t.Errorf("default separator = %q, want semicolon", cfg.Data.Separator)
	}
	if cfg.SeparatorRune() != ';' {
		t.Errorf("SeparatorRune() = %q, want ';'", cfg.SeparatorRune())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"multi-char separator", func(c *Config) { c.Data.Separator = ";;" }, true},
		{"negative filter year", func(c *Config) { c.Filter.YearFrom = -1 }, true},
		{"bad output format", func(c *Config) { c.Output.DefaultFormat = "xml" }, true},
		{"bad color mode", func(c *Config) { c.Output.ColorMode = "sometimes" }, true},
		{"negative chart width", func(c *Config) { c.Dashboard.ChartWidth = -1 }, true},
		{"empty format allowed", func(c *Config) { c.Output.DefaultFormat = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMergeConfigs(t *testing.T) {
	dst := DefaultConfig()
	src := &Config{
		Data:   DataConfig{Path: "other.csv"},
		Filter: FilterConfig{Statuses: []string{"Final"}, YearFrom: 2020},
		Output: OutputConfig{DefaultFormat: "json"},
	}

	mergeConfigs(dst, src)

	if dst.Data.Path != "other.csv" {
		t.Errorf("Data.Path = %q, want override", dst.Data.Path)
	}
	// Unset source fields keep destination values.
	if dst.Data.Separator != ";" {
		t.Errorf("Data.Separator = %q, want default preserved", dst.Data.Separator)
	}
	if dst.Output.DefaultFormat != "json" {
		t.Errorf("Output.DefaultFormat = %q, want json", dst.Output.DefaultFormat)
	}
	if diff := cmp.Diff([]string{"Final"}, dst.Filter.Statuses); diff != "" {
		t.Errorf("Filter.Statuses mismatch (-want +got):\n%s", diff)
	}
	if dst.Filter.YearFrom != 2020 {
		t.Errorf("Filter.YearFrom = %d, want 2020", dst.Filter.YearFrom)
	}
	if dst.Dashboard.TopAuthors != 10 {
		t.Errorf("Dashboard.TopAuthors = %d, want default preserved", dst.Dashboard.TopAuthors)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data:
  path: from_file.csv
output:
  default_format: markdown
dashboard:
  top_authors: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Data.Path != "from_file.csv" {
		t.Errorf("Data.Path = %q", cfg.Data.Path)
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("Output.DefaultFormat = %q", cfg.Output.DefaultFormat)
	}
	if cfg.Dashboard.TopAuthors != 5 {
		t.Errorf("Dashboard.TopAuthors = %d", cfg.Dashboard.TopAuthors)
	}
	// File left the separator unset, so the default survives the merge.
	if cfg.Data.Separator != ";" {
		t.Errorf("Data.Separator = %q, want default", cfg.Data.Separator)
	}
}

func TestLoadConfigRejectsBadPath(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"wrong extension", "config.txt"},
		{"path traversal", "../../../etc/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader().LoadConfig(tt.path); err == nil {
				t.Error("expected error for invalid config path")
			}
		})
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JEPLENS_DATA_PATH", "from_env.csv")
	t.Setenv("JEPLENS_FILTER_YEAR_FROM", "2018")
	t.Setenv("JEPLENS_FILTER_STATUSES", "Final, Draft")
	t.Setenv("JEPLENS_OUTPUT_VERBOSE", "true")
	t.Setenv("JEPLENS_DASHBOARD_TABLE_ROWS", "25")

	cfg := DefaultConfig()
	if err := NewLoader().applyEnvOverrides(cfg); err != nil {
		t.Fatalf("applyEnvOverrides() error = %v", err)
	}

	if cfg.Data.Path != "from_env.csv" {
		t.Errorf("Data.Path = %q", cfg.Data.Path)
	}
	if cfg.Filter.YearFrom != 2018 {
		t.Errorf("Filter.YearFrom = %d", cfg.Filter.YearFrom)
	}
	if diff := cmp.Diff([]string{"Final", "Draft"}, cfg.Filter.Statuses); diff != "" {
		t.Errorf("Filter.Statuses mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Output.Verbose {
		t.Error("Output.Verbose not applied")
	}
	if cfg.Dashboard.TableRows != 25 {
		t.Errorf("Dashboard.TableRows = %d", cfg.Dashboard.TableRows)
	}
}

func TestLoadConfigEnvRejectsBadInteger(t *testing.T) {
	t.Setenv("JEPLENS_FILTER_YEAR_FROM", "twenty")

	if err := NewLoader().applyEnvOverrides(DefaultConfig()); err == nil {
		t.Error("expected error for non-integer year")
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for _, tt := range []struct {
		name    string
		content string
	}{
		{"full", SampleConfig()},
		{"minimal", MinimalSampleConfig()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(tt.content), &cfg); err != nil {
				t.Fatalf("sample config is not valid YAML: %v", err)
			}

			merged := DefaultConfig()
			mergeConfigs(merged, &cfg)
			if err := merged.Validate(); err != nil {
				t.Errorf("sample config failed validation: %v", err)
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	if err := validateConfigPath("ok.yaml"); err != nil {
		t.Errorf("validateConfigPath(ok.yaml) = %v", err)
	}
	if err := validateConfigPath("ok.yml"); err != nil {
		t.Errorf("validateConfigPath(ok.yml) = %v", err)
	}
	if err := validateConfigPath("bad.json"); err == nil || !strings.Contains(err.Error(), "extension") {
		t.Errorf("validateConfigPath(bad.json) = %v, want extension error", err)
	}
}
