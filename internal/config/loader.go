package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.jeplens.yaml",               // Project-specific config (highest priority)
	"~/.config/jeplens/config.yaml", // User config
	"/etc/jeplens/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.jeplens.yaml
// 4. ~/.config/jeplens/config.yaml
// 5. /etc/jeplens/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order (lowest to highest)
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					// Log warning but continue with other config files
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	// Apply environment variable overrides
	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Validate the final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from the fixed search list
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Data Config
		"JEPLENS_DATA_PATH":      func(v string) error { config.Data.Path = v; return nil },
		"JEPLENS_DATA_SEPARATOR": func(v string) error { config.Data.Separator = v; return nil },

		// Filter Config
		"JEPLENS_FILTER_YEAR_FROM": func(v string) error { return parseInt(v, &config.Filter.YearFrom) },
		"JEPLENS_FILTER_YEAR_TO":   func(v string) error { return parseInt(v, &config.Filter.YearTo) },

		// Output Config
		"JEPLENS_OUTPUT_DEFAULT_FORMAT":   func(v string) error { config.Output.DefaultFormat = v; return nil },
		"JEPLENS_OUTPUT_COLOR_MODE":       func(v string) error { config.Output.ColorMode = v; return nil },
		"JEPLENS_OUTPUT_VERBOSE":          func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"JEPLENS_OUTPUT_TIMESTAMP_FORMAT": func(v string) error { config.Output.TimestampFormat = v; return nil },

		// Dashboard Config
		"JEPLENS_DASHBOARD_TOP_AUTHORS": func(v string) error { return parseInt(v, &config.Dashboard.TopAuthors) },
		"JEPLENS_DASHBOARD_CHART_WIDTH": func(v string) error { return parseInt(v, &config.Dashboard.ChartWidth) },
		"JEPLENS_DASHBOARD_TABLE_ROWS":  func(v string) error { return parseInt(v, &config.Dashboard.TableRows) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Comma-separated list overrides
	if statuses := os.Getenv("JEPLENS_FILTER_STATUSES"); statuses != "" {
		config.Filter.Statuses = splitList(statuses)
	}
	if authors := os.Getenv("JEPLENS_FILTER_AUTHORS"); authors != "" {
		config.Filter.Authors = splitList(authors)
	}
	if releases := os.Getenv("JEPLENS_FILTER_RELEASES"); releases != "" {
		config.Filter.Releases = splitList(releases)
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeDataConfig(&dst.Data, &src.Data)
	mergeFilterConfig(&dst.Filter, &src.Filter)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeDashboardConfig(&dst.Dashboard, &src.Dashboard)
}

func mergeDataConfig(dst, src *DataConfig) {
	if src.Path != "" {
		dst.Path = src.Path
	}
	if src.Separator != "" {
		dst.Separator = src.Separator
	}
	if len(src.DateFormats) > 0 {
		dst.DateFormats = src.DateFormats
	}
}

func mergeFilterConfig(dst, src *FilterConfig) {
	if len(src.Statuses) > 0 {
		dst.Statuses = src.Statuses
	}
	if len(src.Authors) > 0 {
		dst.Authors = src.Authors
	}
	if len(src.Releases) > 0 {
		dst.Releases = src.Releases
	}
	if src.YearFrom != 0 {
		dst.YearFrom = src.YearFrom
	}
	if src.YearTo != 0 {
		dst.YearTo = src.YearTo
	}
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.Verbose {
		dst.Verbose = src.Verbose
	}
	if src.TimestampFormat != "" {
		dst.TimestampFormat = src.TimestampFormat
	}
}

func mergeDashboardConfig(dst, src *DashboardConfig) {
	if src.TopAuthors != 0 {
		dst.TopAuthors = src.TopAuthors
	}
	if src.ChartWidth != 0 {
		dst.ChartWidth = src.ChartWidth
	}
	if src.TableRows != 0 {
		dst.TableRows = src.TableRows
	}
}

func parseInt(s string, dst *int) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*dst = v
	return nil
}

func parseBool(s string, dst *bool) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("expected boolean, got %q", s)
	}
	*dst = v
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
