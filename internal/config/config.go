package config

import (
	"fmt"
)

// Config holds the complete application configuration
type Config struct {
	Version   string          `yaml:"version" json:"version"`
	Data      DataConfig      `yaml:"data" json:"data"`
	Filter    FilterConfig    `yaml:"filter" json:"filter"`
	Output    OutputConfig    `yaml:"output" json:"output"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
}

// DataConfig configures where and how the JEP dump is read
type DataConfig struct {
	Path        string   `yaml:"path" json:"path"`                 // default dataset location
	Separator   string   `yaml:"separator" json:"separator"`       // field separator, single character
	DateFormats []string `yaml:"date_formats" json:"date_formats"` // tried in order for Created/Updated
}

// FilterConfig configures default filter criteria applied before any
// interactive or flag-driven selection
type FilterConfig struct {
	Statuses []string `yaml:"statuses" json:"statuses"`
	Authors  []string `yaml:"authors" json:"authors"`
	Releases []string `yaml:"releases" json:"releases"`
	YearFrom int      `yaml:"year_from" json:"year_from"`
	YearTo   int      `yaml:"year_to" json:"year_to"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat   string `yaml:"default_format" json:"default_format"`     // text|json|markdown|csv
	ColorMode       string `yaml:"color_mode" json:"color_mode"`             // auto|always|never
	Verbose         bool   `yaml:"verbose" json:"verbose"`                   // default verbosity
	TimestampFormat string `yaml:"timestamp_format" json:"timestamp_format"` // time format string
}

// DashboardConfig configures the interactive TUI
type DashboardConfig struct {
	TopAuthors int `yaml:"top_authors" json:"top_authors"` // rows in the top-authors chart
	ChartWidth int `yaml:"chart_width" json:"chart_width"` // bar chart width in cells
	TableRows  int `yaml:"table_rows" json:"table_rows"`   // visible rows in the records table
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Path:      "datos_jeps.csv",
			Separator: ";",
			DateFormats: []string{
				"2006/01/02 15:04",
				"2006/01/02",
				"2006-01-02 15:04:05",
				"2006-01-02",
			},
		},
		Filter: FilterConfig{},
		Output: OutputConfig{
			DefaultFormat:   "text",
			ColorMode:       "auto",
			Verbose:         false,
			TimestampFormat: "2006-01-02 15:04:05",
		},
		Dashboard: DashboardConfig{
			TopAuthors: 10,
			ChartWidth: 40,
			TableRows:  15,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateDataConfig(); err != nil {
		return err
	}
	if err := c.validateFilterConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateDashboardConfig()
}

func (c *Config) validateDataConfig() error {
	if len([]rune(c.Data.Separator)) > 1 {
		return fmt.Errorf("invalid separator %q (must be a single character)", c.Data.Separator)
	}
	return nil
}

func (c *Config) validateFilterConfig() error {
	if c.Filter.YearFrom < 0 || c.Filter.YearTo < 0 {
		return fmt.Errorf("filter years cannot be negative")
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"text":     true,
			"json":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

func (c *Config) validateDashboardConfig() error {
	if c.Dashboard.TopAuthors < 0 {
		return fmt.Errorf("dashboard top_authors cannot be negative")
	}
	if c.Dashboard.ChartWidth < 0 {
		return fmt.Errorf("dashboard chart_width cannot be negative")
	}
	if c.Dashboard.TableRows < 0 {
		return fmt.Errorf("dashboard table_rows cannot be negative")
	}
	return nil
}

// SeparatorRune returns the configured separator as a rune, falling back to
// the upstream semicolon when unset.
func (c *Config) SeparatorRune() rune {
	if c.Data.Separator == "" {
		return ';'
	}
	return []rune(c.Data.Separator)[0]
}
