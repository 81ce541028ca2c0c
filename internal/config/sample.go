package config

// SampleConfig returns a fully documented sample configuration file.
func SampleConfig() string {
	return `# jeplens configuration file
#
# Search order: ./.jeplens.yaml, ~/.config/jeplens/config.yaml,
# /etc/jeplens/config.yaml. Environment variables with the JEPLENS_
# prefix override file settings.

version: "1.0"

data:
  # Default dataset location. Can be overridden per invocation by passing
  # a file argument to summary/export/watch.
  path: datos_jeps.csv

  # Field separator. The upstream JEP dump is semicolon-delimited.
  separator: ";"

  # Date layouts tried in order for the Created/Updated columns
  # (Go reference time notation).
  date_formats:
    - "2006/01/02 15:04"
    - "2006/01/02"
    - "2006-01-02 15:04:05"
    - "2006-01-02"

filter:
  # Default criteria applied before flags or interactive selection.
  # Empty lists mean no constraint; 0 means an unbounded year.
  statuses: []
  authors: []
  releases: []
  year_from: 0
  year_to: 0

output:
  # Default output format: text, json, markdown, csv
  default_format: text

  # Color mode: auto, always, never
  color_mode: auto

  # Default verbosity
  verbose: false

  # Timestamp format for report headers
  timestamp_format: "2006-01-02 15:04:05"

dashboard:
  # Rows shown in the top-authors chart
  top_authors: 10

  # Bar chart width in terminal cells
  chart_width: 40

  # Visible rows in the records table
  table_rows: 15
`
}

// MinimalSampleConfig returns a compact configuration with only the
// settings most installations change.
func MinimalSampleConfig() string {
	return `# jeplens configuration (minimal)
version: "1.0"

data:
  path: datos_jeps.csv
  separator: ";"

output:
  default_format: text
`
}
