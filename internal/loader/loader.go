// Package loader reads delimited JEP dumps into typed records and
// serializes filtered subsets back to CSV.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rugi/jeplens/internal/jep"
)

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("input has no header row")

// DefaultSeparator matches the upstream JEP dump, which is
// semicolon-delimited despite the .csv extension.
const DefaultSeparator = ';'

// defaultDateFormats are tried in order when parsing Created/Updated.
var defaultDateFormats = []string{
	"2006/01/02 15:04",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// placeholder is the review marker the upstream dump uses for fields whose
// value was never confirmed. It normalizes to Unknown (or TBD for releases).
const placeholder = "REVISAR"

// Options controls how input is parsed.
type Options struct {
	Separator   rune
	DateFormats []string
}

// DefaultOptions returns options matching the upstream dump format.
func DefaultOptions() Options {
	return Options{
		Separator:   DefaultSeparator,
		DateFormats: defaultDateFormats,
	}
}

// Dataset is an immutable per-session snapshot of a loaded dump: the source
// column order plus one typed record per row.
type Dataset struct {
	Source  string
	Columns []string
	Records []jep.Record
}

// Statuses returns the status vocabulary present in the data, ranked by
// frequency. The recognized set is defined by the data, not by jeplens.
func (d *Dataset) Statuses() []jep.Count {
	return jep.Summarize(d.Records).TopStatuses
}

// columns holds the resolved index of each recognized column, -1 if absent.
type columns struct {
	number  int
	title   int
	status  int
	release int
	owner   int
	created int
	updated int
	year    int
}

// Load reads a dump from disk. The file handle is scoped to this call and
// released on every path, including parse failures.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	ds, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// Read parses a dump from a reader. The header row is required; column
// mapping is name-based and independent of column order. Malformed field
// values never abort the load, they leave the derived field unknown.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	if opts.Separator == 0 {
		opts.Separator = DefaultSeparator
	}
	if len(opts.DateFormats) == 0 {
		opts.DateFormats = defaultDateFormats
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Columns: header}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		ds.Records = append(ds.Records, buildRecord(row, header, cols, opts))
	}

	return ds, nil
}

// resolveColumns maps recognized column names to their indices. Number and
// Title are required; everything else degrades to a default value.
func resolveColumns(header []string) (columns, error) {
	cols := columns{number: -1, title: -1, status: -1, release: -1, owner: -1, created: -1, updated: -1, year: -1}

	for i, name := range header {
		switch normalizeColumn(name) {
		case "number", "jep", "id":
			cols.number = i
		case "title", "name":
			cols.title = i
		case "status":
			cols.status = i
		case "release", "fixrelease":
			cols.release = i
		case "owner", "author", "authors":
			cols.owner = i
		case "created", "createddate":
			cols.created = i
		case "updated", "lastupdated":
			cols.updated = i
		case "year", "yearcreated":
			cols.year = i
		}
	}

	if cols.number < 0 {
		return cols, fmt.Errorf("%w: id/number", ErrMissingColumn)
	}
	if cols.title < 0 {
		return cols, fmt.Errorf("%w: title", ErrMissingColumn)
	}
	return cols, nil
}

// normalizeColumn canonicalizes a header cell: trimmed, lowercased, inner
// whitespace and underscores removed.
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '_' || r == '-' {
			return -1
		}
		return r
	}, name)
}

func buildRecord(row, header []string, cols columns, opts Options) jep.Record {
	// Ragged rows are padded so Raw always mirrors the header width.
	raw := make([]string, len(header))
	copy(raw, row)

	rec := jep.Record{
		Number:       field(raw, cols.number),
		Title:        field(raw, cols.title),
		Status:       normalizeValue(field(raw, cols.status), jep.Unknown),
		Release:      normalizeValue(field(raw, cols.release), jep.ReleaseTBD),
		DurationDays: -1,
		Raw:          raw,
	}

	rec.Owner = normalizeValue(field(raw, cols.owner), jep.Unknown)
	rec.Owners = jep.SplitOwners(rec.Owner)

	rec.Created = parseDate(field(raw, cols.created), opts.DateFormats)
	rec.Updated = parseDate(field(raw, cols.updated), opts.DateFormats)

	// Explicit year column wins; otherwise the creation year is derived.
	if y, err := strconv.Atoi(strings.TrimSpace(field(raw, cols.year))); err == nil && y > 0 {
		rec.Year = y
	} else if !rec.Created.IsZero() {
		rec.Year = rec.Created.Year()
	}

	if !rec.Created.IsZero() && !rec.Updated.IsZero() {
		if days := int(rec.Updated.Sub(rec.Created).Hours() / 24); days >= 0 {
			rec.DurationDays = days
		}
	}

	return rec
}

func field(raw []string, idx int) string {
	if idx < 0 || idx >= len(raw) {
		return ""
	}
	return raw[idx]
}

// normalizeValue maps empty fields and the upstream review placeholder to
// the given default.
func normalizeValue(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == placeholder {
		return def
	}
	return v
}

// parseDate tries each configured format; a field that matches none of them
// is treated as absent, never as an error.
func parseDate(v string, formats []string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" || v == placeholder {
		return time.Time{}
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
