package formatter

import (
	"time"

	"github.com/rugi/jeplens/internal/jep"
)

// Report bundles everything a formatter needs: the filtered view, its
// aggregates, and the provenance of both.
type Report struct {
	Source      string       `json:"source,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
	Criteria    jep.Criteria `json:"criteria"`
	Columns     []string     `json:"-"`
	Records     []jep.Record `json:"records"`
	Summary     *jep.Summary `json:"summary"`
}

// NewReport builds a report for a filtered subset, computing its aggregates.
func NewReport(source string, columns []string, criteria jep.Criteria, records []jep.Record) *Report {
	return &Report{
		Source:      source,
		GeneratedAt: time.Now(),
		Criteria:    criteria,
		Columns:     columns,
		Records:     records,
		Summary:     jep.Summarize(records),
	}
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}
