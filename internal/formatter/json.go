package formatter

import (
	"encoding/json"
	"time"

	"github.com/rugi/jeplens/internal/jep"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	output := &jsonOutput{
		Source:      report.Source,
		GeneratedAt: report.GeneratedAt,
		Criteria:    report.Criteria,
		Summary:     report.Summary,
		Records:     report.Records,
	}
	if output.Records == nil {
		output.Records = []jep.Record{}
	}

	return json.MarshalIndent(output, "", "  ")
}

// jsonOutput fixes the field order of the serialized report
type jsonOutput struct {
	Source      string       `json:"source,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
	Criteria    jep.Criteria `json:"criteria"`
	Summary     *jep.Summary `json:"summary"`
	Records     []jep.Record `json:"records"`
}
