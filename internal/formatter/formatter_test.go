package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rugi/jeplens/internal/jep"
)

func sampleReport() *Report {
	columns := []string{"JEP", "Title", "Status", "Release", "Owner"}
	records := []jep.Record{
		{
			Number: "395", Title: "Records", Status: "Final", Release: "16",
			Owner: "Gavin Bierman", Owners: []string{"Gavin Bierman"},
			Year: 2019, DurationDays: 500,
			Raw: []string{"395", "Records", "Final", "16", "Gavin Bierman"},
		},
		{
			Number: "401", Title: "Value Classes", Status: "Draft", Release: "TBD",
			Owner: "Dan Smith", Owners: []string{"Dan Smith"},
			Year: 2021, DurationDays: -1,
			Raw: []string{"401", "Value Classes", "Draft", "TBD", "Dan Smith"},
		},
	}
	return NewReport("testdata.csv", columns, jep.Criteria{}, records)
}

func TestTerminalFormatter(t *testing.T) {
	out, err := NewTerminal(false).Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"JEP Analytics Summary",
		"Total JEPs",
		"Unique Authors",
		"Status Distribution",
		"Final",
		"Top Authors",
		"JEPs per Year",
		"JDK 16",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// No filters active, so the criteria section is omitted.
	if strings.Contains(text, "Active Filters") {
		t.Error("unexpected Active Filters section for zero criteria")
	}
}

func TestTerminalFormatterShowsCriteria(t *testing.T) {
	report := sampleReport()
	report.Criteria = jep.Criteria{Statuses: []string{"Final"}, YearMin: 2019, YearMax: 2021}

	out, err := NewTerminal(false).Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{"Active Filters", "Final", "2019-2021"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTerminalFormatterEmptySubset(t *testing.T) {
	report := NewReport("testdata.csv", []string{"JEP", "Title"}, jep.Criteria{Statuses: []string{"Rejected"}}, nil)

	out, err := NewTerminal(false).Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "No JEPs match the active filters.") {
		t.Error("missing empty-subset message")
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSON().Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded struct {
		Source  string       `json:"source"`
		Summary *jep.Summary `json:"summary"`
		Records []jep.Record `json:"records"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Source != "testdata.csv" {
		t.Errorf("source = %q", decoded.Source)
	}
	if decoded.Summary == nil || decoded.Summary.Total != 2 {
		t.Errorf("summary total = %+v, want 2", decoded.Summary)
	}
	if len(decoded.Records) != 2 {
		t.Errorf("got %d records, want 2", len(decoded.Records))
	}
}

func TestJSONFormatterNilRecords(t *testing.T) {
	report := NewReport("", nil, jep.Criteria{}, nil)

	out, err := NewJSON().Format(report)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), `"records": []`) {
		t.Error("nil records should serialize as an empty array")
	}
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdown().Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"# JEP Analytics Report",
		"## Summary",
		"| Total JEPs | 2 |",
		"## Status Distribution",
		"## Records",
		"| 395 | Records | Final | 16 | Gavin Bierman | 2019 |",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMarkdownEscapesCells(t *testing.T) {
	if got := escapeCell("a|b\nc"); got != "a\\|b c" {
		t.Errorf("escapeCell() = %q", got)
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := NewCSV().Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "JEP,Title,Status,Release,Owner\n" +
		"395,Records,Final,16,Gavin Bierman\n" +
		"401,Value Classes,Draft,TBD,Dan Smith\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{-1, "N/A"},
		{0, "0 days"},
		{499.6, "500 days"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.days); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
