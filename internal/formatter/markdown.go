package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rugi/jeplens/internal/jep"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# JEP Analytics Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", report.Source)
	}

	f.writeTableOfContents(&b, report)
	f.writeCriteriaSection(&b, report.Criteria)
	f.writeSummaryTable(&b, report.Summary)

	if report.Summary.Total > 0 {
		f.writeStatusSection(&b, report.Summary)
		f.writeYearSection(&b, report.Summary)
		f.writeAuthorSection(&b, report.Summary)
		f.writeRecordsTable(&b, report.Records)
	} else {
		b.WriteString("No JEPs match the active filters.\n")
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeTableOfContents(b *strings.Builder, report *Report) {
	b.WriteString("## Table of Contents\n")
	if !report.Criteria.IsZero() {
		b.WriteString("- [Active Filters](#active-filters)\n")
	}
	b.WriteString("- [Summary](#summary)\n")
	if report.Summary.Total > 0 {
		b.WriteString("- [Status Distribution](#status-distribution)\n")
		b.WriteString("- [JEPs per Year](#jeps-per-year)\n")
		b.WriteString("- [Top Authors](#top-authors)\n")
		b.WriteString("- [Records](#records)\n")
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeCriteriaSection(b *strings.Builder, c jep.Criteria) {
	if c.IsZero() {
		return
	}

	b.WriteString("## Active Filters\n\n")
	if len(c.Statuses) > 0 {
		fmt.Fprintf(b, "- Status: %s\n", strings.Join(c.Statuses, ", "))
	}
	if len(c.Authors) > 0 {
		fmt.Fprintf(b, "- Author: %s\n", strings.Join(c.Authors, ", "))
	}
	if len(c.Releases) > 0 {
		fmt.Fprintf(b, "- Release: %s\n", strings.Join(c.Releases, ", "))
	}
	if c.YearMin != 0 || c.YearMax != 0 {
		fmt.Fprintf(b, "- Years: %s\n", formatYearRange(c.YearMin, c.YearMax))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, s *jep.Summary) {
	b.WriteString("## Summary\n\n")

	yearSpan := "N/A"
	if s.YearMin != 0 {
		yearSpan = fmt.Sprintf("%d-%d", s.YearMin, s.YearMax)
	}

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Total JEPs | %s |\n", formatNumber(s.Total))
	fmt.Fprintf(b, "| Unique Authors | %s |\n", formatNumber(s.UniqueAuthors))
	fmt.Fprintf(b, "| Releases Affected | %s |\n", formatNumber(s.UniqueReleases))
	fmt.Fprintf(b, "| Avg Duration | %s |\n", formatDuration(s.AvgDurationDays))
	fmt.Fprintf(b, "| Year Span | %s |\n\n", yearSpan)
}

func (f *markdownFormatter) writeStatusSection(b *strings.Builder, s *jep.Summary) {
	b.WriteString("## Status Distribution\n\n")
	b.WriteString("| Status | Count | Share |\n")
	b.WriteString("|--------|-------|-------|\n")
	for _, count := range s.TopStatuses {
		share := float64(count.Count) / float64(s.Total) * 100
		fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", count.Key, count.Count, share)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeYearSection(b *strings.Builder, s *jep.Summary) {
	if len(s.ByYear) == 0 {
		return
	}

	b.WriteString("## JEPs per Year\n\n")
	b.WriteString("| Year | Count |\n")
	b.WriteString("|------|-------|\n")

	years := make([]int, 0, len(s.ByYear))
	for year := range s.ByYear {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		fmt.Fprintf(b, "| %d | %d |\n", year, s.ByYear[year])
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeAuthorSection(b *strings.Builder, s *jep.Summary) {
	authors := jep.TopN(s.TopAuthors, 10)
	if len(authors) == 0 {
		return
	}

	b.WriteString("## Top Authors\n\n")
	b.WriteString("| Author | JEPs |\n")
	b.WriteString("|--------|------|\n")
	for _, count := range authors {
		fmt.Fprintf(b, "| %s | %d |\n", count.Key, count.Count)
	}
	b.WriteString("\n")
}

// writeRecordsTable lists the filtered records, capped so a broad filter
// does not produce an unreadable document.
func (f *markdownFormatter) writeRecordsTable(b *strings.Builder, records []jep.Record) {
	b.WriteString("## Records\n\n")
	b.WriteString("| JEP | Title | Status | Release | Owner | Year |\n")
	b.WriteString("|-----|-------|--------|---------|-------|------|\n")

	const maxRows = 50
	for i := range records {
		if i >= maxRows {
			fmt.Fprintf(b, "\n_%d more records omitted._\n", len(records)-maxRows)
			break
		}
		r := &records[i]
		year := ""
		if r.HasYear() {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			escapeCell(r.Number), escapeCell(r.Title), escapeCell(r.Status),
			escapeCell(r.Release), escapeCell(r.Owner), year)
	}
	b.WriteString("\n")
}

// escapeCell keeps record text from breaking the table layout
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
