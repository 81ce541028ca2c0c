package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/rugi/jeplens/internal/jep"
)

// terminalFormatter formats the report as plain text for terminal display
// using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeCriteria(&b, report.Criteria)
	f.writeMetrics(&b, report.Summary)

	if report.Summary.Total > 0 {
		f.writeTopStatuses(&b, report.Summary)
		f.writeTopAuthors(&b, report.Summary)
		f.writeYearDistribution(&b, report.Summary)
		f.writeReleases(&b, report.Summary)
	} else {
		b.WriteString("No JEPs match the active filters.\n")
	}

	return []byte(b.String()), nil
}

// writeHeader writes a box-drawn header
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "JEP Analytics Summary"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeCriteria shows the active filters so a reader knows what subset the
// numbers describe
func (f *terminalFormatter) writeCriteria(b *strings.Builder, c jep.Criteria) {
	if c.IsZero() {
		return
	}

	symbol := termfmt.GetEmoji("pattern", f.opts)
	b.WriteString(symbol + " Active Filters\n")

	var items []termfmt.TreeItem
	if len(c.Statuses) > 0 {
		items = append(items, termfmt.TreeItem{Label: "Status", Value: strings.Join(c.Statuses, ", ")})
	}
	if len(c.Authors) > 0 {
		items = append(items, termfmt.TreeItem{Label: "Author", Value: strings.Join(c.Authors, ", ")})
	}
	if len(c.Releases) > 0 {
		items = append(items, termfmt.TreeItem{Label: "Release", Value: strings.Join(c.Releases, ", ")})
	}
	if c.YearMin != 0 || c.YearMax != 0 {
		items = append(items, termfmt.TreeItem{Label: "Years", Value: formatYearRange(c.YearMin, c.YearMax)})
	}
	if len(items) > 0 {
		items[len(items)-1].Last = true
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeMetrics writes the headline metrics with tree-style formatting
func (f *terminalFormatter) writeMetrics(b *strings.Builder, s *jep.Summary) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	items := []termfmt.TreeItem{
		{Label: "Total JEPs", Value: formatNumber(s.Total)},
		{Label: "Unique Authors", Value: formatNumber(s.UniqueAuthors)},
		{Label: "Releases Affected", Value: formatNumber(s.UniqueReleases)},
		{Label: "Avg Duration", Value: formatDuration(s.AvgDurationDays)},
	}

	if s.YearMin != 0 {
		items = append(items, termfmt.TreeItem{Label: "Year Span", Value: fmt.Sprintf("%d-%d", s.YearMin, s.YearMax), Last: true})
	} else {
		items = append(items, termfmt.TreeItem{Label: "Year Span", Value: "N/A", Last: true})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeTopStatuses writes the status distribution as a tree-drawn list
func (f *terminalFormatter) writeTopStatuses(b *strings.Builder, s *jep.Summary) {
	b.WriteString(termfmt.GetEmoji("info", f.opts) + " Status Distribution\n")

	statuses := s.TopStatuses
	for i, count := range statuses {
		share := float64(count.Count) / float64(s.Total) * 100
		if i == len(statuses)-1 {
			fmt.Fprintf(b, "└─ %s (%d, %.1f%%)\n", count.Key, count.Count, share)
		} else {
			fmt.Fprintf(b, "├─ %s (%d, %.1f%%)\n", count.Key, count.Count, share)
		}
	}
	b.WriteString("\n")
}

// writeTopAuthors writes the five most prolific authors
func (f *terminalFormatter) writeTopAuthors(b *strings.Builder, s *jep.Summary) {
	authors := jep.TopN(s.TopAuthors, 5)
	if len(authors) == 0 {
		return
	}

	b.WriteString(termfmt.GetEmoji("success", f.opts) + " Top Authors\n")
	for i, count := range authors {
		if i == len(authors)-1 {
			fmt.Fprintf(b, "└─ %s (%d)\n", count.Key, count.Count)
		} else {
			fmt.Fprintf(b, "├─ %s (%d)\n", count.Key, count.Count)
		}
	}
	b.WriteString("\n")
}

// writeYearDistribution draws a horizontal bar per year, scaled to the
// busiest year
func (f *terminalFormatter) writeYearDistribution(b *strings.Builder, s *jep.Summary) {
	if len(s.ByYear) == 0 {
		return
	}

	b.WriteString(termfmt.GetEmoji("statistics", f.opts) + " JEPs per Year\n")

	years := make([]int, 0, len(s.ByYear))
	maxCount := 0
	for year, count := range s.ByYear {
		years = append(years, year)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Ints(years)

	const barWidth = 30
	for _, year := range years {
		count := s.ByYear[year]
		filled := count * barWidth / maxCount
		if filled == 0 && count > 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled)
		fmt.Fprintf(b, "%d │%-*s %d\n", year, barWidth, bar, count)
	}
	b.WriteString("\n")
}

// writeReleases writes the per-release counts in release order
func (f *terminalFormatter) writeReleases(b *strings.Builder, s *jep.Summary) {
	if len(s.ByRelease) == 0 {
		return
	}

	b.WriteString(termfmt.GetEmoji("info", f.opts) + " JEPs per Release\n")

	releases := sortedReleases(s.ByRelease)
	for i, release := range releases {
		if i == len(releases)-1 {
			fmt.Fprintf(b, "└─ JDK %s (%d)\n", release, s.ByRelease[release])
		} else {
			fmt.Fprintf(b, "├─ JDK %s (%d)\n", release, s.ByRelease[release])
		}
	}
	b.WriteString("\n")
}
