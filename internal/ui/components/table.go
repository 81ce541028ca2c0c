package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RecordTable renders a scrollable window over tabular rows with a
// highlighted selection.
type RecordTable struct {
	Headers  []string
	Rows     [][]string
	Widths   []int
	Selected int
	Offset   int
	MaxRows  int
}

// NewRecordTable creates a table with the given headers and column widths
func NewRecordTable(headers []string, widths []int) *RecordTable {
	return &RecordTable{
		Headers: headers,
		Widths:  widths,
		MaxRows: 15,
	}
}

// Render renders the visible window of the table
func (t *RecordTable) Render() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}).
		Bold(true)
	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"}).
		Foreground(lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}).
		Bold(true)

	lines := make([]string, 0, t.MaxRows+2)
	lines = append(lines, headerStyle.Render(t.formatRow(t.Headers)))
	lines = append(lines, rowStyle.Render(strings.Repeat("─", t.rowWidth())))

	end := t.Offset + t.MaxRows
	if end > len(t.Rows) {
		end = len(t.Rows)
	}

	for i := t.Offset; i < end; i++ {
		line := t.formatRow(t.Rows[i])
		if i == t.Selected {
			lines = append(lines, selectedStyle.Render("▶ "+line))
		} else {
			lines = append(lines, rowStyle.Render("  "+line))
		}
	}

	if len(t.Rows) > t.MaxRows {
		position := fmt.Sprintf("%d-%d of %d", t.Offset+1, end, len(t.Rows))
		lines = append(lines, "", rowStyle.Render(position))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ScrollTo adjusts the window so the selected row stays visible
func (t *RecordTable) ScrollTo(selected int) {
	t.Selected = selected
	if selected < t.Offset {
		t.Offset = selected
	}
	if selected >= t.Offset+t.MaxRows {
		t.Offset = selected - t.MaxRows + 1
	}
}

func (t *RecordTable) formatRow(cells []string) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		width := 12
		if i < len(t.Widths) {
			width = t.Widths[i]
		}
		parts = append(parts, fmt.Sprintf("%-*s", width, truncate(cell, width)))
	}
	return strings.Join(parts, " ")
}

func (t *RecordTable) rowWidth() int {
	total := 2
	for _, w := range t.Widths {
		total += w + 1
	}
	return total
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
