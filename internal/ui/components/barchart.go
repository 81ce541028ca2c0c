package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarRow is one labeled bar in a horizontal chart.
type BarRow struct {
	Label string
	Value int
}

// BarChart renders labeled horizontal bars scaled to the largest value.
type BarChart struct {
	Title    string
	Rows     []BarRow
	BarWidth int
	BarColor lipgloss.AdaptiveColor
}

// NewBarChart creates a bar chart with the default accent color
func NewBarChart(title string, rows []BarRow, barWidth int) *BarChart {
	return &BarChart{
		Title:    title,
		Rows:     rows,
		BarWidth: barWidth,
		BarColor: lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"},
	}
}

// SetColor overrides the bar color
func (c *BarChart) SetColor(color lipgloss.AdaptiveColor) *BarChart {
	c.BarColor = color
	return c
}

// Render renders the chart
func (c *BarChart) Render() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	barStyle := lipgloss.NewStyle().Foreground(c.BarColor)

	if len(c.Rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(c.Title),
			"",
			mutedStyle.Render("No data to display"))
	}

	maxValue := 0
	labelWidth := 0
	for _, row := range c.Rows {
		if row.Value > maxValue {
			maxValue = row.Value
		}
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	lines := make([]string, 0, len(c.Rows)+2)
	lines = append(lines, titleStyle.Render(c.Title), "")

	for _, row := range c.Rows {
		filled := row.Value * c.BarWidth / maxValue
		if filled == 0 && row.Value > 0 {
			filled = 1
		}

		label := mutedStyle.Render(fmt.Sprintf("%-*s", labelWidth, row.Label))
		bar := barStyle.Render(strings.Repeat("█", filled))
		lines = append(lines, fmt.Sprintf("%s │%s %d", label, bar, row.Value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
