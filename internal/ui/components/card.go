package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MetricCard is a bordered card showing one headline metric.
type MetricCard struct {
	Title       string
	Value       string
	Description string
	Icon        string
	Width       int
}

// NewMetricCard creates a new metric card
func NewMetricCard(title, value, description string) *MetricCard {
	return &MetricCard{
		Title:       title,
		Value:       value,
		Description: description,
		Width:       22,
	}
}

// SetIcon sets the icon for the card
func (c *MetricCard) SetIcon(icon string) *MetricCard {
	c.Icon = icon
	return c
}

// SetWidth sets the card width
func (c *MetricCard) SetWidth(width int) *MetricCard {
	c.Width = width
	return c
}

// Render renders the metric card
func (c *MetricCard) Render() string {
	accentColor := lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	bodyColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	titleStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(bodyColor)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bodyColor).
		Padding(0, 1)

	title := titleStyle.Render(c.Title)
	if c.Icon != "" {
		title = c.Icon + " " + title
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		valueStyle.Render(c.Value),
		mutedStyle.Render(c.Description),
	)

	return boxStyle.Width(c.Width).Render(content)
}

// CardRow renders cards side by side
func CardRow(cards ...*MetricCard) string {
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, card.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
