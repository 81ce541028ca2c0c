package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rugi/jeplens/internal/jep"
)

// Message types shared across dashboard updates
type tickMsg time.Time

type summaryReadyMsg struct {
	summary *jep.Summary
}

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

var spinnerChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
