package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rugi/jeplens/internal/config"
	"github.com/rugi/jeplens/internal/emoji"
	"github.com/rugi/jeplens/internal/jep"
	"github.com/rugi/jeplens/internal/loader"
	"github.com/rugi/jeplens/internal/ui/components"
)

// DashboardViewState represents different views in the dashboard
type DashboardViewState int

const (
	DashboardViewLoading DashboardViewState = iota
	DashboardViewOverview
	DashboardViewRecords
	DashboardViewStatuses
	DashboardViewTimeline
	DashboardViewAuthors
	DashboardViewReleases
	DashboardViewFilters
	DashboardViewHelp
)

// filterEntryKind identifies what a filter panel row toggles or adjusts
type filterEntryKind int

const (
	entryStatus filterEntryKind = iota
	entryAuthor
	entryRelease
	entryYearFrom
	entryYearTo
)

type filterEntry struct {
	kind  filterEntryKind
	value string
	count int
}

// DashboardModel is the interactive TUI over a loaded JEP dataset. Every
// filter change recomputes the filtered subset and its summary from the
// immutable source records.
type DashboardModel struct {
	width    int
	height   int
	ready    bool
	quitting bool

	dataset     *loader.Dataset
	cfg         config.DashboardConfig
	criteria    jep.Criteria
	filtered    []jep.Record
	summary     *jep.Summary
	fullSummary *jep.Summary

	// Navigation state
	currentView   DashboardViewState
	selectedIndex int
	maxIndex      int
	tableOffset   int

	// Filter panel rows, rebuilt once from the full dataset
	filterEntries []filterEntry

	// Animation and feedback state
	spinnerFrame int
	tick         int
	statusMsg    string
	statusUntil  int

	// Colors
	primaryColor   lipgloss.AdaptiveColor
	secondaryColor lipgloss.AdaptiveColor
	successColor   lipgloss.AdaptiveColor
	warningColor   lipgloss.AdaptiveColor
	errorColor     lipgloss.AdaptiveColor
	selectedColor  lipgloss.AdaptiveColor
}

// NewDashboardModel creates a dashboard model over a loaded dataset
func NewDashboardModel(ds *loader.Dataset, criteria jep.Criteria, cfg config.DashboardConfig) *DashboardModel {
	if cfg.TopAuthors == 0 {
		cfg.TopAuthors = 10
	}
	if cfg.ChartWidth == 0 {
		cfg.ChartWidth = 40
	}
	if cfg.TableRows == 0 {
		cfg.TableRows = 15
	}

	m := &DashboardModel{
		dataset:        ds,
		cfg:            cfg,
		criteria:       criteria,
		currentView:    DashboardViewLoading,
		fullSummary:    jep.Summarize(ds.Records),
		primaryColor:   lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"},
		secondaryColor: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		successColor:   lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
		warningColor:   lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"},
		errorColor:     lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"},
		selectedColor:  lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
	}
	m.buildFilterEntries()
	return m
}

// Init initializes the dashboard model
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.computeSummary(),
		tick(),
	)
}

// computeSummary filters and summarizes the dataset off the render path
func (m *DashboardModel) computeSummary() tea.Cmd {
	records := m.dataset.Records
	criteria := m.criteria
	return func() tea.Msg {
		filtered := jep.Apply(records, criteria)
		return summaryReadyMsg{summary: jep.Summarize(filtered)}
	}
}

// Update handles messages and navigation
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tickMsg:
		return m.handleTick()
	case summaryReadyMsg:
		return m.handleSummaryReady(msg)
	case exportDoneMsg:
		return m.handleExportDone(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerChars)
	if m.statusMsg != "" && m.tick > m.statusUntil {
		m.statusMsg = ""
	}
	return m, tick()
}

func (m *DashboardModel) handleSummaryReady(msg summaryReadyMsg) (tea.Model, tea.Cmd) {
	m.filtered = jep.Apply(m.dataset.Records, m.criteria)
	m.summary = msg.summary
	if m.currentView == DashboardViewLoading {
		m.currentView = DashboardViewOverview
	}
	m.updateMaxIndex()
	return m, nil
}

func (m *DashboardModel) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(emoji.GetEmoji("error") + " Export failed: " + msg.err.Error())
	} else {
		m.setStatus(fmt.Sprintf("%s Exported %d records to %s",
			emoji.GetEmoji("export"), msg.count, msg.path))
	}
	return m, nil
}

func (m *DashboardModel) setStatus(msg string) {
	m.statusMsg = msg
	m.statusUntil = m.tick + 50
}

// handleKeyPress handles keyboard input
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		return m.handleEscape()
	case "?":
		return m.switchView(DashboardViewHelp)
	case "up", "k":
		return m.handleMoveUp()
	case "down", "j":
		return m.handleMoveDown()
	case "left", "h":
		return m.handleAdjust(-1)
	case "right", "l":
		return m.handleAdjust(1)
	case "enter", " ":
		return m.handleSelection()
	case "e":
		return m.handleExport()
	case "r":
		return m.handleReset()
	case "f":
		return m.switchView(DashboardViewFilters)
	case "o", "m":
		return m.switchView(DashboardViewOverview)
	case "1":
		return m.switchView(DashboardViewRecords)
	case "2":
		return m.switchView(DashboardViewStatuses)
	case "3":
		return m.switchView(DashboardViewTimeline)
	case "4":
		return m.switchView(DashboardViewAuthors)
	case "5":
		return m.switchView(DashboardViewReleases)
	}
	return m, nil
}

func (m *DashboardModel) handleEscape() (tea.Model, tea.Cmd) {
	if m.currentView != DashboardViewOverview && m.currentView != DashboardViewLoading {
		return m.switchView(DashboardViewOverview)
	}
	return m, nil
}

func (m *DashboardModel) switchView(view DashboardViewState) (tea.Model, tea.Cmd) {
	if m.summary == nil {
		return m, nil
	}
	m.currentView = view
	m.selectedIndex = 0
	m.tableOffset = 0
	m.updateMaxIndex()
	return m, nil
}

func (m *DashboardModel) handleMoveUp() (tea.Model, tea.Cmd) {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
	return m, nil
}

func (m *DashboardModel) handleMoveDown() (tea.Model, tea.Cmd) {
	if m.selectedIndex < m.maxIndex {
		m.selectedIndex++
	}
	return m, nil
}

// handleSelection toggles filter rows or opens the selected overview section
func (m *DashboardModel) handleSelection() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case DashboardViewOverview:
		views := []DashboardViewState{
			DashboardViewRecords,
			DashboardViewStatuses,
			DashboardViewTimeline,
			DashboardViewAuthors,
			DashboardViewReleases,
			DashboardViewFilters,
			DashboardViewHelp,
		}
		if m.selectedIndex < len(views) {
			return m.switchView(views[m.selectedIndex])
		}
	case DashboardViewFilters:
		return m.toggleFilterEntry()
	}
	return m, nil
}

func (m *DashboardModel) toggleFilterEntry() (tea.Model, tea.Cmd) {
	if m.selectedIndex >= len(m.filterEntries) {
		return m, nil
	}

	entry := m.filterEntries[m.selectedIndex]
	switch entry.kind {
	case entryStatus:
		m.criteria.Statuses = toggleValue(m.criteria.Statuses, entry.value)
	case entryAuthor:
		m.criteria.Authors = toggleValue(m.criteria.Authors, entry.value)
	case entryRelease:
		m.criteria.Releases = toggleValue(m.criteria.Releases, entry.value)
	case entryYearFrom, entryYearTo:
		return m, nil
	}

	return m, m.computeSummary()
}

// handleAdjust moves the year bounds when a year row is selected
func (m *DashboardModel) handleAdjust(delta int) (tea.Model, tea.Cmd) {
	if m.currentView != DashboardViewFilters || m.selectedIndex >= len(m.filterEntries) {
		return m, nil
	}

	entry := m.filterEntries[m.selectedIndex]
	switch entry.kind {
	case entryYearFrom:
		m.criteria.YearMin = adjustYear(m.criteria.YearMin, delta,
			m.fullSummary.YearMin, m.fullSummary.YearMax)
	case entryYearTo:
		m.criteria.YearMax = adjustYear(m.criteria.YearMax, delta,
			m.fullSummary.YearMin, m.fullSummary.YearMax)
	default:
		return m, nil
	}

	return m, m.computeSummary()
}

func (m *DashboardModel) handleReset() (tea.Model, tea.Cmd) {
	if m.currentView != DashboardViewFilters {
		return m, nil
	}
	m.criteria = jep.Criteria{}
	m.setStatus(emoji.GetEmoji("filter") + " Filters cleared")
	return m, m.computeSummary()
}

// handleExport writes the current filtered subset to a timestamped CSV
func (m *DashboardModel) handleExport() (tea.Model, tea.Cmd) {
	if m.summary == nil {
		return m, nil
	}

	columns := m.dataset.Columns
	records := m.filtered
	return m, func() tea.Msg {
		path := loader.ExportFilename(time.Now())
		if err := loader.Export(path, columns, records); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path, count: len(records)}
	}
}

// updateMaxIndex updates the maximum selectable index for the current view
func (m *DashboardModel) updateMaxIndex() {
	switch m.currentView {
	case DashboardViewOverview:
		m.maxIndex = 6
	case DashboardViewRecords:
		m.maxIndex = max(0, len(m.filtered)-1)
	case DashboardViewFilters:
		m.maxIndex = max(0, len(m.filterEntries)-1)
	default:
		m.maxIndex = 0
	}
	if m.selectedIndex > m.maxIndex {
		m.selectedIndex = m.maxIndex
	}
}

// buildFilterEntries derives the selectable filter rows from the full
// dataset so toggles never disappear as the subset narrows
func (m *DashboardModel) buildFilterEntries() {
	entries := make([]filterEntry, 0,
		len(m.fullSummary.TopStatuses)+len(m.fullSummary.ByRelease)+17)

	for _, count := range m.fullSummary.TopStatuses {
		entries = append(entries, filterEntry{kind: entryStatus, value: count.Key, count: count.Count})
	}
	for _, count := range jep.TopN(m.fullSummary.TopAuthors, 15) {
		entries = append(entries, filterEntry{kind: entryAuthor, value: count.Key, count: count.Count})
	}

	releases := make([]string, 0, len(m.fullSummary.ByRelease))
	for release := range m.fullSummary.ByRelease {
		releases = append(releases, release)
	}
	sort.Slice(releases, func(i, j int) bool {
		a, _ := strconv.Atoi(releases[i])
		b, _ := strconv.Atoi(releases[j])
		return a < b
	})
	for _, release := range releases {
		entries = append(entries, filterEntry{
			kind:  entryRelease,
			value: release,
			count: m.fullSummary.ByRelease[release],
		})
	}

	entries = append(entries,
		filterEntry{kind: entryYearFrom},
		filterEntry{kind: entryYearTo},
	)

	m.filterEntries = entries
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if !m.ready {
		return m.renderLoadingScreen()
	}
	if m.quitting {
		return m.renderGoodbyeScreen()
	}

	switch m.currentView {
	case DashboardViewLoading:
		return m.renderLoadingScreen()
	case DashboardViewOverview:
		return m.renderOverview()
	case DashboardViewRecords:
		return m.renderRecordsView()
	case DashboardViewStatuses:
		return m.renderStatusChart()
	case DashboardViewTimeline:
		return m.renderTimelineChart()
	case DashboardViewAuthors:
		return m.renderAuthorsChart()
	case DashboardViewReleases:
		return m.renderReleasesChart()
	case DashboardViewFilters:
		return m.renderFilterPanel()
	case DashboardViewHelp:
		return m.renderHelpView()
	default:
		return m.renderOverview()
	}
}

func (m *DashboardModel) renderLoadingScreen() string {
	spinner := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(spinnerChars[m.spinnerFrame])

	loading := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(fmt.Sprintf("%s Crunching %d JEP records%s",
			spinner, len(m.dataset.Records), strings.Repeat(".", (m.tick/5)%4)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
}

func (m *DashboardModel) renderGoodbyeScreen() string {
	goodbye := lipgloss.NewStyle().
		Foreground(m.successColor).
		Bold(true).
		Render("Thanks for using jeplens! " + emoji.GetEmoji("coffee"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, goodbye)
}

func (m *DashboardModel) renderOverview() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("coffee") + " JEP Analytics Dashboard")

	cards := components.CardRow(
		components.NewMetricCard("Total JEPs", formatCount(m.summary.Total),
			"matching filters").SetIcon(emoji.GetEmoji("statistics")),
		components.NewMetricCard("Authors", formatCount(m.summary.UniqueAuthors),
			"unique owners").SetIcon(emoji.GetEmoji("author")),
		components.NewMetricCard("Releases", formatCount(m.summary.UniqueReleases),
			"JDK versions").SetIcon(emoji.GetEmoji("release")),
		components.NewMetricCard("Avg Duration", formatAvgDuration(m.summary.AvgDurationDays),
			"created to updated").SetIcon(emoji.GetEmoji("duration")),
	)

	menuItems := []string{
		emoji.GetEmoji("table") + " Browse Records",
		emoji.GetEmoji("status") + " Status Distribution",
		emoji.GetEmoji("timeline") + " Year Timeline",
		emoji.GetEmoji("author") + " Top Authors",
		emoji.GetEmoji("release") + " JEPs per Release",
		emoji.GetEmoji("filter") + " Filters" + m.activeFilterBadge(),
		emoji.GetEmoji("help") + " Help",
	}

	menuList := make([]string, 0, len(menuItems))
	for i, item := range menuItems {
		style := lipgloss.NewStyle().Foreground(m.secondaryColor)
		prefix := "  "
		if i == m.selectedIndex {
			style = style.Background(m.selectedColor).Foreground(m.primaryColor).Bold(true)
			prefix = "▶ "
		}
		menuList = append(menuList, style.Render(prefix+item))
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("↑↓ Navigate • Enter Select • 1-5 Quick views • f Filters • e Export • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		cards,
		"",
		lipgloss.JoinVertical(lipgloss.Left, menuList...),
		"",
		instructions,
		m.renderStatusLine(),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 3).
		Width(min(m.width-4, 100))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) activeFilterBadge() string {
	if m.criteria.IsZero() {
		return ""
	}
	active := len(m.criteria.Statuses) + len(m.criteria.Authors) + len(m.criteria.Releases)
	if m.criteria.YearMin != 0 {
		active++
	}
	if m.criteria.YearMax != 0 {
		active++
	}
	return fmt.Sprintf(" (%d active)", active)
}

func (m *DashboardModel) renderRecordsView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("table") + " JEP Records")

	if len(m.filtered) == 0 {
		return m.renderEmptyView(title, "No JEPs match the active filters")
	}

	table := components.NewRecordTable(
		[]string{"JEP", "Title", "Status", "Release", "Owner", "Year"},
		[]int{6, 42, 12, 8, 22, 5},
	)
	table.MaxRows = m.cfg.TableRows
	for i := range m.filtered {
		r := &m.filtered[i]
		year := ""
		if r.HasYear() {
			year = strconv.Itoa(r.Year)
		}
		table.Rows = append(table.Rows, []string{
			r.Number, r.Title, r.Status, r.Release, r.Owner, year,
		})
	}
	table.ScrollTo(m.selectedIndex)
	m.tableOffset = table.Offset

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("↑↓ Navigate • e Export • Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		table.Render(),
		"",
		instructions,
		m.renderStatusLine(),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 120))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderStatusChart() string {
	rows := make([]components.BarRow, 0, len(m.summary.TopStatuses))
	for _, count := range m.summary.TopStatuses {
		rows = append(rows, components.BarRow{Label: count.Key, Value: count.Count})
	}

	chart := components.NewBarChart(
		emoji.GetEmoji("status")+" Status Distribution", rows, m.cfg.ChartWidth)

	return m.renderChartView(chart.Render())
}

func (m *DashboardModel) renderTimelineChart() string {
	years := make([]int, 0, len(m.summary.ByYear))
	for year := range m.summary.ByYear {
		years = append(years, year)
	}
	sort.Ints(years)

	rows := make([]components.BarRow, 0, len(years))
	for _, year := range years {
		rows = append(rows, components.BarRow{
			Label: strconv.Itoa(year),
			Value: m.summary.ByYear[year],
		})
	}

	chart := components.NewBarChart(
		emoji.GetEmoji("timeline")+" JEPs per Year", rows, m.cfg.ChartWidth)
	chart.SetColor(m.successColor)

	return m.renderChartView(chart.Render())
}

func (m *DashboardModel) renderAuthorsChart() string {
	top := jep.TopN(m.summary.TopAuthors, m.cfg.TopAuthors)
	rows := make([]components.BarRow, 0, len(top))
	for _, count := range top {
		rows = append(rows, components.BarRow{Label: count.Key, Value: count.Count})
	}

	chart := components.NewBarChart(
		fmt.Sprintf("%s Top %d Authors", emoji.GetEmoji("author"), m.cfg.TopAuthors),
		rows, m.cfg.ChartWidth)
	chart.SetColor(m.warningColor)

	return m.renderChartView(chart.Render())
}

func (m *DashboardModel) renderReleasesChart() string {
	releases := make([]string, 0, len(m.summary.ByRelease))
	for release := range m.summary.ByRelease {
		releases = append(releases, release)
	}
	sort.Slice(releases, func(i, j int) bool {
		a, _ := strconv.Atoi(releases[i])
		b, _ := strconv.Atoi(releases[j])
		return a < b
	})

	rows := make([]components.BarRow, 0, len(releases))
	for _, release := range releases {
		rows = append(rows, components.BarRow{
			Label: "JDK " + release,
			Value: m.summary.ByRelease[release],
		})
	}

	chart := components.NewBarChart(
		emoji.GetEmoji("release")+" JEPs per Release", rows, m.cfg.ChartWidth)
	chart.SetColor(m.errorColor)

	return m.renderChartView(chart.Render())
}

func (m *DashboardModel) renderChartView(chart string) string {
	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("f Filters • e Export • Esc Back • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		chart,
		"",
		instructions,
		m.renderStatusLine(),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 100))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderFilterPanel() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("filter") + " Filters")

	matching := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(fmt.Sprintf("%d of %d JEPs matching", m.summary.Total, len(m.dataset.Records)))

	lines := make([]string, 0, len(m.filterEntries)+8)
	lastSection := filterEntryKind(-1)
	for i, entry := range m.filterEntries {
		// Both year rows share one section header.
		section := entry.kind
		if section == entryYearTo {
			section = entryYearFrom
		}
		if section != lastSection {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, lipgloss.NewStyle().
				Foreground(m.primaryColor).
				Bold(true).
				Render(m.filterSectionTitle(section)))
			lastSection = section
		}

		style := lipgloss.NewStyle().Foreground(m.secondaryColor)
		prefix := "  "
		if i == m.selectedIndex {
			style = style.Background(m.selectedColor).Foreground(m.primaryColor).Bold(true)
			prefix = "▶ "
		}
		lines = append(lines, style.Render(prefix+m.filterEntryLabel(entry)))
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("↑↓ Navigate • Space Toggle • ←→ Adjust years • r Reset • Esc Back")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		matching,
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		instructions,
		m.renderStatusLine(),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 80))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) filterSectionTitle(kind filterEntryKind) string {
	switch kind {
	case entryStatus:
		return "Status"
	case entryAuthor:
		return "Author"
	case entryRelease:
		return "Release"
	default:
		return "Year Range"
	}
}

func (m *DashboardModel) filterEntryLabel(entry filterEntry) string {
	switch entry.kind {
	case entryYearFrom:
		return "From: " + formatYearBound(m.criteria.YearMin)
	case entryYearTo:
		return "To:   " + formatYearBound(m.criteria.YearMax)
	}

	check := "[ ]"
	if m.filterEntryActive(entry) {
		check = "[x]"
	}
	label := entry.value
	if entry.kind == entryRelease {
		label = "JDK " + entry.value
	}
	return fmt.Sprintf("%s %s (%d)", check, label, entry.count)
}

func (m *DashboardModel) filterEntryActive(entry filterEntry) bool {
	switch entry.kind {
	case entryStatus:
		return containsValue(m.criteria.Statuses, entry.value)
	case entryAuthor:
		return containsValue(m.criteria.Authors, entry.value)
	case entryRelease:
		return containsValue(m.criteria.Releases, entry.value)
	default:
		return false
	}
}

func (m *DashboardModel) renderHelpView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("help") + " jeplens Help")

	helpSections := []string{
		emoji.GetEmoji("target") + " Navigation:",
		"  ↑↓ or j/k    Move up/down in lists",
		"  Enter or Space    Select or toggle item",
		"  Esc    Go back to overview",
		"  o or m    Return to overview",
		"",
		emoji.GetEmoji("number") + " Quick Keys:",
		"  1    Browse records",
		"  2    Status distribution",
		"  3    Year timeline",
		"  4    Top authors",
		"  5    JEPs per release",
		"  f    Filter panel",
		"  ?    Show this help",
		"",
		emoji.GetEmoji("filter") + " Filtering:",
		"  Space    Toggle a status, author, or release",
		"  ←→ or h/l    Adjust the year bounds",
		"  r    Reset all filters",
		"",
		emoji.GetEmoji("export") + " Export:",
		"  e    Export the filtered subset to a timestamped CSV",
		"",
		emoji.GetEmoji("door") + " Exit:",
		"  q    Quit application",
		"  Ctrl+C    Force quit",
	}

	helpList := make([]string, 0, len(helpSections))
	for _, line := range helpSections {
		switch {
		case strings.HasSuffix(line, ":"):
			helpList = append(helpList, lipgloss.NewStyle().
				Foreground(m.primaryColor).
				Bold(true).
				Render(line))
		case line == "":
			helpList = append(helpList, "")
		default:
			helpList = append(helpList, lipgloss.NewStyle().
				Foreground(m.secondaryColor).
				Render(line))
		}
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render("Press Esc to go back")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, helpList...),
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 80))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *DashboardModel) renderEmptyView(title, message string) string {
	empty := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", empty, "",
		lipgloss.NewStyle().Foreground(m.secondaryColor).Render("Press Esc to go back"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *DashboardModel) renderStatusLine() string {
	if m.statusMsg == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(m.successColor).
		Render(m.statusMsg)
}

// Run starts the interactive dashboard over a loaded dataset
func Run(ds *loader.Dataset, criteria jep.Criteria, cfg config.DashboardConfig) error {
	model := NewDashboardModel(ds, criteria, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func toggleValue(values []string, v string) []string {
	for i, candidate := range values {
		if candidate == v {
			return append(values[:i], values[i+1:]...)
		}
	}
	return append(values, v)
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// adjustYear nudges a year bound within the dataset's span; zero disables
// the bound and sits just outside either end of the range
func adjustYear(current, delta, yearMin, yearMax int) int {
	if yearMin == 0 {
		return 0
	}

	if current == 0 {
		if delta > 0 {
			return yearMin
		}
		return 0
	}

	next := current + delta
	if next < yearMin || next > yearMax {
		return 0
	}
	return next
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

func formatAvgDuration(days float64) string {
	if days < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f days", days)
}

func formatYearBound(year int) string {
	if year == 0 {
		return "(any)"
	}
	return strconv.Itoa(year)
}
