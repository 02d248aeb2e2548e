package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caribedata/scraperctl/internal/monitor"
)

// Fetcher produces one fresh observation of the managed container.
// Each tick calls it again; the view never caches across polls.
type Fetcher func() (*monitor.Report, error)

// Model is the bubbletea model for the live watch view
type Model struct {
	// Configuration
	Interval time.Duration
	Fetch    Fetcher
	Styles   Styles

	// State
	Report      *monitor.Report
	Err         error
	LastUpdated time.Time
	StartTime   time.Time
	Width       int
	Height      int

	// Control
	Quitting bool
}

// NewModel creates a new watch model polling at the given interval
func NewModel(interval time.Duration, fetch Fetcher) *Model {
	return &Model{
		Interval:  interval,
		Fetch:     fetch,
		Styles:    DefaultStyles(),
		StartTime: time.Now(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(),
		m.tickCmd(),
	)
}

// TickMsg triggers the next poll
type TickMsg time.Time

// tickCmd schedules the next poll tick
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ReportMsg carries one observation back into the update loop
type ReportMsg struct {
	Report *monitor.Report
	Err    error
}

// fetchCmd runs one poll off the update loop
func (m *Model) fetchCmd() tea.Cmd {
	fetch := m.Fetch
	return func() tea.Msg {
		report, err := fetch()
		return ReportMsg{Report: report, Err: err}
	}
}
