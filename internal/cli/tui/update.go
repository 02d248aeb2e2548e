package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TickMsg:
		// Poll again and keep ticking
		return m, tea.Batch(m.fetchCmd(), m.tickCmd())

	case ReportMsg:
		m.Report = msg.Report
		m.Err = msg.Err
		m.LastUpdated = time.Now()
	}

	return m, nil
}
