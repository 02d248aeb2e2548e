package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the watch view
type Styles struct {
	// Header styling
	Title lipgloss.Style
	Timer lipgloss.Style

	// Container state styling
	StateRunning lipgloss.Style
	StateStopped lipgloss.Style
	StateFailed  lipgloss.Style
	Name         lipgloss.Style

	// Health styling
	Healthy   lipgloss.Style
	Unhealthy lipgloss.Style
	Unknown   lipgloss.Style

	// Stats labels and values
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Log area styling
	LogTitle lipgloss.Style
	LogLine  lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Error line
	Error lipgloss.Style
}

// DefaultStyles returns the default watch view styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Timer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		StateRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StateStopped: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StateFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Name:         lipgloss.NewStyle().Bold(true),

		Healthy:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Unhealthy: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Unknown:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		StatLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		LogTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		LogLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),

		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Icons used in the watch view
const (
	IconRunning = "●"
	IconStopped = "○"
	IconFailed  = "✗"
)
