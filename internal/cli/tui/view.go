package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/caribedata/scraperctl/internal/container"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString("  " + m.Styles.Error.Render(m.Err.Error()) + "\n")
	} else if m.Report == nil {
		b.WriteString("  Waiting for first observation...\n")
	} else {
		b.WriteString(m.renderStatus())
		b.WriteString(m.renderStats())
		b.WriteString(m.renderLogs())
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with elapsed watch time
func (m *Model) renderHeader() string {
	elapsed := time.Since(m.StartTime).Round(time.Second)
	timer := fmt.Sprintf("[%s]", formatDuration(elapsed))

	return fmt.Sprintf("%s  %s",
		m.Styles.Title.Render("scraperctl watch"),
		m.Styles.Timer.Render(timer),
	)
}

// renderStatus renders the container state line
func (m *Model) renderStatus() string {
	status := m.Report.Status

	var icon string
	switch status.State {
	case container.StateRunning:
		icon = m.Styles.StateRunning.Render(IconRunning)
	case container.StateExited, container.StateDead:
		icon = m.Styles.StateFailed.Render(IconFailed)
	default:
		icon = m.Styles.StateStopped.Render(IconStopped)
	}

	var health string
	switch status.Health {
	case container.HealthHealthy:
		health = m.Styles.Healthy.Render(string(status.Health))
	case container.HealthUnhealthy:
		health = m.Styles.Unhealthy.Render(string(status.Health))
	default:
		health = m.Styles.Unknown.Render(string(status.Health))
	}

	line := fmt.Sprintf("  %s %s  %s  health: %s",
		icon, m.Styles.Name.Render(status.Name), status.State, health)
	if status.Status != "" {
		line += "  " + m.Styles.Timer.Render(status.Status)
	}
	return line + "\n"
}

// renderStats renders the resource snapshot when one is available
func (m *Model) renderStats() string {
	snap := m.Report.Stats
	if snap == nil {
		return ""
	}

	return fmt.Sprintf("  %s %s  %s %s\n",
		m.Styles.StatLabel.Render("cpu:"),
		m.Styles.StatValue.Render(fmt.Sprintf("%.2f%%", snap.CPUPercent)),
		m.Styles.StatLabel.Render("mem:"),
		m.Styles.StatValue.Render(fmt.Sprintf("%s (%.2f%%)", snap.MemUsage, snap.MemPercent)),
	)
}

// renderLogs renders the recent log tail, clipped to the window height
func (m *Model) renderLogs() string {
	logs := m.Report.Logs
	if len(logs) == 0 {
		return ""
	}

	// Leave room for header, status, stats and footer.
	limit := m.Height - 8
	if limit < 1 {
		limit = 10
	}
	if len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}

	var b strings.Builder
	b.WriteString("\n" + m.Styles.LogTitle.Render("  recent logs") + "\n")
	for _, line := range logs {
		b.WriteString("  " + m.Styles.LogLine.Render(line) + "\n")
	}
	return b.String()
}

// renderFooter renders the quit hint
func (m *Model) renderFooter() string {
	return m.Styles.Footer.Render(
		fmt.Sprintf("  %s quit", m.Styles.FooterKey.Render("q")),
	)
}

// formatDuration renders an elapsed duration as mm:ss or hh:mm:ss
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, s)
	}
	return fmt.Sprintf("%02d:%02d", min, s)
}
