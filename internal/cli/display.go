package cli

import (
	"fmt"
	"strings"

	"github.com/caribedata/scraperctl/internal/container"
	"github.com/caribedata/scraperctl/internal/deploy"
	"github.com/caribedata/scraperctl/internal/monitor"
)

// StatusSymbol marks a container or step state in formatted output
type StatusSymbol string

const (
	SymbolOK      StatusSymbol = "✓"
	SymbolRunning StatusSymbol = "●"
	SymbolStopped StatusSymbol = "○"
	SymbolFailed  StatusSymbol = "✗"
	SymbolSkipped StatusSymbol = "→"
)

const separatorWidth = 63

// StateSymbol returns the display symbol for a container state
func StateSymbol(state container.RunState) StatusSymbol {
	switch state {
	case container.StateRunning:
		return SymbolRunning
	case container.StateAbsent:
		return SymbolStopped
	case container.StateExited, container.StateDead:
		return SymbolFailed
	default:
		return SymbolStopped
	}
}

// FormatStatus formats a single status report
func FormatStatus(report *monitor.StatusReport) string {
	var b strings.Builder

	symbol := StateSymbol(report.State)
	b.WriteString(fmt.Sprintf(" %s %s: %s (health: %s)\n",
		symbol, report.Name, report.State, report.Health))

	if report.Status != "" {
		b.WriteString(fmt.Sprintf("   %s\n", report.Status))
	}
	if report.Image != "" {
		b.WriteString(fmt.Sprintf("   image: %s\n", report.Image))
	}

	return b.String()
}

// FormatStats formats a resource snapshot
func FormatStats(snap *container.StatsSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(" CPU:    %.2f%%\n", snap.CPUPercent))
	b.WriteString(fmt.Sprintf(" Memory: %s (%.2f%%)\n", snap.MemUsage, snap.MemPercent))
	if snap.NetIO != "" {
		b.WriteString(fmt.Sprintf(" Net:    %s\n", snap.NetIO))
	}

	return b.String()
}

// stepSymbol maps a step outcome to its display symbol
func stepSymbol(status deploy.StepStatus) StatusSymbol {
	switch status {
	case deploy.StatusSuccess:
		return SymbolOK
	case deploy.StatusFailed:
		return SymbolFailed
	default:
		return SymbolSkipped
	}
}

// FormatDeployResult produces the full deploy summary: every step with
// its outcome, the finally observed state, and the captured log tail.
func FormatDeployResult(res *deploy.Result) string {
	var b strings.Builder

	separator := strings.Repeat("═", separatorWidth)
	b.WriteString(separator + "\n")

	for _, sr := range res.Steps {
		line := fmt.Sprintf(" %s %-10s %s", stepSymbol(sr.Status), sr.Step, sr.Status)
		if sr.Detail != "" {
			line += "  " + sr.Detail
		}
		b.WriteString(line + "\n")
	}

	thin := strings.Repeat("─", separatorWidth)
	b.WriteString(thin + "\n")
	b.WriteString(fmt.Sprintf(" State: %s | Health: %s\n", res.State, res.Health))

	switch {
	case res.ServiceDown:
		b.WriteString(" SERVICE DOWN: no instance is running\n")
	case res.Degraded:
		b.WriteString(" Deployed, but the instance could not be confirmed healthy\n")
	case res.Err == nil:
		b.WriteString(" Deploy complete\n")
	}

	if len(res.Logs) > 0 {
		b.WriteString(thin + "\n")
		b.WriteString(" Recent logs:\n")
		for _, line := range res.Logs {
			b.WriteString("   " + line + "\n")
		}
	}

	b.WriteString(separator + "\n")
	return b.String()
}

// FormatFullReport renders the combined status/stats/logs overview
func FormatFullReport(report *monitor.Report) string {
	var b strings.Builder

	separator := strings.Repeat("═", separatorWidth)
	b.WriteString(separator + "\n")
	b.WriteString(FormatStatus(report.Status))

	if report.Stats != nil {
		b.WriteString(strings.Repeat("─", separatorWidth) + "\n")
		b.WriteString(FormatStats(report.Stats))
	}

	if len(report.Logs) > 0 {
		b.WriteString(strings.Repeat("─", separatorWidth) + "\n")
		b.WriteString(fmt.Sprintf(" Last %d log lines:\n", len(report.Logs)))
		for _, line := range report.Logs {
			b.WriteString("   " + line + "\n")
		}
	}

	b.WriteString(separator + "\n")
	return b.String()
}
