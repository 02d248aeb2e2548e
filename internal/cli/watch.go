package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caribedata/scraperctl/internal/cli/tui"
	"github.com/caribedata/scraperctl/internal/monitor"
)

// NewWatchCmd creates the watch command
func NewWatchCmd(app *App) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of container state, stats and logs",
		Long: `Poll the container's status, resource usage and recent logs on an
interval and render them as a live terminal view. Falls back to a
single full report when stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runWatch(cmd, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Polling interval")

	return cmd
}

func (a *App) runWatch(cmd *cobra.Command, interval time.Duration) error {
	m, err := a.wireMonitor()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		report, err := m.Full(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), FormatFullReport(report))
		return nil
	}

	fetch := func() (*monitor.Report, error) {
		ctx, cancel := context.WithTimeout(cmd.Context(), interval*5)
		defer cancel()
		return m.Full(ctx)
	}

	model := tui.NewModel(interval, fetch)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
