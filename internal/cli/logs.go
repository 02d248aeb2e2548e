package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewLogsCmd creates the logs command
func NewLogsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs [n]",
		Short: "Print the last n lines of container output (default 50)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 0
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid line count %q", args[0])
				}
				n = parsed
			}
			return app.showLogs(cmd, n)
		},
	}

	return cmd
}

func (a *App) showLogs(cmd *cobra.Command, n int) error {
	m, err := a.wireMonitor()
	if err != nil {
		return err
	}

	lines, err := m.Logs(cmd.Context(), n)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
