package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFullCmd creates the full command
func NewFullCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "full",
		Short: "Show a combined status, stats and log report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.wireMonitor()
			if err != nil {
				return err
			}

			report, err := m.Full(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), FormatFullReport(report))
			return nil
		},
	}

	return cmd
}
