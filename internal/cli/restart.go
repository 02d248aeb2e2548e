package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRestartCmd creates the restart command
func NewRestartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart the container and confirm its state",
		Long: `Restart the managed container, wait one settle interval, then
re-query status to confirm the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runRestart(cmd)
		},
	}

	return cmd
}

func (a *App) runRestart(cmd *cobra.Command) error {
	m, err := a.wireMonitor()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Restarting...")

	report, err := m.Restart(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), FormatStatus(report))
	return nil
}
