package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStopCmd creates the stop command
func NewStopCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop and remove the container",
		Long: `Tear down the managed container. Stopping an already-absent
container succeeds: teardown is idempotent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.wireMonitor()
			if err != nil {
				return err
			}
			if err := m.Stop(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Stopped.")
			return nil
		},
	}

	return cmd
}

// NewStartCmd creates the start command
func NewStartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the container detached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.wireMonitor()
			if err != nil {
				return err
			}
			if err := m.Start(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Started.")
			return nil
		},
	}

	return cmd
}
