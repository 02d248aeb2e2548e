package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command
func NewStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Take a one-shot resource snapshot of the container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showStats(cmd)
		},
	}

	return cmd
}

func (a *App) showStats(cmd *cobra.Command) error {
	m, err := a.wireMonitor()
	if err != nil {
		return err
	}

	snap, err := m.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), FormatStats(snap))
	return nil
}
