package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caribedata/scraperctl/internal/monitor"
)

// StatusOptions holds flags for the status command
type StatusOptions struct {
	JSON bool // Output as JSON instead of formatted text
}

// NewStatusCmd creates the status command
func NewStatusCmd(app *App) *cobra.Command {
	var opts StatusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the managed container's running and health state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showStatus(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON instead of formatted text")

	return cmd
}

func (a *App) showStatus(cmd *cobra.Command, opts StatusOptions) error {
	m, err := a.wireMonitor()
	if err != nil {
		return err
	}

	report, err := m.Status(cmd.Context())
	if err != nil {
		return err
	}

	if opts.JSON {
		return outputStatusJSON(cmd, report)
	}

	fmt.Fprint(cmd.OutOrStdout(), FormatStatus(report))
	return nil
}

// statusJSON is the machine-readable status shape.
type statusJSON struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Health string `json:"health"`
	Status string `json:"status,omitempty"`
	Image  string `json:"image,omitempty"`
}

func outputStatusJSON(cmd *cobra.Command, report *monitor.StatusReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(statusJSON{
		Name:   report.Name,
		State:  string(report.State),
		Health: string(report.Health),
		Status: report.Status,
		Image:  report.Image,
	})
}
