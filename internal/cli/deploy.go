package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caribedata/scraperctl/internal/config"
)

// DeployOptions holds flags for the deploy command
type DeployOptions struct {
	NoCache bool // Rebuild the image without layer caches
	Pull    bool // Force registry pull over the configured mode
	Build   bool // Force local build over the configured mode
}

// NewDeployCmd creates the deploy command
func NewDeployCmd(app *App) *cobra.Command {
	var opts DeployOptions

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a fresh instance of the scraper container",
		Long: `Run the full deployment sequence: verify required files, acquire
the image, tear down the previous instance, prune orphaned volumes,
start the new instance, wait for readiness, and verify the result.

There is no automatic rollback. If the new instance fails to start
after the old one was removed, the result reports the service as down
and an operator must redeploy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runDeploy(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Build the image without layer caches")
	cmd.Flags().BoolVar(&opts.Pull, "pull", false, "Pull the image from the registry")
	cmd.Flags().BoolVar(&opts.Build, "build", false, "Build the image locally")
	cmd.MarkFlagsMutuallyExclusive("pull", "build")

	return cmd
}

func (a *App) runDeploy(cmd *cobra.Command, opts DeployOptions) error {
	var mode config.ImageMode
	if opts.Pull {
		mode = config.ImagePull
	}
	if opts.Build {
		mode = config.ImageBuild
	}

	out := cmd.OutOrStdout()
	orch, cfg, err := a.wireOrchestrator(out, opts.NoCache, mode)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Deploying %s\n", cfg.ContainerName)

	res := orch.Deploy(cmd.Context())
	fmt.Fprint(out, FormatDeployResult(res))

	if res.Err != nil {
		if res.ServiceDown {
			return fmt.Errorf("SERVICE DOWN: old instance removed, new instance failed to start: %w", res.Err)
		}
		return fmt.Errorf("deploy aborted: %w", res.Err)
	}
	return nil
}
