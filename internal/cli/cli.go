package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caribedata/scraperctl/internal/config"
	"github.com/caribedata/scraperctl/internal/container"
)

// VersionInfo carries build-time version metadata.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Persistent flags
	projectDir   string
	nameOverride string
	verbose      bool

	// newRuntime builds the Runtime for a loaded config. Swappable so
	// command tests can substitute a fake.
	newRuntime func(cfg *config.Config) (container.Runtime, error)

	// Version information
	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{
		newRuntime: defaultRuntime,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "scraperctl",
		Short: "Operational control plane for the scraper container",
		Long: `scraperctl deploys and supervises the long-running scraping
workload as a single managed container: deploy a fresh image, inspect
health and resource usage, tail logs, and restart or stop the instance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// Errors are silenced up the stack, so point the user at
			// the command list here.
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		},
	}

	a.rootCmd.PersistentFlags().StringVarP(&a.projectDir, "project", "C", ".",
		"Project directory containing the compose file and secrets")
	a.rootCmd.PersistentFlags().StringVar(&a.nameOverride, "name", "",
		"Override the managed container name")
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")

	a.rootCmd.AddCommand(
		NewDeployCmd(a),
		NewStatusCmd(a),
		NewLogsCmd(a),
		NewStatsCmd(a),
		NewRestartCmd(a),
		NewStopCmd(a),
		NewStartCmd(a),
		NewFullCmd(a),
		NewWatchCmd(a),
		NewVersionCmd(a),
	)
}

// loadConfig loads the project configuration and applies CLI overrides.
func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.projectDir)
	if err != nil {
		return nil, err
	}
	if a.nameOverride != "" {
		cfg.ContainerName = a.nameOverride
	}
	return cfg, nil
}

// defaultRuntime resolves the configured runtime binary, probing for an
// available one when set to auto.
func defaultRuntime(cfg *config.Config) (container.Runtime, error) {
	bin := string(cfg.Runtime)
	if cfg.Runtime == config.RuntimeAuto {
		detected, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		bin = detected
	}
	return container.NewCLIRuntime(bin, cfg.ComposeFile, cfg.ProjectDir), nil
}
