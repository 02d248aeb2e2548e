package cli

import (
	"io"

	"github.com/caribedata/scraperctl/internal/config"
	"github.com/caribedata/scraperctl/internal/deploy"
	"github.com/caribedata/scraperctl/internal/monitor"
)

// wireMonitor assembles a Monitor from the loaded configuration.
// Durations were validated at load time, so the accessors cannot fail
// here.
func (a *App) wireMonitor() (*monitor.Monitor, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	rt, err := a.newRuntime(cfg)
	if err != nil {
		return nil, err
	}

	settle, err := cfg.SettleDuration()
	if err != nil {
		return nil, err
	}

	return monitor.New(rt, cfg.ContainerName, settle, cfg.LogTail), nil
}

// wireOrchestrator assembles a deploy Orchestrator. Step progress goes
// to out.
func (a *App) wireOrchestrator(out io.Writer, noCache bool, mode config.ImageMode) (*deploy.Orchestrator, *config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if mode != "" {
		cfg.Image.Mode = mode
	}
	if noCache {
		cfg.Image.NoCache = true
	}

	rt, err := a.newRuntime(cfg)
	if err != nil {
		return nil, nil, err
	}

	settle, err := cfg.SettleDuration()
	if err != nil {
		return nil, nil, err
	}
	timeout, err := cfg.ReadyTimeoutDuration()
	if err != nil {
		return nil, nil, err
	}
	interval, err := cfg.PollIntervalDuration()
	if err != nil {
		return nil, nil, err
	}

	o := deploy.New(rt, deploy.Config{
		ContainerName: cfg.ContainerName,
		ProjectDir:    cfg.ProjectDir,
		RequiredFiles: cfg.RequiredFiles,
		Build:         cfg.Image.Mode == config.ImageBuild,
		NoCache:       cfg.Image.NoCache,
		Settle:        settle,
		ReadyTimeout:  timeout,
		PollInterval:  interval,
		LogTail:       cfg.LogTail,
	}, out)

	return o, cfg, nil
}
