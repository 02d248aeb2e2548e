package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RuntimeKind selects the container runtime binary.
type RuntimeKind string

const (
	// RuntimeAuto probes for docker first, then podman.
	RuntimeAuto   RuntimeKind = "auto"
	RuntimeDocker RuntimeKind = "docker"
	RuntimePodman RuntimeKind = "podman"
)

// ImageMode selects how the workload image is acquired during a deploy.
type ImageMode string

const (
	// ImagePull fetches the image from the registry.
	ImagePull ImageMode = "pull"

	// ImageBuild builds the image locally from the compose definition.
	ImageBuild ImageMode = "build"
)

// ImageConfig holds image acquisition settings.
type ImageConfig struct {
	// Mode is "pull" or "build"
	Mode ImageMode `yaml:"mode"`

	// NoCache disables layer caching for local builds
	NoCache bool `yaml:"no_cache"`
}

// ReadinessConfig controls how long a deploy waits for the fresh
// container to come up before verifying it.
type ReadinessConfig struct {
	// Settle is the minimum wait after the runtime reports the
	// container started. Deploy and restart never return earlier.
	Settle string `yaml:"settle"`

	// Timeout bounds health polling after the settle floor has elapsed.
	Timeout string `yaml:"timeout"`

	// PollInterval is the delay between health probes.
	PollInterval string `yaml:"poll_interval"`
}

// Config is the full scraperctl configuration. The managed container
// name is explicit configuration, not a hidden constant, so several
// independently configured instances can coexist.
type Config struct {
	// ContainerName is the stable name of the managed workload
	ContainerName string `yaml:"container_name"`

	// Runtime selects the runtime binary: "auto", "docker" or "podman"
	Runtime RuntimeKind `yaml:"runtime"`

	// ComposeFile overrides compose's own file discovery when non-empty
	ComposeFile string `yaml:"compose_file"`

	// ProjectDir is where runtime commands run and relative required
	// files resolve. Set from the -C flag, never from the file.
	ProjectDir string `yaml:"-"`

	Image     ImageConfig     `yaml:"image"`
	Readiness ReadinessConfig `yaml:"readiness"`

	// LogTail is the default number of log lines fetched for reports
	LogTail int `yaml:"log_tail"`

	// RequiredFiles must all exist before a deploy may touch the
	// running instance
	RequiredFiles []string `yaml:"required_files"`
}

// SettleDuration parses the readiness settle floor.
func (c *Config) SettleDuration() (time.Duration, error) {
	return time.ParseDuration(c.Readiness.Settle)
}

// ReadyTimeoutDuration parses the health polling timeout.
func (c *Config) ReadyTimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Readiness.Timeout)
}

// PollIntervalDuration parses the delay between health probes.
func (c *Config) PollIntervalDuration() (time.Duration, error) {
	return time.ParseDuration(c.Readiness.PollInterval)
}

// Load loads configuration for the given project directory.
// It applies defaults, then values from .scraperctl.yaml if present,
// then environment overrides, then validates the result.
func Load(projectDir string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(projectDir, ConfigFileName)
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	// Note: missing config file is not an error (use defaults)

	applyEnvOverrides(cfg)

	cfg.ProjectDir = projectDir

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
