package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.ContainerName == "" {
		errs = append(errs, &ValidationError{
			Field:   "container_name",
			Value:   cfg.ContainerName,
			Message: "must not be empty",
		})
	}

	switch cfg.Runtime {
	case RuntimeAuto, RuntimeDocker, RuntimePodman:
	default:
		errs = append(errs, &ValidationError{
			Field:   "runtime",
			Value:   cfg.Runtime,
			Message: "must be auto, docker or podman",
		})
	}

	switch cfg.Image.Mode {
	case ImagePull, ImageBuild:
	default:
		errs = append(errs, &ValidationError{
			Field:   "image.mode",
			Value:   cfg.Image.Mode,
			Message: "must be pull or build",
		})
	}

	settle, err := cfg.SettleDuration()
	if err != nil {
		errs = append(errs, &ValidationError{
			Field:   "readiness.settle",
			Value:   cfg.Readiness.Settle,
			Message: "must be a valid duration",
		})
	} else if settle <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "readiness.settle",
			Value:   cfg.Readiness.Settle,
			Message: "must be positive",
		})
	}

	timeout, err := cfg.ReadyTimeoutDuration()
	if err != nil {
		errs = append(errs, &ValidationError{
			Field:   "readiness.timeout",
			Value:   cfg.Readiness.Timeout,
			Message: "must be a valid duration",
		})
	} else if settle > 0 && timeout < settle {
		errs = append(errs, &ValidationError{
			Field:   "readiness.timeout",
			Value:   cfg.Readiness.Timeout,
			Message: "must not be shorter than the settle floor",
		})
	}

	if interval, err := cfg.PollIntervalDuration(); err != nil || interval <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "readiness.poll_interval",
			Value:   cfg.Readiness.PollInterval,
			Message: "must be a positive duration",
		})
	}

	if cfg.LogTail < 1 {
		errs = append(errs, &ValidationError{
			Field:   "log_tail",
			Value:   cfg.LogTail,
			Message: "must be at least 1",
		})
	}

	return errors.Join(errs...)
}
