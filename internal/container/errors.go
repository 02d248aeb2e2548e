package container

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation targets a container that
// does not exist.
var ErrNotFound = errors.New("container not found")

// ErrRuntimeUnavailable is returned when the container runtime daemon
// cannot be reached at all.
var ErrRuntimeUnavailable = errors.New("container runtime unavailable")

// CommandError reports a runtime CLI invocation that exited non-zero.
// Stderr carries the runtime's own diagnostic text so the operator sees
// the original failure, not a paraphrase.
type CommandError struct {
	Op       string // operation name, e.g. "up", "logs"
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: exit %d", e.Op, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit %d: %s", e.Op, e.ExitCode, msg)
}

// Unwrap classifies the failure from the runtime's stderr so callers can
// match with errors.Is against the sentinels above.
func (e *CommandError) Unwrap() error {
	return classifyStderr(e.Stderr)
}

// classifyStderr maps well-known docker/podman diagnostics onto the
// error taxonomy. Returns nil for plain command failures.
func classifyStderr(stderr string) error {
	s := strings.ToLower(stderr)
	switch {
	case strings.Contains(s, "no such container"),
		strings.Contains(s, "no such object"),
		strings.Contains(s, "no such service"),
		strings.Contains(s, "no container with name"):
		return ErrNotFound
	case strings.Contains(s, "cannot connect to the docker daemon"),
		strings.Contains(s, "is the docker daemon running"),
		strings.Contains(s, "error connecting to podman"),
		strings.Contains(s, "connection refused"):
		return ErrRuntimeUnavailable
	}
	return nil
}
