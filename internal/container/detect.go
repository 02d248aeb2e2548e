package container

import (
	"errors"
	"os/exec"
)

// ErrNoRuntime is returned when no usable container runtime is found.
var ErrNoRuntime = errors.New("no container runtime found (need docker or podman with compose)")

// runtimeCandidates is the auto-detection probe order. Docker wins when
// both are installed since the compose files here target it.
var runtimeCandidates = []string{"docker", "podman"}

// probeRuntime reports whether a binary can serve lifecycle operations.
// Swapped out in tests.
var probeRuntime = runtimeUsable

// DetectRuntime returns the first installed runtime that can actually
// drive deployments: the binary must respond to `version` and ship the
// compose subcommand, because every up/down/build goes through
// `<runtime> compose`.
func DetectRuntime() (string, error) {
	for _, bin := range runtimeCandidates {
		if probeRuntime(bin) {
			return bin, nil
		}
	}
	return "", ErrNoRuntime
}

func runtimeUsable(bin string) bool {
	if _, err := exec.LookPath(bin); err != nil {
		return false
	}
	if err := exec.Command(bin, "version").Run(); err != nil {
		return false
	}
	return exec.Command(bin, "compose", "version").Run() == nil
}
