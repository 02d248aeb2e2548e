package container

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CLIRuntime implements Runtime by invoking the docker/podman CLI.
// Lifecycle operations go through `compose` so the workload's service
// definition stays the single source of truth for ports, volumes and
// environment; observation operations address the container by name.
type CLIRuntime struct {
	runtime     string // "docker" or "podman"
	composeFile string // optional -f argument for compose subcommands
	projectDir  string // working directory for every invocation
}

// NewCLIRuntime creates a Runtime using the specified runtime binary.
// Use DetectRuntime() to find an available runtime first. composeFile
// may be empty, in which case compose uses its own file discovery.
func NewCLIRuntime(runtime, composeFile, projectDir string) *CLIRuntime {
	return &CLIRuntime{
		runtime:     runtime,
		composeFile: composeFile,
		projectDir:  projectDir,
	}
}

// run executes one runtime CLI invocation and returns its stdout.
// Non-zero exits become *CommandError carrying the stderr diagnostic;
// failures to launch the binary at all are runtime-unavailable.
func (r *CLIRuntime) run(ctx context.Context, op string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.runtime, args...)
	cmd.Dir = r.projectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &CommandError{
				Op:       op,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("%s: %w: %v", op, ErrRuntimeUnavailable, err)
	}

	return stdout.String(), nil
}

// compose prefixes args with the compose subcommand and file selection.
func (r *CLIRuntime) compose(args ...string) []string {
	out := []string{"compose"}
	if r.composeFile != "" {
		out = append(out, "-f", r.composeFile)
	}
	return append(out, args...)
}

// Pull fetches the service images defined in the compose file.
func (r *CLIRuntime) Pull(ctx context.Context) (string, error) {
	return r.run(ctx, "pull", r.compose("pull")...)
}

// Build builds the service images locally.
func (r *CLIRuntime) Build(ctx context.Context, noCache bool) (string, error) {
	args := r.compose("build")
	if noCache {
		args = append(args, "--no-cache")
	}
	return r.run(ctx, "build", args...)
}

// Up starts the workload detached.
func (r *CLIRuntime) Up(ctx context.Context) error {
	_, err := r.run(ctx, "up", r.compose("up", "-d")...)
	return err
}

// Down stops and removes the workload. An already-absent workload is a
// success: teardown is idempotent.
func (r *CLIRuntime) Down(ctx context.Context) error {
	_, err := r.run(ctx, "down", r.compose("down")...)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Restart restarts the named container. Absence is non-fatal.
func (r *CLIRuntime) Restart(ctx context.Context, name string) error {
	_, err := r.run(ctx, "restart", "restart", name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// psFormat selects tab-separated columns so parsing stays trivial.
const psFormat = "{{.Names}}\t{{.State}}\t{{.Status}}\t{{.Image}}"

// Lookup queries ps for the named container. The name filter is
// anchored because docker matches names by substring: filtering for
// "scraper" would also match "scraper-old".
func (r *CLIRuntime) Lookup(ctx context.Context, name string) (*ContainerInfo, error) {
	out, err := r.run(ctx, "ps",
		"ps", "-a",
		"--filter", "name=^"+name+"$",
		"--format", psFormat,
	)
	if err != nil {
		return nil, err
	}
	return parsePS(out, name), nil
}

// parsePS extracts the row for the exactly-named container from
// formatted ps output. Returns nil when no row matches.
func parsePS(out, name string) *ContainerInfo {
	for _, line := range splitLines(out) {
		cols := strings.SplitN(line, "\t", 4)
		if len(cols) < 2 || cols[0] != name {
			continue
		}
		info := &ContainerInfo{
			Name:  cols[0],
			State: ParseRunState(strings.ToLower(cols[1])),
		}
		if len(cols) > 2 {
			info.Status = cols[2]
		}
		if len(cols) > 3 {
			info.Image = cols[3]
		}
		return info
	}
	return nil
}

// healthFormat falls back to "none" for containers without a
// healthcheck, where .State.Health is nil.
const healthFormat = "{{if .State.Health}}{{.State.Health.Status}}{{else}}none{{end}}"

// InspectHealth returns the healthcheck status of the named container.
// An absent container reports HealthUnavailable, not an error.
func (r *CLIRuntime) InspectHealth(ctx context.Context, name string) (HealthState, error) {
	out, err := r.run(ctx, "inspect", "inspect", "--format", healthFormat, name)
	if errors.Is(err, ErrNotFound) {
		return HealthUnavailable, nil
	}
	if err != nil {
		return HealthUnavailable, err
	}

	switch s := HealthState(strings.TrimSpace(out)); s {
	case HealthStarting, HealthHealthy, HealthUnhealthy, HealthNone:
		return s, nil
	default:
		return HealthNone, nil
	}
}

// Logs returns up to tail lines of recent container output, oldest
// first. The runtime interleaves the container's stdout and stderr, so
// both streams are captured together.
func (r *CLIRuntime) Logs(ctx context.Context, name string, tail int) ([]string, error) {
	cmd := exec.CommandContext(ctx, r.runtime, "logs", "--tail", strconv.Itoa(tail), name)
	cmd.Dir = r.projectDir

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CommandError{
				Op:       "logs",
				ExitCode: exitErr.ExitCode(),
				Stderr:   string(out),
			}
		}
		return nil, fmt.Errorf("logs: %w: %v", ErrRuntimeUnavailable, err)
	}

	return splitLines(string(out)), nil
}

// statsFormat mirrors psFormat: tab-separated columns, one snapshot row.
const statsFormat = "{{.CPUPerc}}\t{{.MemUsage}}\t{{.MemPerc}}\t{{.NetIO}}"

// Stats takes one non-streaming resource snapshot of the named container.
func (r *CLIRuntime) Stats(ctx context.Context, name string) (*StatsSnapshot, error) {
	out, err := r.run(ctx, "stats",
		"stats", "--no-stream",
		"--format", statsFormat,
		name,
	)
	if err != nil {
		return nil, err
	}

	snap, err := parseStats(out)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return snap, nil
}

// parseStats converts one formatted stats row into a snapshot.
func parseStats(out string) (*StatsSnapshot, error) {
	lines := splitLines(out)
	if len(lines) == 0 {
		return nil, errors.New("empty stats output")
	}

	cols := strings.SplitN(lines[0], "\t", 4)
	if len(cols) < 4 {
		return nil, fmt.Errorf("malformed stats row: %q", lines[0])
	}

	cpu, err := parsePercent(cols[0])
	if err != nil {
		return nil, err
	}
	mem, err := parsePercent(cols[2])
	if err != nil {
		return nil, err
	}

	return &StatsSnapshot{
		CPUPercent: cpu,
		MemUsage:   cols[1],
		MemPercent: mem,
		NetIO:      cols[3],
		ObservedAt: time.Now(),
	}, nil
}

// parsePercent parses values like "12.34%". Podman omits the sign on
// some columns, so a bare number is accepted too.
func parsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad percentage %q", s)
	}
	return v, nil
}

// PruneVolumes removes dangling volumes. The caller treats failures as
// best-effort, so only the runtime's own summary text is returned.
func (r *CLIRuntime) PruneVolumes(ctx context.Context) (string, error) {
	return r.run(ctx, "volume prune", "volume", "prune", "-f")
}

// splitLines splits command output into trimmed lines, dropping the
// trailing empty line that a final newline produces.
func splitLines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// Verify CLIRuntime implements Runtime interface
var _ Runtime = (*CLIRuntime)(nil)
