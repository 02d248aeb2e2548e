package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribedata/scraperctl/internal/config"
	"github.com/caribedata/scraperctl/internal/container"
)

// fakeRuntime is a scripted Runtime for command tests.
type fakeRuntime struct {
	calls []string

	info     *container.ContainerInfo
	health   container.HealthState
	logs     []string
	logsTail int
	stats    *container.StatsSnapshot
	statsErr error
	upErr    error
}

func (f *fakeRuntime) Pull(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "pull")
	return "", nil
}

func (f *fakeRuntime) Build(ctx context.Context, noCache bool) (string, error) {
	f.calls = append(f.calls, "build")
	return "", nil
}

func (f *fakeRuntime) Up(ctx context.Context) error {
	f.calls = append(f.calls, "up")
	return f.upErr
}

func (f *fakeRuntime) Down(ctx context.Context) error {
	f.calls = append(f.calls, "down")
	return nil
}

func (f *fakeRuntime) Restart(ctx context.Context, name string) error {
	f.calls = append(f.calls, "restart")
	return nil
}

func (f *fakeRuntime) Lookup(ctx context.Context, name string) (*container.ContainerInfo, error) {
	f.calls = append(f.calls, "lookup")
	return f.info, nil
}

func (f *fakeRuntime) InspectHealth(ctx context.Context, name string) (container.HealthState, error) {
	f.calls = append(f.calls, "inspect")
	if f.health == "" {
		return container.HealthUnavailable, nil
	}
	return f.health, nil
}

func (f *fakeRuntime) Logs(ctx context.Context, name string, tail int) ([]string, error) {
	f.calls = append(f.calls, "logs")
	f.logsTail = tail
	return f.logs, nil
}

func (f *fakeRuntime) Stats(ctx context.Context, name string) (*container.StatsSnapshot, error) {
	f.calls = append(f.calls, "stats")
	return f.stats, f.statsErr
}

func (f *fakeRuntime) PruneVolumes(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "prune")
	return "", nil
}

// runCommand executes the app against a fake runtime and a temp project
// dir, returning combined output.
func runCommand(t *testing.T, rt *fakeRuntime, projectDir string, args ...string) (string, error) {
	t.Helper()

	app := New()
	app.newRuntime = func(cfg *config.Config) (container.Runtime, error) {
		return rt, nil
	}

	var buf bytes.Buffer
	app.rootCmd.SetOut(&buf)
	app.rootCmd.SetErr(&buf)
	app.rootCmd.SetArgs(append([]string{"-C", projectDir}, args...))

	err := app.Execute()
	return buf.String(), err
}

// writeTestConfig drops a config with near-zero waits so deploy tests
// don't sleep for real.
func writeTestConfig(t *testing.T, dir string) {
	t.Helper()
	content := `
readiness:
  settle: 1ms
  timeout: 2ms
  poll_interval: 1ms
required_files: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644))
}

func TestCommandsRegistered(t *testing.T) {
	app := New()

	want := []string{"deploy", "status", "logs", "stats", "restart", "stop", "start", "full", "watch", "version"}
	got := map[string]bool{}
	for _, c := range app.rootCmd.Commands() {
		got[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, got[name], "command %s not registered", name)
	}
}

func TestUnknownCommandPrintsUsage(t *testing.T) {
	rt := &fakeRuntime{}

	out, err := runCommand(t, rt, t.TempDir(), "redeploy")
	require.Error(t, err)

	assert.Contains(t, err.Error(), `unknown command "redeploy"`)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
	assert.Empty(t, rt.calls)
}

func TestStatusCommand_Absent(t *testing.T) {
	out, err := runCommand(t, &fakeRuntime{}, t.TempDir(), "status")
	require.NoError(t, err)

	assert.Contains(t, out, "absent")
	assert.Contains(t, out, "unavailable")
}

func TestStatusCommand_JSON(t *testing.T) {
	rt := &fakeRuntime{
		info:   &container.ContainerInfo{Name: "sities-scraper", State: container.StateRunning},
		health: container.HealthHealthy,
	}

	out, err := runCommand(t, rt, t.TempDir(), "status", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"state": "running"`)
	assert.Contains(t, out, `"health": "healthy"`)
}

func TestStatusCommand_NameOverride(t *testing.T) {
	rt := &fakeRuntime{}
	out, err := runCommand(t, rt, t.TempDir(), "--name", "reviews-scraper", "status")
	require.NoError(t, err)

	assert.Contains(t, out, "reviews-scraper")
}

func TestLogsCommand_DefaultAndExplicitCount(t *testing.T) {
	rt := &fakeRuntime{logs: []string{"first", "second"}}

	out, err := runCommand(t, rt, t.TempDir(), "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "first\nsecond\n")
	assert.Equal(t, config.DefaultLogTail, rt.logsTail)

	_, err = runCommand(t, rt, t.TempDir(), "logs", "200")
	require.NoError(t, err)
	assert.Equal(t, 200, rt.logsTail)
}

func TestLogsCommand_RejectsBadCount(t *testing.T) {
	_, err := runCommand(t, &fakeRuntime{}, t.TempDir(), "logs", "many")
	assert.Error(t, err)

	_, err = runCommand(t, &fakeRuntime{}, t.TempDir(), "logs", "0")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	rt := &fakeRuntime{
		stats: &container.StatsSnapshot{CPUPercent: 3.17, MemUsage: "210MiB / 1.9GiB", MemPercent: 10.5},
	}

	out, err := runCommand(t, rt, t.TempDir(), "stats")
	require.NoError(t, err)

	assert.Contains(t, out, "3.17%")
	assert.Contains(t, out, "210MiB / 1.9GiB")
}

func TestRestartCommand(t *testing.T) {
	rt := &fakeRuntime{
		info:   &container.ContainerInfo{Name: "sities-scraper", State: container.StateRunning},
		health: container.HealthStarting,
	}

	dir := t.TempDir()
	writeTestConfig(t, dir)

	out, err := runCommand(t, rt, dir, "restart")
	require.NoError(t, err)

	assert.Contains(t, out, "Restarting")
	assert.Contains(t, out, "running")
	assert.Contains(t, rt.calls, "restart")
}

func TestStopAndStartCommands(t *testing.T) {
	rt := &fakeRuntime{}

	out, err := runCommand(t, rt, t.TempDir(), "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped.")

	out, err = runCommand(t, rt, t.TempDir(), "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started.")
}

func TestDeployCommand_Success(t *testing.T) {
	rt := &fakeRuntime{
		info:   &container.ContainerInfo{Name: "sities-scraper", State: container.StateRunning},
		health: container.HealthHealthy,
		logs:   []string{"scraper up"},
	}

	dir := t.TempDir()
	writeTestConfig(t, dir)

	out, err := runCommand(t, rt, dir, "deploy")
	require.NoError(t, err)

	assert.Contains(t, out, "Deploy complete")
	assert.Contains(t, out, "scraper up")
	assert.Contains(t, rt.calls, "build")
	assert.Contains(t, rt.calls, "down")
	assert.Contains(t, rt.calls, "up")
}

func TestDeployCommand_GuardFailure(t *testing.T) {
	rt := &fakeRuntime{}

	// Default config requires credential files that don't exist here.
	dir := t.TempDir()

	_, err := runCommand(t, rt, dir, "deploy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required file missing")

	// Nothing destructive may have run.
	for _, call := range []string{"pull", "build", "down", "prune", "up"} {
		assert.NotContains(t, rt.calls, call)
	}
}

func TestDeployCommand_ServiceDownSurfaced(t *testing.T) {
	rt := &fakeRuntime{upErr: errors.New("no space left on device")}

	dir := t.TempDir()
	writeTestConfig(t, dir)

	out, err := runCommand(t, rt, dir, "deploy")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "SERVICE DOWN")
	assert.Contains(t, out, "SERVICE DOWN")
}

func TestDeployCommand_PullAndBuildExclusive(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir)

	_, err := runCommand(t, &fakeRuntime{}, dir, "deploy", "--pull", "--build")
	assert.Error(t, err)
}
