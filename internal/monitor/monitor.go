// Package monitor exposes the operator's read-and-control surface for
// the managed container: status, logs, resource stats, and the discrete
// restart/stop/start commands.
//
// Every command re-queries the runtime fresh; nothing is cached between
// invocations and no locks are taken. This is an operator-driven,
// low-frequency control surface, and the runtime itself is the sole
// arbiter of container state.
package monitor

import (
	"context"
	"time"

	"github.com/caribedata/scraperctl/internal/container"
)

// Monitor issues observation and control commands for one named
// workload container.
type Monitor struct {
	rt   container.Runtime
	name string

	// settle is the fixed wait between a restart and its confirming
	// status query
	settle time.Duration

	// tail is the default log line count for reports
	tail int

	sleep func(time.Duration)
}

// New creates a Monitor for the named container.
func New(rt container.Runtime, name string, settle time.Duration, tail int) *Monitor {
	return &Monitor{
		rt:     rt,
		name:   name,
		settle: settle,
		tail:   tail,
		sleep:  time.Sleep,
	}
}

// StatusReport is one observation of the managed container.
type StatusReport struct {
	Name   string
	State  container.RunState
	Health container.HealthState

	// Status is the runtime's human-readable status column, empty when
	// the container is absent
	Status string

	// Image is the image the container runs, empty when absent
	Image string
}

// Running reports whether the container was observed running.
func (r *StatusReport) Running() bool {
	return r.State == container.StateRunning
}

// Status queries presence and health. An absent container is an
// expected state, reported as absent/unavailable rather than an error.
func (m *Monitor) Status(ctx context.Context) (*StatusReport, error) {
	report := &StatusReport{
		Name:   m.name,
		State:  container.StateAbsent,
		Health: container.HealthUnavailable,
	}

	info, err := m.rt.Lookup(ctx, m.name)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return report, nil
	}

	report.State = info.State
	report.Status = info.Status
	report.Image = info.Image

	health, err := m.rt.InspectHealth(ctx, m.name)
	if err != nil {
		return nil, err
	}
	report.Health = health

	return report, nil
}

// Logs returns the last n lines of container output. n <= 0 falls back
// to the configured default tail.
func (m *Monitor) Logs(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		n = m.tail
	}
	return m.rt.Logs(ctx, m.name, n)
}

// Stats takes one non-streaming resource snapshot.
func (m *Monitor) Stats(ctx context.Context) (*container.StatsSnapshot, error) {
	return m.rt.Stats(ctx, m.name)
}

// Restart restarts the container, waits exactly one settle interval,
// then re-queries status to confirm. The settle wait happens whether or
// not the container was running before.
func (m *Monitor) Restart(ctx context.Context) (*StatusReport, error) {
	if err := m.rt.Restart(ctx, m.name); err != nil {
		return nil, err
	}
	m.sleep(m.settle)
	return m.Status(ctx)
}

// Stop passes through to the runtime's teardown. Idempotent: stopping
// an absent workload succeeds.
func (m *Monitor) Stop(ctx context.Context) error {
	return m.rt.Down(ctx)
}

// Start passes through to the runtime's detached start.
func (m *Monitor) Start(ctx context.Context) error {
	return m.rt.Up(ctx)
}

// Report bundles status, stats and recent logs for one human-readable
// overview.
type Report struct {
	Status *StatusReport

	// Stats is nil when the snapshot could not be taken (absent or
	// stopped container); the overview still renders without it.
	Stats *container.StatsSnapshot

	Logs []string
}

// Full composes status, a best-effort stats snapshot, and the default
// log tail into a single report.
func (m *Monitor) Full(ctx context.Context) (*Report, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Status: status}

	// Stats and logs only make sense when something exists to observe;
	// both are best-effort even then.
	if status.State != container.StateAbsent {
		if snap, err := m.Stats(ctx); err == nil {
			report.Stats = snap
		}
		if logs, err := m.Logs(ctx, 0); err == nil {
			report.Logs = logs
		}
	}

	return report, nil
}
