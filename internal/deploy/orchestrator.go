// Package deploy sequences a full workload deployment: precondition
// guard, image acquisition, teardown of the previous instance, volume
// cleanup, fresh start, readiness wait and verification.
//
// The sequence is linear and auditable. Fatal failures abort the
// remaining steps; there is no automatic rollback and no retry — an
// operator re-invocation is the retry policy.
package deploy

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caribedata/scraperctl/internal/container"
	"github.com/caribedata/scraperctl/internal/envguard"
)

// Config holds orchestrator-specific configuration.
type Config struct {
	// ContainerName is the managed workload's stable container name
	ContainerName string

	// ProjectDir is where relative required files resolve
	ProjectDir string

	// RequiredFiles must exist before any destructive action runs
	RequiredFiles []string

	// Build selects local image build over registry pull
	Build bool

	// NoCache disables layer caching for local builds
	NoCache bool

	// Settle is the minimum wait after the runtime reports the
	// container started; Deploy never returns before it has elapsed
	Settle time.Duration

	// ReadyTimeout bounds health polling, settle floor included
	ReadyTimeout time.Duration

	// PollInterval is the delay between health probes
	PollInterval time.Duration

	// LogTail is how many log lines verification captures
	LogTail int
}

// Orchestrator runs the deploy sequence against a Runtime.
type Orchestrator struct {
	rt  container.Runtime
	cfg Config

	// sleep is swappable so tests observe delays instead of waiting
	sleep func(time.Duration)

	// out receives step progress lines
	out io.Writer
}

// New creates an Orchestrator. out may be nil to suppress progress
// output.
func New(rt container.Runtime, cfg Config, out io.Writer) *Orchestrator {
	if out == nil {
		out = io.Discard
	}
	return &Orchestrator{
		rt:    rt,
		cfg:   cfg,
		sleep: time.Sleep,
		out:   out,
	}
}

// Deploy runs the fixed step sequence and returns its ordered record.
// The returned Result is always complete: steps that never ran are
// tagged skipped.
func (o *Orchestrator) Deploy(ctx context.Context) *Result {
	res := &Result{
		State:  container.StateAbsent,
		Health: container.HealthUnavailable,
	}

	// Step 1: guard. A missing file aborts before anything destructive
	// happens, so the previous instance keeps serving — and the result
	// reports it still running, not some fabricated state.
	if err := o.step(res, StepGuard, func() (string, error) {
		return "", o.verifyEnvironment()
	}); err != nil {
		o.abort(res, StepImage, err)
		o.observe(ctx, res)
		return res
	}

	// Step 2: acquire the image. Failure leaves the old instance
	// untouched and still serving.
	if err := o.step(res, StepImage, func() (string, error) {
		return o.acquireImage(ctx)
	}); err != nil {
		o.abort(res, StepDown, err)
		o.observe(ctx, res)
		return res
	}

	// Step 3: tear down the previous instance. The runtime layer treats
	// an absent instance as success, so this is idempotent.
	if err := o.step(res, StepDown, func() (string, error) {
		return "", o.rt.Down(ctx)
	}); err != nil {
		o.abort(res, StepPrune, err)
		o.observe(ctx, res)
		return res
	}

	// Step 4: prune orphaned volumes. Best-effort cleanup; a failure is
	// recorded but never aborts the sequence.
	_ = o.step(res, StepPrune, func() (string, error) {
		return o.rt.PruneVolumes(ctx)
	})

	// Step 5: start the fresh instance. Failing here after the old one
	// is gone means nothing is serving, which the result surfaces as
	// service-down rather than a plain step failure.
	if err := o.step(res, StepUp, func() (string, error) {
		return "", o.rt.Up(ctx)
	}); err != nil {
		res.ServiceDown = true
		o.abort(res, StepReady, err)
		o.observe(ctx, res)
		return res
	}

	// Step 6: readiness. A settle floor always elapses first, then
	// health is polled up to the timeout. Not ready only downgrades the
	// result; verification still runs and reports what it sees.
	if err := o.step(res, StepReady, func() (string, error) {
		return o.awaitReady(ctx)
	}); err != nil {
		res.Degraded = true
	}

	// Step 7: verify. State and logs attach to the result regardless of
	// the verdict; an unconfirmed container downgrades, never aborts.
	if err := o.step(res, StepVerify, func() (string, error) {
		return o.verify(ctx, res)
	}); err != nil {
		res.Degraded = true
	}

	return res
}

// step runs fn, records its outcome on the result, and echoes a
// progress line. The returned error is fn's own error, so callers
// decide fatality.
func (o *Orchestrator) step(res *Result, step Step, fn func() (string, error)) error {
	start := time.Now()
	detail, err := fn()
	sr := StepResult{
		Step:     step,
		Status:   StatusSuccess,
		Detail:   detail,
		Duration: time.Since(start),
	}
	if err != nil {
		sr.Status = StatusFailed
		sr.Detail = err.Error()
	}
	res.Steps = append(res.Steps, sr)

	if err != nil {
		fmt.Fprintf(o.out, "✗ %s: %v\n", step, err)
	} else {
		fmt.Fprintf(o.out, "✓ %s\n", step)
	}
	return err
}

// abort records the fatal error and tags every step from firstSkipped
// onward as skipped, keeping the result's step record complete.
func (o *Orchestrator) abort(res *Result, firstSkipped Step, err error) {
	res.Err = err

	skipping := false
	for _, s := range steps {
		if s == firstSkipped {
			skipping = true
		}
		if skipping {
			res.Steps = append(res.Steps, StepResult{Step: s, Status: StatusSkipped})
		}
	}
}

func (o *Orchestrator) verifyEnvironment() error {
	reqs := make([]envguard.Requirement, 0, len(o.cfg.RequiredFiles))
	for _, path := range o.cfg.RequiredFiles {
		reqs = append(reqs, envguard.Requirement{Path: path})
	}
	return envguard.Verify(o.cfg.ProjectDir, reqs)
}

func (o *Orchestrator) acquireImage(ctx context.Context) (string, error) {
	if o.cfg.Build {
		out, err := o.rt.Build(ctx, o.cfg.NoCache)
		return lastLine(out), err
	}
	out, err := o.rt.Pull(ctx)
	return lastLine(out), err
}

// awaitReady sleeps the settle floor, then polls container health until
// it reports healthy or the timeout budget is spent. Containers without
// a healthcheck count as ready once they are running past the floor.
func (o *Orchestrator) awaitReady(ctx context.Context) (string, error) {
	o.sleep(o.cfg.Settle)

	attempts := 0
	if o.cfg.PollInterval > 0 {
		attempts = int((o.cfg.ReadyTimeout - o.cfg.Settle) / o.cfg.PollInterval)
	}

	var health container.HealthState
	for i := 0; ; i++ {
		var err error
		health, err = o.rt.InspectHealth(ctx, o.cfg.ContainerName)
		if err != nil {
			return "", err
		}

		switch health {
		case container.HealthHealthy:
			return "healthy", nil
		case container.HealthNone:
			info, err := o.rt.Lookup(ctx, o.cfg.ContainerName)
			if err != nil {
				return "", err
			}
			if info != nil && info.State == container.StateRunning {
				return "running (no healthcheck)", nil
			}
		}

		if i >= attempts {
			break
		}
		o.sleep(o.cfg.PollInterval)
	}

	return "", fmt.Errorf("container %s not ready after %s (health: %s)",
		o.cfg.ContainerName, o.cfg.ReadyTimeout, health)
}

// verify observes the final container state and captures the log tail.
// Both attach to the result whatever the verdict.
func (o *Orchestrator) verify(ctx context.Context, res *Result) (string, error) {
	o.observe(ctx, res)

	logs, err := o.rt.Logs(ctx, o.cfg.ContainerName, o.cfg.LogTail)
	if err == nil {
		res.Logs = logs
	}

	if res.State != container.StateRunning {
		return "", fmt.Errorf("container %s is %s, expected running",
			o.cfg.ContainerName, res.State)
	}
	return fmt.Sprintf("%s (%s)", res.State, res.Health), nil
}

// observe refreshes the result's state and health from the runtime.
// Lookup and inspect are read-only, so this is safe on failure paths.
func (o *Orchestrator) observe(ctx context.Context, res *Result) {
	res.State = container.StateAbsent
	res.Health = container.HealthUnavailable

	info, err := o.rt.Lookup(ctx, o.cfg.ContainerName)
	if err != nil || info == nil {
		return
	}
	res.State = info.State

	if health, err := o.rt.InspectHealth(ctx, o.cfg.ContainerName); err == nil {
		res.Health = health
	}
}

// lastLine keeps step detail to the runtime's final summary line
// instead of a full build transcript.
func lastLine(out string) string {
	out = strings.TrimSpace(out)
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	}
	return strings.TrimSpace(out)
}
