package deploy

import (
	"time"

	"github.com/caribedata/scraperctl/internal/container"
)

// Step identifies one stage of the deploy sequence.
type Step string

const (
	StepGuard  Step = "guard"
	StepImage  Step = "image"
	StepDown   Step = "down"
	StepPrune  Step = "prune"
	StepUp     Step = "up"
	StepReady  Step = "readiness"
	StepVerify Step = "verify"
)

// steps is the fixed deploy order. Every result records all of them,
// tagged success, failed or skipped, so an aborted run still shows
// which stages never ran.
var steps = []Step{StepGuard, StepImage, StepDown, StepPrune, StepUp, StepReady, StepVerify}

// StepStatus tags the outcome of a single step.
type StepStatus string

const (
	StatusSuccess StepStatus = "success"
	StatusFailed  StepStatus = "failed"
	StatusSkipped StepStatus = "skipped"
)

// StepResult is the recorded outcome of one deploy step.
type StepResult struct {
	Step     Step
	Status   StepStatus
	Detail   string // raw diagnostic or summary text for the operator
	Duration time.Duration
}

// Result is the ordered record of one deploy run plus the finally
// observed container state. There is no rollback: a failed run reports
// exactly where the sequence stopped and what is (or is not) running.
type Result struct {
	Steps []StepResult

	// State and Health are the observed container state after the run,
	// whatever the outcome.
	State  container.RunState
	Health container.HealthState

	// Logs is the captured tail of the fresh container's output.
	Logs []string

	// ServiceDown is set when the old instance was removed and the new
	// one failed to start: nothing is serving and an operator must act.
	ServiceDown bool

	// Degraded is set when the deploy itself succeeded but verification
	// could not confirm a healthy running container.
	Degraded bool

	// Err is the fatal error that aborted the sequence, nil otherwise.
	Err error
}

// OK reports whether the deploy completed and verified cleanly.
func (r *Result) OK() bool {
	return r.Err == nil && !r.Degraded
}

// StepOutcome returns the recorded result for a step, or nil if the
// step was never recorded.
func (r *Result) StepOutcome(step Step) *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Step == step {
			return &r.Steps[i]
		}
	}
	return nil
}
