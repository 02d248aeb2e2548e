package container

import "time"

// RunState is the container runtime's view of a container's lifecycle state.
type RunState string

const (
	// StateAbsent means no container with the managed name exists.
	StateAbsent RunState = "absent"

	StateCreated    RunState = "created"
	StateRunning    RunState = "running"
	StatePaused     RunState = "paused"
	StateRestarting RunState = "restarting"
	StateExited     RunState = "exited"
	StateDead       RunState = "dead"
)

// ParseRunState maps a `docker ps` state column value to a RunState.
// Unknown values pass through unchanged so the operator sees what the
// runtime actually reported.
func ParseRunState(s string) RunState {
	switch RunState(s) {
	case StateCreated, StateRunning, StatePaused, StateRestarting, StateExited, StateDead:
		return RunState(s)
	case "":
		return StateAbsent
	default:
		return RunState(s)
	}
}

// HealthState is the container's healthcheck status.
type HealthState string

const (
	HealthStarting  HealthState = "starting"
	HealthHealthy   HealthState = "healthy"
	HealthUnhealthy HealthState = "unhealthy"

	// HealthNone means the container exists but defines no healthcheck.
	HealthNone HealthState = "none"

	// HealthUnavailable means health could not be observed, typically
	// because the container is absent. This is an expected state, not
	// an error.
	HealthUnavailable HealthState = "unavailable"
)

// ContainerInfo is one row of `ps` output for the managed container.
type ContainerInfo struct {
	// Name is the container name (e.g., "sities-scraper")
	Name string

	// State is the lifecycle state column (running, exited, ...)
	State RunState

	// Status is the human-readable status column (e.g., "Up 3 hours (healthy)")
	Status string

	// Image is the image the container was created from
	Image string
}

// StatsSnapshot is a one-shot resource observation. It is never persisted;
// each query produces a fresh snapshot.
type StatsSnapshot struct {
	// CPUPercent is the CPU usage percentage at observation time
	CPUPercent float64

	// MemUsage is the raw memory usage column (e.g., "210MiB / 1.9GiB")
	MemUsage string

	// MemPercent is the memory usage percentage
	MemPercent float64

	// NetIO is the raw network I/O column (e.g., "1.2MB / 648kB")
	NetIO string

	// ObservedAt is when the snapshot was taken
	ObservedAt time.Time
}
