package container

import "context"

// Runtime wraps the container runtime's CLI as individual operations.
// Each call maps to exactly one external process invocation; no retries
// happen at this layer. Retry policy, if any, belongs to the caller.
//
// Down and Restart treat an already-absent target as success so that
// teardown is idempotent. Every other operation reports absence through
// its return value (Lookup) or through ErrNotFound.
type Runtime interface {
	// Pull fetches the workload image from the registry.
	Pull(ctx context.Context) (string, error)

	// Build builds the workload image locally. When noCache is true the
	// build ignores layer caches.
	Build(ctx context.Context, noCache bool) (string, error)

	// Up starts the workload detached. The runtime assigns the managed
	// container name from the compose service definition.
	Up(ctx context.Context) error

	// Down stops and removes the workload. Succeeds when nothing is
	// running.
	Down(ctx context.Context) error

	// Restart restarts the named container. Succeeds when the container
	// is absent.
	Restart(ctx context.Context, name string) error

	// Lookup queries `ps` for the named container. Returns nil when no
	// container with that exact name exists; absence is not an error.
	Lookup(ctx context.Context, name string) (*ContainerInfo, error)

	// InspectHealth returns the healthcheck status of the named
	// container. Absent containers yield HealthUnavailable, containers
	// without a healthcheck yield HealthNone; neither is an error.
	InspectHealth(ctx context.Context, name string) (HealthState, error)

	// Logs returns up to tail lines of the container's recent output,
	// oldest first. A container with fewer lines returns what it has.
	Logs(ctx context.Context, name string, tail int) ([]string, error)

	// Stats takes a single non-streaming resource snapshot.
	Stats(ctx context.Context, name string) (*StatsSnapshot, error)

	// PruneVolumes removes dangling volumes. Best-effort cleanup; the
	// returned string is the runtime's own summary output.
	PruneVolumes(ctx context.Context) (string, error)
}
