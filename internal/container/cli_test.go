package container

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCLIRuntime_ImplementsRuntimeInterface(t *testing.T) {
	var _ Runtime = (*CLIRuntime)(nil)
}

func TestCLIRuntime_ComposeArgs(t *testing.T) {
	r := NewCLIRuntime("docker", "", "/srv/scraper")
	got := r.compose("up", "-d")
	want := []string{"compose", "up", "-d"}
	if len(got) != len(want) {
		t.Fatalf("compose args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("compose args[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	r = NewCLIRuntime("docker", "docker-compose.prod.yml", "/srv/scraper")
	got = r.compose("down")
	if len(got) != 4 || got[1] != "-f" || got[2] != "docker-compose.prod.yml" {
		t.Errorf("compose with file = %v, want -f docker-compose.prod.yml", got)
	}
}

func TestParsePS(t *testing.T) {
	out := "sities-scraper\trunning\tUp 3 hours (healthy)\tsities-scraper:latest\n"

	info := parsePS(out, "sities-scraper")
	if info == nil {
		t.Fatal("parsePS returned nil for matching row")
	}
	if info.State != StateRunning {
		t.Errorf("State = %q, want running", info.State)
	}
	if info.Status != "Up 3 hours (healthy)" {
		t.Errorf("Status = %q", info.Status)
	}
	if info.Image != "sities-scraper:latest" {
		t.Errorf("Image = %q", info.Image)
	}
}

func TestParsePS_AbsentContainer(t *testing.T) {
	if info := parsePS("", "sities-scraper"); info != nil {
		t.Errorf("parsePS on empty output = %+v, want nil", info)
	}
}

func TestParsePS_IgnoresSubstringMatches(t *testing.T) {
	// A substring name filter can slip sibling containers into the
	// output; only the exact name may match.
	out := "sities-scraper-old\texited\tExited (0) 2 days ago\told:latest\n" +
		"sities-scraper\trunning\tUp 5 minutes\tsities-scraper:latest\n"

	info := parsePS(out, "sities-scraper")
	if info == nil {
		t.Fatal("parsePS returned nil")
	}
	if info.State != StateRunning {
		t.Errorf("State = %q, want running (matched wrong row?)", info.State)
	}
}

func TestParseRunState(t *testing.T) {
	cases := map[string]RunState{
		"running": StateRunning,
		"exited":  StateExited,
		"created": StateCreated,
		"":        StateAbsent,
		"weird":   RunState("weird"),
	}
	for in, want := range cases {
		if got := ParseRunState(in); got != want {
			t.Errorf("ParseRunState(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseStats(t *testing.T) {
	out := "3.17%\t210.4MiB / 1.944GiB\t10.57%\t1.35MB / 648kB\n"

	snap, err := parseStats(out)
	if err != nil {
		t.Fatalf("parseStats failed: %v", err)
	}
	if snap.CPUPercent != 3.17 {
		t.Errorf("CPUPercent = %v, want 3.17", snap.CPUPercent)
	}
	if snap.MemPercent != 10.57 {
		t.Errorf("MemPercent = %v, want 10.57", snap.MemPercent)
	}
	if snap.MemUsage != "210.4MiB / 1.944GiB" {
		t.Errorf("MemUsage = %q", snap.MemUsage)
	}
	if snap.NetIO != "1.35MB / 648kB" {
		t.Errorf("NetIO = %q", snap.NetIO)
	}
	if snap.ObservedAt.IsZero() {
		t.Error("ObservedAt not set")
	}
}

func TestParseStats_Malformed(t *testing.T) {
	if _, err := parseStats(""); err == nil {
		t.Error("expected error for empty stats output")
	}
	if _, err := parseStats("garbage\n"); err == nil {
		t.Error("expected error for malformed stats row")
	}
}

func TestCommandError_Classification(t *testing.T) {
	notFound := &CommandError{
		Op:       "inspect",
		ExitCode: 1,
		Stderr:   "Error: No such container: sities-scraper",
	}
	if !errors.Is(notFound, ErrNotFound) {
		t.Error("no-such-container stderr should classify as ErrNotFound")
	}

	unavailable := &CommandError{
		Op:       "ps",
		ExitCode: 1,
		Stderr:   "Cannot connect to the Docker daemon at unix:///var/run/docker.sock. Is the docker daemon running?",
	}
	if !errors.Is(unavailable, ErrRuntimeUnavailable) {
		t.Error("daemon-unreachable stderr should classify as ErrRuntimeUnavailable")
	}

	plain := &CommandError{Op: "build", ExitCode: 17, Stderr: "step 4 failed"}
	if errors.Is(plain, ErrNotFound) || errors.Is(plain, ErrRuntimeUnavailable) {
		t.Error("plain command failure should not match either sentinel")
	}
}

func TestCommandError_MessageCarriesDiagnostic(t *testing.T) {
	err := &CommandError{Op: "up", ExitCode: 1, Stderr: "port is already allocated\n"}
	want := "up: exit 1: port is already allocated"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); got != nil {
		t.Errorf("splitLines(\"\") = %v, want nil", got)
	}
	got := splitLines("a\r\nb\nc\n")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("splitLines = %v", got)
	}
}

func TestCLIRuntime_AbsentContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	runtime, err := DetectRuntime()
	if err != nil {
		t.Skip("no container runtime available")
	}

	r := NewCLIRuntime(runtime, "", "")
	ctx := context.Background()
	name := fmt.Sprintf("scraperctl-absent-%d", time.Now().UnixNano())

	info, err := r.Lookup(ctx, name)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if info != nil {
		t.Errorf("Lookup of absent container = %+v, want nil", info)
	}

	health, err := r.InspectHealth(ctx, name)
	if err != nil {
		t.Fatalf("InspectHealth failed: %v", err)
	}
	if health != HealthUnavailable {
		t.Errorf("health = %q, want unavailable", health)
	}

	// Restart of an absent container is idempotent teardown territory:
	// non-fatal by contract.
	if err := r.Restart(ctx, name); err != nil {
		t.Errorf("Restart of absent container = %v, want nil", err)
	}
}
