package systemd

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"unitgrip/internal/domain"
)

// Runner executes an external command. Split out so tests can swap in
// canned output without spawning processes.
type Runner interface {
	Output(ctx context.Context, name string, arg ...string) ([]byte, error)
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).Output()
}

func (execRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).CombinedOutput()
}

// Manager is the process boundary to systemctl and journalctl. All
// calls are synchronous; callers decide what to do with failures.
type Manager struct {
	unitType string
	useSudo  bool
	runner   Runner
}

// NewManager creates a manager for the given unit type ("service",
// "timer", ...). With useSudo set, lifecycle actions run under sudo.
func NewManager(unitType string, useSudo bool) *Manager {
	return &Manager{
		unitType: unitType,
		useSudo:  useSudo,
		runner:   execRunner{},
	}
}

// ListUnits queries systemctl for the full unit list. Lines that do
// not parse into at least five whitespace-separated fields are skipped.
func (m *Manager) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	out, err := m.runner.Output(ctx, "systemctl",
		"list-units", "--type="+m.unitType, "--all", "--no-legend", "--no-pager", "--plain")
	if err != nil {
		return nil, fmt.Errorf("systemctl list-units failed: %w", err)
	}

	var units []domain.Unit
	for _, line := range strings.Split(string(out), "\n") {
		fields := splitFields(line, 5)
		if len(fields) < 5 {
			continue
		}
		units = append(units, domain.Unit{
			Name:        fields[0],
			LoadState:   fields[1],
			ActiveState: fields[2],
			SubState:    fields[3],
			Description: fields[4],
		})
	}
	return units, nil
}

// IsEnabled reports the unit's enablement state based on the
// `systemctl is-enabled` exit code.
func (m *Manager) IsEnabled(ctx context.Context, unit string) bool {
	_, err := m.runner.Output(ctx, "systemctl", "is-enabled", unit)
	return err == nil
}

// RunAction runs a lifecycle action on a unit. Failure is any non-zero
// exit or spawn error; the returned string carries the combined
// stdout+stderr (or the transport error text) for the status line.
func (m *Manager) RunAction(ctx context.Context, action domain.Action, unit string) (bool, string) {
	name := "systemctl"
	args := []string{string(action), unit}
	if m.useSudo {
		name = "sudo"
		args = append([]string{"systemctl"}, args...)
	}

	out, err := m.runner.CombinedOutput(ctx, name, args...)
	if err != nil {
		log.Printf("systemctl %s %s failed: %v", action, unit, err)
		if len(out) == 0 {
			return false, err.Error()
		}
		return false, string(out)
	}
	return true, string(out)
}

// TailLogs fetches the last n journal lines for a unit. Best effort:
// on failure it returns a single diagnostic line instead of an error.
func (m *Manager) TailLogs(ctx context.Context, unit string, n int) []string {
	out, err := m.runner.Output(ctx, "journalctl",
		"-u", unit, "-n", strconv.Itoa(n), "--no-pager")
	if err != nil {
		return []string{fmt.Sprintf("journalctl failed: %v", err)}
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// splitFields splits a line on runs of whitespace into at most max
// fields, keeping the remainder of the line intact in the last field
// (the unit description may itself contain spaces).
func splitFields(line string, max int) []string {
	var fields []string
	rest := strings.TrimLeft(line, " \t")
	for len(rest) > 0 {
		if len(fields) == max-1 {
			fields = append(fields, strings.TrimRight(rest, " \t"))
			break
		}
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			fields = append(fields, rest)
			break
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	return fields
}
