package systemd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitgrip/internal/domain"
)

// fakeRunner records invocations and plays back canned results.
type fakeRunner struct {
	calls [][]string
	out   []byte
	err   error
}

func (f *fakeRunner) record(name string, arg ...string) {
	f.calls = append(f.calls, append([]string{name}, arg...))
}

func (f *fakeRunner) Output(ctx context.Context, name string, arg ...string) ([]byte, error) {
	f.record(name, arg...)
	return f.out, f.err
}

func (f *fakeRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return f.Output(ctx, name, arg...)
}

func newTestManager(r Runner) *Manager {
	m := NewManager("service", true)
	m.runner = r
	return m
}

func TestListUnitsParsesListing(t *testing.T) {
	listing := strings.Join([]string{
		"sshd.service      loaded active   running OpenSSH server daemon",
		"nginx.service     loaded active   running A high performance web server and a reverse proxy server",
		"cups.service      loaded inactive dead    CUPS Scheduler",
		"",
	}, "\n")
	fake := &fakeRunner{out: []byte(listing)}
	m := newTestManager(fake)

	units, err := m.ListUnits(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 3)

	assert.Equal(t, domain.Unit{
		Name:        "sshd.service",
		LoadState:   "loaded",
		ActiveState: "active",
		SubState:    "running",
		Description: "OpenSSH server daemon",
	}, units[0])
	assert.Equal(t, "A high performance web server and a reverse proxy server", units[1].Description)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"systemctl", "list-units", "--type=service", "--all",
		"--no-legend", "--no-pager", "--plain"}, fake.calls[0])
}

func TestListUnitsSkipsMalformedLines(t *testing.T) {
	listing := strings.Join([]string{
		"sshd.service loaded active running OpenSSH server daemon",
		"short line",
		"four fields only here",
		"incomplete.service loaded active running", // missing description
		"cron.service loaded active running Regular background program processing daemon",
	}, "\n")
	m := newTestManager(&fakeRunner{out: []byte(listing)})

	units, err := m.ListUnits(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "sshd.service", units[0].Name)
	assert.Equal(t, "cron.service", units[1].Name)
}

func TestListUnitsPropagatesError(t *testing.T) {
	m := newTestManager(&fakeRunner{err: errors.New("exec: systemctl: not found")})
	units, err := m.ListUnits(context.Background())
	assert.Error(t, err)
	assert.Nil(t, units)
}

func TestIsEnabledMapsExitCode(t *testing.T) {
	m := newTestManager(&fakeRunner{out: []byte("enabled\n")})
	assert.True(t, m.IsEnabled(context.Background(), "sshd.service"))

	m = newTestManager(&fakeRunner{out: []byte("disabled\n"), err: errors.New("exit status 1")})
	assert.False(t, m.IsEnabled(context.Background(), "sshd.service"))
}

func TestRunActionSuccess(t *testing.T) {
	fake := &fakeRunner{out: []byte("")}
	m := newTestManager(fake)

	ok, out := m.RunAction(context.Background(), domain.ActionStop, "nginx.service")
	assert.True(t, ok)
	assert.Empty(t, out)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"sudo", "systemctl", "stop", "nginx.service"}, fake.calls[0])
}

func TestRunActionWithoutSudo(t *testing.T) {
	fake := &fakeRunner{}
	m := NewManager("service", false)
	m.runner = fake

	m.RunAction(context.Background(), domain.ActionStart, "cups.service")
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"systemctl", "start", "cups.service"}, fake.calls[0])
}

func TestRunActionFailureCarriesOutput(t *testing.T) {
	fake := &fakeRunner{out: []byte("Access denied"), err: errors.New("exit status 4")}
	m := newTestManager(fake)

	ok, out := m.RunAction(context.Background(), domain.ActionStop, "nginx.service")
	assert.False(t, ok)
	assert.Equal(t, "Access denied", out)
}

func TestRunActionSpawnErrorFallsBackToErrorText(t *testing.T) {
	fake := &fakeRunner{err: errors.New("exec: sudo: not found")}
	m := newTestManager(fake)

	ok, out := m.RunAction(context.Background(), domain.ActionEnable, "sshd.service")
	assert.False(t, ok)
	assert.Equal(t, "exec: sudo: not found", out)
}

func TestTailLogs(t *testing.T) {
	fake := &fakeRunner{out: []byte("line one\nline two\n")}
	m := newTestManager(fake)

	lines := m.TailLogs(context.Background(), "sshd.service", 10)
	assert.Equal(t, []string{"line one", "line two"}, lines)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"journalctl", "-u", "sshd.service", "-n", "10", "--no-pager"}, fake.calls[0])
}

func TestTailLogsFailureYieldsDiagnosticLine(t *testing.T) {
	m := newTestManager(&fakeRunner{err: errors.New("journal unavailable")})
	lines := m.TailLogs(context.Background(), "sshd.service", 10)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "journal unavailable")
}

func TestTailLogsEmptyOutput(t *testing.T) {
	m := newTestManager(&fakeRunner{out: []byte("")})
	assert.Empty(t, m.TailLogs(context.Background(), "sshd.service", 10))
}

func TestSplitFieldsKeepsRemainderVerbatim(t *testing.T) {
	fields := splitFields("a  b\tc d   e  f   g", 5)
	require.Len(t, fields, 5)
	assert.Equal(t, "e  f   g", fields[4])
}
