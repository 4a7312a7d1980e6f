package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"unitgrip/internal/config"
	"unitgrip/internal/domain"
	"unitgrip/internal/marks"
	"unitgrip/internal/ui/input"
	"unitgrip/internal/ui/input/types"
	"unitgrip/internal/ui/logic"
	"unitgrip/internal/ui/state"
	"unitgrip/internal/ui/views"
)

// Gateway is the process boundary to the service manager. Implemented
// by systemd.Manager; tests substitute a fake.
type Gateway interface {
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	IsEnabled(ctx context.Context, unit string) bool
	RunAction(ctx context.Context, action domain.Action, unit string) (bool, string)
	TailLogs(ctx context.Context, unit string, n int) []string
}

// statusErrLimit caps how much external command output reaches the
// status line.
const statusErrLimit = 60

// journalPagerLines is how much journal the L pager view requests.
const journalPagerLines = 1000

// chromeRows is the frame overhead around the unit list: header,
// footer, status line, and the modal input/prompt row.
const chromeRows = 4

// pendingAction is a lifecycle action awaiting y/n confirmation.
type pendingAction struct {
	action domain.Action
	unit   string
	prompt string
}

// Model is the top-level session: it owns all state, interprets key
// input, and reconciles gateway results back into the filtered view.
type Model struct {
	cfg      *config.Config
	gateway  Gateway
	store    *marks.Store
	state    *state.SessionState
	nav      *logic.Navigator
	input    *input.Handler
	renderer *views.Renderer
	pager    *PagerOps

	pending *pendingAction
	width   int
	height  int
}

// NewModel creates the session model and performs the initial
// directory query synchronously, like every later refresh.
func NewModel(cfg *config.Config, gateway Gateway, store *marks.Store) *Model {
	m := &Model{
		cfg:      cfg,
		gateway:  gateway,
		store:    store,
		state:    state.NewSessionState(),
		nav:      logic.NewNavigator(),
		input:    input.New(),
		renderer: views.NewRenderer(),
		pager:    NewPagerOps(nil),
	}
	m.state.Marks = store.Load()
	if m.reloadUnits() {
		m.state.StatusMessage = "ready"
	}
	return m
}

// SetProgram sets the program reference for pager terminal handover.
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Context interface for the input handler.

func (m *Model) HasUnits() bool {
	return len(m.state.Filtered) > 0
}

func (m *Model) SearchQuery() string {
	return m.state.Query
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetHeight(listHeight(msg.Height), len(m.state.Filtered))

	case pagerClosedMsg:
		if msg.err != nil {
			m.state.StatusMessage = "pager: " + truncate(msg.err.Error(), statusErrLimit)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.store.Save(m.state.Marks)
			return m, tea.Quit
		}

		// Popups swallow the keystroke that closes them
		if m.state.ShowDetails {
			m.state.ShowDetails = false
			m.state.DetailsContent = ""
			return m, nil
		}
		if m.state.ShowHelp {
			m.state.ShowHelp = false
			return m, nil
		}

		actions, cmd := m.input.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.input.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) View() string {
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Units:          m.state.Filtered,
		Total:          len(m.state.Units),
		Marks:          m.state.Marks,
		Cursor:         m.nav.Cursor,
		Offset:         m.nav.Offset,
		ViewportHeight: m.nav.Height,
		Query:          m.state.Query,
		StatusMessage:  m.state.StatusMessage,
		ShowHelp:       m.state.ShowHelp,
		ShowDetails:    m.state.ShowDetails,
		DetailsContent: m.state.DetailsContent,
	}

	switch m.input.CurrentMode() {
	case types.ModeSearch:
		vs.InputMode = "search"
		if ti := m.input.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	case types.ModeConfirm:
		vs.InputMode = "confirm"
		if m.pending != nil {
			vs.ConfirmPrompt = m.pending.prompt
		}
	}

	return m.renderer.Render(vs)
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.navigate(a.Direction)

	case types.SubmitTextAction:
		m.setQuery(strings.TrimSpace(a.Text))

	case types.CancelTextAction:
		// Query stays as it was; nothing to do

	case types.RefreshAction:
		if m.reloadUnits() {
			m.state.StatusMessage = "refreshed"
		}

	case types.RunToggleAction:
		m.prepareRunToggle()

	case types.EnableToggleAction:
		m.prepareEnableToggle()

	case types.ConfirmAction:
		m.resolveConfirm(a.Confirmed)

	case types.ToggleMarkAction:
		m.toggleMark()

	case types.ShowDetailsAction:
		m.showDetails()

	case types.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case types.OpenJournalAction:
		return m.openJournalCmd()

	case types.SearchNavigateAction:
		m.searchNavigate(a.Direction)

	case types.QuitAction:
		m.store.Save(m.state.Marks)
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	n := len(m.state.Filtered)
	switch direction {
	case "up":
		m.nav.Move(-1, n)
	case "down":
		m.nav.Move(1, n)
	case "pageup":
		m.nav.Move(-m.nav.PageDelta(), n)
	case "pagedown":
		m.nav.Move(m.nav.PageDelta(), n)
	case "home":
		m.nav.Cursor = 0
		m.nav.Clamp(n)
	case "end":
		m.nav.Cursor = n - 1
		m.nav.Clamp(n)
	}
}

// setQuery installs a new filter query. Submitting always returns the
// viewport to the top; an empty submission clears the filter.
func (m *Model) setQuery(query string) {
	m.state.Query = query
	m.state.Filtered = logic.Apply(m.state.Units, query)
	m.nav.Reset()
	m.nav.Clamp(len(m.state.Filtered))

	if query == "" {
		m.state.StatusMessage = "filter cleared"
	} else {
		m.state.StatusMessage = fmt.Sprintf("filter set to '%s'", query)
	}
}

// reloadUnits re-queries the gateway and rebuilds the filtered view
// with the active query. The cursor index is preserved numerically; if
// the list shrank it is clamped. On failure the previous view stays in
// place and only the status line changes.
func (m *Model) reloadUnits() bool {
	units, err := m.gateway.ListUnits(context.Background())
	if err != nil {
		m.state.StatusMessage = "error: " + truncate(err.Error(), statusErrLimit)
		return false
	}
	m.state.Units = units
	m.state.Filtered = logic.Apply(units, m.state.Query)
	m.nav.Clamp(len(m.state.Filtered))
	return true
}

func (m *Model) prepareRunToggle() {
	u, ok := m.state.SelectedUnit(m.nav.Cursor)
	if !ok {
		return
	}
	action := domain.ActionStart
	if u.IsActive() {
		action = domain.ActionStop
	}
	m.requestAction(action, u.Name)
}

func (m *Model) prepareEnableToggle() {
	u, ok := m.state.SelectedUnit(m.nav.Cursor)
	if !ok {
		return
	}
	action := domain.ActionEnable
	if m.gateway.IsEnabled(context.Background(), u.Name) {
		action = domain.ActionDisable
	}
	m.requestAction(action, u.Name)
}

// requestAction either asks for confirmation or runs the action right
// away, depending on configuration.
func (m *Model) requestAction(action domain.Action, unit string) {
	if !m.cfg.UISettings.ConfirmActions {
		m.execute(action, unit)
		return
	}
	m.pending = &pendingAction{
		action: action,
		unit:   unit,
		prompt: fmt.Sprintf("%s %s? (will run %s)", actionTitle(action), unit, m.commandText(action)),
	}
	m.input.ChangeMode(types.ModeConfirm)
}

func (m *Model) resolveConfirm(confirmed bool) {
	p := m.pending
	m.pending = nil
	if p == nil {
		return
	}
	if !confirmed {
		m.state.StatusMessage = "cancelled"
		return
	}
	m.execute(p.action, p.unit)
}

// execute runs a lifecycle action and unconditionally re-fetches the
// unit list afterwards, so the view reflects actual system state
// rather than assumed success.
func (m *Model) execute(action domain.Action, unit string) {
	ok, out := m.gateway.RunAction(context.Background(), action, unit)
	if ok {
		m.state.StatusMessage = actionDone(action)
	} else {
		m.state.StatusMessage = "error: " + truncate(strings.TrimSpace(out), statusErrLimit)
	}
	m.reloadUnits()
}

func (m *Model) toggleMark() {
	u, ok := m.state.SelectedUnit(m.nav.Cursor)
	if !ok {
		return
	}
	if m.store.Toggle(m.state.Marks, u.Name) {
		m.state.StatusMessage = "marked " + u.Name
	} else {
		m.state.StatusMessage = "unmarked " + u.Name
	}
}

func (m *Model) showDetails() {
	u, ok := m.state.SelectedUnit(m.nav.Cursor)
	if !ok {
		return
	}
	logs := m.gateway.TailLogs(context.Background(), u.Name, m.cfg.JournalLines)

	lines := []string{
		"Unit: " + u.Name,
		"Load: " + u.LoadState,
		"Active: " + u.ActiveState,
		"Sub: " + u.SubState,
		"",
		"Description:",
		u.Description,
		"",
		fmt.Sprintf("Recent logs (last %d lines):", m.cfg.JournalLines),
	}
	lines = append(lines, logs...)
	lines = append(lines, "", "Press any key to close...")

	m.state.DetailsContent = strings.Join(lines, "\n")
	m.state.ShowDetails = true
}

func (m *Model) openJournalCmd() tea.Cmd {
	u, ok := m.state.SelectedUnit(m.nav.Cursor)
	if !ok {
		return nil
	}
	content := strings.Join(m.gateway.TailLogs(context.Background(), u.Name, journalPagerLines), "\n")
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pager.ShowInPager(content)}
	}
}

func (m *Model) searchNavigate(direction string) {
	if direction == "next" {
		if idx, ok := logic.NextMatch(m.state.Filtered, m.nav.Cursor, m.state.Query); ok {
			m.nav.Cursor = idx
			m.nav.Clamp(len(m.state.Filtered))
		} else {
			m.state.StatusMessage = "no more matches"
		}
		return
	}
	if idx, ok := logic.PrevMatch(m.state.Filtered, m.nav.Cursor, m.state.Query); ok {
		m.nav.Cursor = idx
		m.nav.Clamp(len(m.state.Filtered))
	} else {
		m.state.StatusMessage = "no previous match"
	}
}

func (m *Model) commandText(action domain.Action) string {
	if m.cfg.UseSudo {
		return "sudo systemctl " + string(action)
	}
	return "systemctl " + string(action)
}

func actionTitle(action domain.Action) string {
	switch action {
	case domain.ActionStart:
		return "Start"
	case domain.ActionStop:
		return "Stop"
	case domain.ActionEnable:
		return "Enable"
	case domain.ActionDisable:
		return "Disable"
	}
	return string(action)
}

func actionDone(action domain.Action) string {
	switch action {
	case domain.ActionStart:
		return "started"
	case domain.ActionStop:
		return "stopped"
	case domain.ActionEnable:
		return "enabled"
	case domain.ActionDisable:
		return "disabled"
	}
	return "done"
}

func listHeight(termHeight int) int {
	h := termHeight - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
