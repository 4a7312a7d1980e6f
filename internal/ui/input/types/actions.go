package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// RunToggleAction requests the start/stop toggle for the selected unit
type RunToggleAction struct{}

func (a RunToggleAction) Type() string { return "run_toggle" }

// EnableToggleAction requests the enable/disable toggle for the selected unit
type EnableToggleAction struct{}

func (a EnableToggleAction) Type() string { return "enable_toggle" }

// ConfirmAction resolves a pending confirmation prompt
type ConfirmAction struct {
	Confirmed bool
}

func (a ConfirmAction) Type() string { return "confirm" }

type ToggleMarkAction struct{}

func (a ToggleMarkAction) Type() string { return "toggle_mark" }

type ShowDetailsAction struct{}

func (a ShowDetailsAction) Type() string { return "show_details" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// OpenJournalAction opens the full journal for the selected unit in a pager
type OpenJournalAction struct{}

func (a OpenJournalAction) Type() string { return "open_journal" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
