package state

import (
	"unitgrip/internal/domain"
)

// SessionState contains all the session state. It is owned by the UI
// model and passed by reference into handlers; there are no package
// level globals anywhere in the application.
type SessionState struct {
	// Unit data
	Units    []domain.Unit // full list from the most recent refresh
	Filtered []domain.Unit // view derived from Units and Query

	// Search and filter state
	Query string // active filter query, "" when none

	// Mark state
	Marks map[string]bool // marked unit names, persisted

	// UI state
	StatusMessage  string
	ShowHelp       bool
	ShowDetails    bool
	DetailsContent string
}

// NewSessionState creates an empty session state.
func NewSessionState() *SessionState {
	return &SessionState{
		Marks: make(map[string]bool),
	}
}

// SelectedUnit returns the unit under the cursor, if any.
func (s *SessionState) SelectedUnit(cursor int) (domain.Unit, bool) {
	if cursor < 0 || cursor >= len(s.Filtered) {
		return domain.Unit{}, false
	}
	return s.Filtered[cursor], true
}
