package types

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode identifies an input mode
type Mode int

const (
	ModeNormal Mode = iota // browsing the unit list
	ModeSearch             // modal text entry for the filter query
	ModeConfirm            // y/n prompt before a lifecycle action
)

// Context provides mode handlers read access to session state
type Context interface {
	HasUnits() bool      // filtered view is non-empty
	SearchQuery() string // active filter query, "" when none
}

// Action is something a mode handler wants the session to do
type Action interface {
	Type() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	Name() string
	Enter(ctx Context) []Action
	Exit(ctx Context) []Action
	// HandleKey returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}
