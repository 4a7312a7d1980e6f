package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Mark        lipgloss.Style
	Dim         lipgloss.Style
	Filter      lipgloss.Style
	Status      lipgloss.Style
	Footer      lipgloss.Style
	Confirm     lipgloss.Style
	Prompt      lipgloss.Style
	DetailBox   lipgloss.Style
	HelpBox     lipgloss.Style
	ActiveState lipgloss.Style
	FailedState lipgloss.Style
	OtherState  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Reverse(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Mark:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Filter:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Footer:   lipgloss.NewStyle().Reverse(true),
		Confirm:  lipgloss.NewStyle().Bold(true),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		ActiveState: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		FailedState: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		OtherState:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}

// StateStyle returns the style for an active-state value.
func (s *Styles) StateStyle(activeState string) lipgloss.Style {
	switch activeState {
	case "active":
		return s.ActiveState
	case "failed":
		return s.FailedState
	default:
		return s.OtherState
	}
}
