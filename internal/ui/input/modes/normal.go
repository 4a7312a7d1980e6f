package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"unitgrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.HasUnits() {
			return []types.Action{types.ShowDetailsAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "s":
		if ctx.HasUnits() {
			return []types.Action{types.RunToggleAction{}}, true
		}
		return nil, true

	case "e":
		if ctx.HasUnits() {
			return []types.Action{types.EnableToggleAction{}}, true
		}
		return nil, true

	case "m":
		if ctx.HasUnits() {
			return []types.Action{types.ToggleMarkAction{}}, true
		}
		return nil, true

	case "L":
		if ctx.HasUnits() {
			return []types.Action{types.OpenJournalAction{}}, true
		}
		return nil, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "n":
		if ctx.SearchQuery() != "" && ctx.HasUnits() {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true

	case "N":
		if ctx.SearchQuery() != "" && ctx.HasUnits() {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true

	case "h", "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
