package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"unitgrip/internal/ui/input/types"
)

// ConfirmMode asks y/n before a lifecycle action runs. The pending
// action itself lives in the session; this mode only resolves the
// prompt.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.ConfirmAction{Confirmed: true},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{
			types.ConfirmAction{Confirmed: false},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// Everything else is ignored while the prompt is up
	return nil, true
}
