package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"unitgrip/internal/ui/input/modes"
	"unitgrip/internal/ui/input/types"
)

// Handler dispatches keys to the active mode and keeps the shared
// text input in sync for text modes.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Process mode changes in place; everything else flows to the session
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if exit := h.modes[h.currentMode]; exit != nil {
				allActions = append(allActions, exit.Exit(ctx)...)
			}

			oldMode := h.currentMode
			h.currentMode = changeMode.Mode

			if enter := h.modes[h.currentMode]; enter != nil {
				allActions = append(allActions, enter.Enter(ctx)...)
			}

			if h.isTextMode(h.currentMode) {
				h.textInput.Reset()
				h.textInput.Focus()
				cmd = textinput.Blink
			} else if h.isTextMode(oldMode) {
				h.textInput.Blur()
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unhandled keys in a text mode feed the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
	}

	return allActions, cmd
}

// ChangeMode switches modes from outside the key path (the session
// enters confirm mode after it has prepared a pending action).
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if h.isTextMode(mode) {
		h.textInput.Reset()
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared text input while a text mode is active,
// nil otherwise.
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Update handles non-keyboard messages (cursor blink) for text modes.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}
