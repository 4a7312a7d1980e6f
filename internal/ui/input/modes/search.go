package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode("search", "Search: ", ti),
	}
}
