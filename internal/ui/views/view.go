package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unitgrip/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Units          []domain.Unit // filtered view
	Total          int           // size of the unfiltered list
	Marks          map[string]bool
	Cursor         int
	Offset         int
	ViewportHeight int
	Query          string
	StatusMessage  string
	InputMode      string // "", "search", "confirm"
	TextInput      string // rendered search input
	ConfirmPrompt  string
	ShowHelp       bool
	ShowDetails    bool
	DetailsContent string
}

// Column widths, matching systemctl's own listing proportions.
const (
	colUnit   = 32
	colLoad   = 8
	colActive = 10
	colSub    = 12
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete frame.
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 {
		return "Loading..."
	}

	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	switch state.InputMode {
	case "search":
		content.WriteString(r.styles.Prompt.Render("Search: ") + state.TextInput)
		content.WriteString("\n")
	case "confirm":
		content.WriteString(r.styles.Confirm.Render(state.ConfirmPrompt + "  y = yes, n = no"))
		content.WriteString("\n")
	}

	content.WriteString(r.renderUnitList(state))

	// Pin footer and status to the bottom of the terminal
	rendered := content.String()
	used := strings.Count(rendered, "\n") + 1
	padding := state.Height - used - 2
	if padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))
	content.WriteString("\n")
	content.WriteString(truncate(state.StatusMessage, state.Width-1))

	final := content.String()

	if state.ShowDetails && state.DetailsContent != "" {
		return r.renderPopup(final, state.DetailsContent, state.Width, state.Height, r.styles.DetailBox)
	}
	if state.ShowHelp {
		return r.renderPopup(final, helpContent(), state.Width, state.Height, r.styles.HelpBox)
	}

	return final
}

func (r *Renderer) renderHeader(state ViewState) string {
	header := fmt.Sprintf(" unitgrip — total: %d | visible: %d | marked: %d",
		state.Total, len(state.Units), countMarks(state))
	if state.Query != "" {
		header += fmt.Sprintf(" | filter: %q", state.Query)
	}
	return r.styles.Header.Render(pad(truncate(header, state.Width-1), state.Width-1))
}

func (r *Renderer) renderUnitList(state ViewState) string {
	if len(state.Units) == 0 {
		if state.Query != "" {
			return r.styles.Dim.Render(fmt.Sprintf("No units match %q.", state.Query))
		}
		return r.styles.Dim.Render("No units found.")
	}

	end := state.Offset + state.ViewportHeight
	if end > len(state.Units) {
		end = len(state.Units)
	}
	start := state.Offset
	if start > end {
		start = end
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(state, i))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRow(state ViewState, i int) string {
	u := state.Units[i]

	markChar := " "
	if state.Marks[u.Name] {
		markChar = "*"
	}

	mark := markChar
	name := fmt.Sprintf("%-*s", colUnit, truncate(u.Name, colUnit))
	load := fmt.Sprintf("%-*s", colLoad, truncate(u.LoadState, colLoad))
	active := fmt.Sprintf("%-*s", colActive, truncate(u.ActiveState, colActive))
	sub := fmt.Sprintf("%-*s", colSub, truncate(u.SubState, colSub))

	descWidth := state.Width - 1 - (2 + colUnit + 1 + colLoad + 1 + colActive + 1 + colSub + 1)
	desc := truncate(u.Description, descWidth)

	if i == state.Cursor {
		line := fmt.Sprintf("%s %s %s %s %s %s", mark, name, load, active, sub, desc)
		return r.styles.Selected.Render(pad(truncate(line, state.Width-1), state.Width-1))
	}

	// Unselected rows get per-column color; alignment is applied to
	// the plain text before styling so ANSI codes never shift columns.
	if markChar == "*" {
		mark = r.styles.Mark.Render("*")
	}
	return fmt.Sprintf("%s %s %s %s %s %s",
		mark, name, load, r.styles.StateStyle(u.ActiveState).Render(active), sub, desc)
}

func (r *Renderer) renderFooter(state ViewState) string {
	footer := "[enter]details  s=start/stop  e=enable/disable  m=mark  /=search  r=refresh  L=journal  h=help  q=quit"
	return r.styles.Footer.Render(pad(truncate(footer, state.Width-1), state.Width-1))
}

func (r *Renderer) renderPopup(base, popup string, width, height int, style lipgloss.Style) string {
	box := style.MaxWidth(width - 4).Render(popup)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func countMarks(state ViewState) int {
	return len(state.Marks)
}

// helpContent renders the key reference shown in the help popup.
func helpContent() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(title.Render("unitgrip keys"))
	help.WriteString("\n\n")
	for _, row := range [][2]string{
		{"↑/↓, k/j", "Move"},
		{"PgUp/PgDn", "Page move"},
		{"g/G", "Go to top/bottom"},
		{"Enter", "Show unit details"},
		{"s", "Start / Stop (toggle)"},
		{"e", "Enable / Disable (toggle)"},
		{"m", "Mark / Unmark (remembered list)"},
		{"L", "Open full journal in pager"},
		{"r", "Refresh list"},
		{"/", "Search / Filter"},
		{"n / N", "Next / previous match"},
		{"h, ?", "Toggle this help"},
		{"q", "Quit"},
	} {
		help.WriteString(fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-10s", row[0])), desc.Render(row[1])))
	}
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Faint(true).Render("Actions run sudo systemctl, so a password prompt may appear."))
	return help.String()
}

// truncate cuts s to at most w cells. Styling is applied after
// truncation, so a plain rune count is enough here.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w])
}

// pad right-pads s with spaces to width w so reverse-video rows span
// the terminal.
func pad(s string, w int) string {
	if n := w - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
