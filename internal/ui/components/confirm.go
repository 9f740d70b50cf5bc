package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/ui"
)

var (
	KeyYes = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))
	KeyNo  = key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no"))
)

// ConfirmDialog asks a yes/no question and answers with a ConfirmResultMsg
// carrying ID.
type ConfirmDialog struct {
	ID     string
	Prompt string

	theme ui.Theme
}

func NewConfirmDialog(theme ui.Theme, id, prompt string) ConfirmDialog {
	return ConfirmDialog{ID: id, Prompt: prompt, theme: theme}
}

func (d ConfirmDialog) Update(msg tea.KeyMsg) (ConfirmDialog, tea.Cmd) {
	switch {
	case key.Matches(msg, KeyYes):
		return d, emit(ConfirmResultMsg{ID: d.ID, Confirmed: true})
	case key.Matches(msg, KeyNo):
		return d, emit(ConfirmResultMsg{ID: d.ID, Confirmed: false})
	}
	return d, nil
}

func (d ConfirmDialog) View() string {
	return d.theme.Dialog.Render(d.Prompt + "\n\n" + ui.HelpView(KeyYes, KeyNo))
}
