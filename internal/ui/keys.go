package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Navigation bindings shared by every list.
var (
	KeyUp    = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	KeyDown  = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	KeyEnter = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	KeyBack  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	KeyTab   = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section"))
	KeyQuit  = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))
)

// HelpView renders a one-line help for the given bindings.
func HelpView(bindings ...key.Binding) string {
	h := help.New()
	return h.ShortHelpView(bindings)
}
