package workspaces

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/pages"
	"github.com/team-loco/workspaces/internal/ui"
)

// standaloneModel runs a single page as a program and adds quit keys.
type standaloneModel struct {
	page pages.Page
}

func standalone(p pages.Page) standaloneModel {
	return standaloneModel{page: p}
}

func (m standaloneModel) Init() tea.Cmd {
	return m.page.Init()
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if !m.page.CapturesInput() && key.Matches(k, ui.KeyQuit, ui.KeyBack) {
			return m, tea.Quit
		}
	}

	_, cmd := m.page.Update(msg)
	return m, cmd
}

func (m standaloneModel) View() string {
	return m.page.View() + "\n" + ui.HelpView(ui.KeyQuit)
}
