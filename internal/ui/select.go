package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrNoSelection = errors.New("no selection made")

// filterThreshold is the option count above which the picker offers "/" to
// filter.
const filterThreshold = 10

// SelectOption is one row of the picker. The picker opens on the option
// marked Current.
type SelectOption struct {
	Label       string
	Description string
	Current     bool
	Value       any
}

type pickerItem struct {
	opt SelectOption
}

func (i pickerItem) Title() string {
	if i.opt.Current {
		return i.opt.Label + " (current)"
	}
	return i.opt.Label
}

func (i pickerItem) Description() string { return i.opt.Description }

// FilterValue matches on the description too, so slugs and roles can be
// typed.
func (i pickerItem) FilterValue() string {
	return strings.TrimSpace(i.opt.Label + " " + i.opt.Description)
}

type picker struct {
	list   list.Model
	theme  Theme
	chosen *SelectOption
}

func newPicker(title string, options []SelectOption, theme Theme) picker {
	items := make([]list.Item, len(options))
	start := 0
	for i, opt := range options {
		items[i] = pickerItem{opt: opt}
		if opt.Current {
			start = i
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(Green).BorderForeground(Orange)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(LightGreen).BorderForeground(Orange)

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = theme.Button
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(len(options) > filterThreshold)
	l.Select(start)

	return picker{list: l, theme: theme}
}

func (m picker) Init() tea.Cmd {
	return nil
}

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_, v := m.theme.HelpPadding.GetFrameSize()
		m.list.SetSize(msg.Width, msg.Height-v-1)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// Typed keys belong to the filter until it is accepted.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, KeyEnter):
			if i, ok := m.list.SelectedItem().(pickerItem); ok {
				opt := i.opt
				m.chosen = &opt
			}
			return m, tea.Quit
		case key.Matches(msg, KeyBack) && m.list.FilterState() == list.FilterApplied:
			// Let the list clear the filter.
		case key.Matches(msg, KeyBack), key.Matches(msg, KeyQuit):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m picker) View() string {
	bindings := []key.Binding{KeyUp, KeyDown, KeyEnter, KeyBack}
	if m.list.FilteringEnabled() {
		bindings = append(bindings, m.list.KeyMap.Filter)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		m.theme.HelpPadding.Render(HelpView(bindings...)),
	)
}

// SelectFromList runs a full-screen picker and returns the chosen option's
// value, or ErrNoSelection when the user backs out.
func SelectFromList(title string, options []SelectOption) (any, error) {
	if len(options) == 0 {
		return nil, ErrNoSelection
	}

	p := tea.NewProgram(newPicker(title, options, DefaultTheme()), tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return nil, err
	}

	sm, ok := model.(picker)
	if !ok {
		return nil, fmt.Errorf("internal error: unexpected model type %T", model)
	}
	if sm.chosen == nil {
		return nil, ErrNoSelection
	}
	return sm.chosen.Value, nil
}
