package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
)

var KeySettings = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings"))

// EntityList shows a group of entities and lets the user pick one.
type EntityList struct {
	Entities []entity.Entity
	Loading  bool
	Focused  bool

	theme  ui.Theme
	cursor rowCursor
}

func NewEntityList(theme ui.Theme) EntityList {
	return EntityList{theme: theme}
}

// SetEntities replaces the rows, keeping the cursor in range.
func (l EntityList) SetEntities(entities []entity.Entity, loading bool) EntityList {
	l.Entities = entities
	l.Loading = loading
	l.cursor = l.cursor.clamp(len(entities))
	return l
}

func (l EntityList) Selected() (entity.Entity, bool) {
	if len(l.Entities) == 0 {
		return entity.Entity{}, false
	}
	return l.Entities[l.cursor], true
}

func (l EntityList) Update(msg tea.KeyMsg) (EntityList, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.KeyUp):
		l.cursor = l.cursor.move(-1, len(l.Entities))
	case key.Matches(msg, ui.KeyDown):
		l.cursor = l.cursor.move(1, len(l.Entities))
	case key.Matches(msg, ui.KeyEnter):
		if e, ok := l.Selected(); ok {
			return l, emit(SelectEntityMsg{Entity: e})
		}
	case key.Matches(msg, KeySettings):
		if e, ok := l.Selected(); ok {
			return l, emit(OpenSettingsMsg{Slug: e.Slug})
		}
	}
	return l, nil
}

func (l EntityList) View() string {
	if l.Loading && len(l.Entities) == 0 {
		return l.theme.Muted.Render("Loading...")
	}

	var b strings.Builder
	for i, e := range l.Entities {
		line := fmt.Sprintf("%s %s", e.DisplayName, l.theme.Muted.Render("("+e.Slug+")"))
		if e.Role != "" {
			line += " " + l.theme.Badge.Render(e.Role.String())
		}
		if e.Description != "" {
			line += "\n    " + l.theme.Muted.Render(e.Description)
		}

		prefix := "  "
		if l.Focused && rowCursor(i) == l.cursor {
			prefix = l.theme.Selected.Render("> ")
		}
		b.WriteString(prefix + line)
		if i < len(l.Entities)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
