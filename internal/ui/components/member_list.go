package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
)

var (
	KeyChangeRole = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "change role"))
	KeyRemove     = key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove"))
)

// MemberList shows an organization's members. Role changes and removal are
// offered only when CanManage is set, and never on the current user's row.
type MemberList struct {
	Members       []entity.Member
	CurrentUserID string
	CanManage     bool
	Loading       bool
	Focused       bool

	theme  ui.Theme
	cursor rowCursor
}

func NewMemberList(theme ui.Theme, currentUserID string, canManage bool) MemberList {
	return MemberList{theme: theme, CurrentUserID: currentUserID, CanManage: canManage}
}

func (l MemberList) SetMembers(members []entity.Member, loading bool) MemberList {
	l.Members = members
	l.Loading = loading
	l.cursor = l.cursor.clamp(len(members))
	return l
}

func (l MemberList) Selected() (entity.Member, bool) {
	if len(l.Members) == 0 {
		return entity.Member{}, false
	}
	return l.Members[l.cursor], true
}

// CanAct reports whether management actions are available on m.
func (l MemberList) CanAct(m entity.Member) bool {
	return l.CanManage && m.UserID != l.CurrentUserID
}

func (l MemberList) Update(msg tea.KeyMsg) (MemberList, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.KeyUp):
		l.cursor = l.cursor.move(-1, len(l.Members))
	case key.Matches(msg, ui.KeyDown):
		l.cursor = l.cursor.move(1, len(l.Members))
	case key.Matches(msg, KeyChangeRole):
		if m, ok := l.Selected(); ok && l.CanAct(m) {
			return l, emit(ChangeRoleMsg{MemberID: m.ID, Role: m.Role.Next()})
		}
	case key.Matches(msg, KeyRemove):
		if m, ok := l.Selected(); ok && l.CanAct(m) {
			return l, emit(RemoveMemberMsg{MemberID: m.ID})
		}
	}
	return l, nil
}

func (l MemberList) View() string {
	if l.Loading && len(l.Members) == 0 {
		return l.theme.Muted.Render("Loading...")
	}
	if len(l.Members) == 0 {
		return l.theme.Muted.Render("No members")
	}

	var b strings.Builder
	for i, m := range l.Members {
		line := m.Name()
		if m.DisplayName != "" && m.Email != "" {
			line += " " + l.theme.Muted.Render("<"+m.Email+">")
		}
		line += " " + l.theme.Badge.Render(m.Role.String())
		if m.UserID == l.CurrentUserID {
			line += " " + l.theme.Muted.Render("(you)")
		}

		prefix := "  "
		if l.Focused && rowCursor(i) == l.cursor {
			prefix = l.theme.Selected.Render("> ")
		}
		b.WriteString(prefix + line)
		if i < len(l.Members)-1 {
			b.WriteString("\n")
		}
	}

	if l.Focused {
		if m, ok := l.Selected(); ok && l.CanAct(m) {
			b.WriteString("\n" + l.theme.HelpPadding.Render(ui.HelpView(KeyChangeRole, KeyRemove)))
		}
	}
	return b.String()
}
