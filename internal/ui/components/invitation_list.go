package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
)

// InvitationMode selects whose view of the invitations is rendered.
type InvitationMode int

const (
	// ModeUser lists invitations addressed to the caller, who may accept or decline.
	ModeUser InvitationMode = iota
	// ModeAdmin lists invitations an organization has issued, which may be cancelled.
	ModeAdmin
)

var (
	KeyAccept  = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept"))
	KeyDecline = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "decline"))
	KeyCancel  = key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "cancel invitation"))
)

type InvitationList struct {
	Invitations  []entity.Invitation
	Mode         InvitationMode
	Loading      bool
	Focused      bool
	EmptyMessage string

	theme  ui.Theme
	cursor rowCursor
}

func NewInvitationList(theme ui.Theme, mode InvitationMode, emptyMessage string) InvitationList {
	return InvitationList{theme: theme, Mode: mode, EmptyMessage: emptyMessage}
}

func (l InvitationList) SetInvitations(invitations []entity.Invitation, loading bool) InvitationList {
	l.Invitations = invitations
	l.Loading = loading
	l.cursor = l.cursor.clamp(len(invitations))
	return l
}

func (l InvitationList) Selected() (entity.Invitation, bool) {
	if len(l.Invitations) == 0 {
		return entity.Invitation{}, false
	}
	return l.Invitations[l.cursor], true
}

func (l InvitationList) Update(msg tea.KeyMsg) (InvitationList, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.KeyUp):
		l.cursor = l.cursor.move(-1, len(l.Invitations))
		return l, nil
	case key.Matches(msg, ui.KeyDown):
		l.cursor = l.cursor.move(1, len(l.Invitations))
		return l, nil
	}

	inv, ok := l.Selected()
	if !ok || !inv.IsPending() {
		return l, nil
	}

	switch l.Mode {
	case ModeUser:
		switch {
		case key.Matches(msg, KeyAccept):
			return l, emit(AcceptInvitationMsg{Token: inv.Token})
		case key.Matches(msg, KeyDecline):
			return l, emit(DeclineInvitationMsg{Token: inv.Token})
		}
	case ModeAdmin:
		if key.Matches(msg, KeyCancel) {
			return l, emit(CancelInvitationMsg{InvitationID: inv.ID})
		}
	}
	return l, nil
}

func (l InvitationList) View() string {
	if l.Loading && len(l.Invitations) == 0 {
		return l.theme.Muted.Render("Loading...")
	}
	if len(l.Invitations) == 0 {
		return l.theme.Muted.Render(l.EmptyMessage)
	}

	var b strings.Builder
	for i, inv := range l.Invitations {
		var line string
		switch l.Mode {
		case ModeUser:
			name := inv.EntityName
			if name == "" {
				name = inv.EntitySlug
			}
			line = name + " " + l.theme.Muted.Render("as "+roleLabel(inv.Role))
			if inv.InvitedBy != "" {
				line += " " + l.theme.Muted.Render("from "+inv.InvitedBy)
			}
		case ModeAdmin:
			line = inv.Email + " " + l.theme.Muted.Render(roleLabel(inv.Role))
		}
		if !inv.IsPending() {
			line += " " + l.theme.Disabled.Render(string(inv.Status))
		}

		prefix := "  "
		if l.Focused && rowCursor(i) == l.cursor {
			prefix = l.theme.Selected.Render("> ")
		}
		b.WriteString(prefix + line)
		if i < len(l.Invitations)-1 {
			b.WriteString("\n")
		}
	}

	if l.Focused {
		if inv, ok := l.Selected(); ok && inv.IsPending() {
			var help string
			if l.Mode == ModeUser {
				help = ui.HelpView(KeyAccept, KeyDecline)
			} else {
				help = ui.HelpView(KeyCancel)
			}
			b.WriteString("\n" + l.theme.HelpPadding.Render(help))
		}
	}
	return b.String()
}

func roleLabel(r entity.Role) string {
	return "[" + string(r) + "]"
}
