package components

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
)

var (
	KeySubmit   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send invitation"))
	KeyNextRole = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "cycle role"))
)

// InvitationForm collects an email address and role for a new invitation.
type InvitationForm struct {
	Submitting bool

	theme ui.Theme
	email textinput.Model
	role  entity.Role
	err   string
}

func NewInvitationForm(theme ui.Theme) InvitationForm {
	email := textinput.New()
	email.Placeholder = "colleague@example.com"
	email.CharLimit = 254
	email.Prompt = ""
	email.Cursor.SetMode(cursor.CursorStatic)

	return InvitationForm{
		theme: theme,
		email: email,
		role:  entity.RoleMember,
	}
}

func (f InvitationForm) Focus() InvitationForm {
	f.email.Focus()
	return f
}

func (f InvitationForm) Blur() InvitationForm {
	f.email.Blur()
	return f
}

func (f InvitationForm) Focused() bool {
	return f.email.Focused()
}

func (f InvitationForm) Role() entity.Role {
	return f.role
}

func (f InvitationForm) Email() string {
	return f.email.Value()
}

func (f InvitationForm) Err() string {
	return f.err
}

// SetError shows a submission failure under the form.
func (f InvitationForm) SetError(msg string) InvitationForm {
	f.err = msg
	return f
}

// Reset clears the form after a successful invitation.
func (f InvitationForm) Reset() InvitationForm {
	f.email.SetValue("")
	f.role = entity.RoleMember
	f.err = ""
	return f
}

func (f InvitationForm) Update(msg tea.KeyMsg) (InvitationForm, tea.Cmd) {
	switch {
	case key.Matches(msg, KeySubmit):
		if f.Submitting {
			return f, nil
		}
		req, err := f.request()
		if err != nil {
			f.err = err.Error()
			return f, nil
		}
		f.err = ""
		return f, emit(SubmitInvitationMsg{Request: req})
	case key.Matches(msg, KeyNextRole):
		f.role = f.role.Next()
		return f, nil
	}

	var cmd tea.Cmd
	f.email, cmd = f.email.Update(msg)
	return f, cmd
}

func (f InvitationForm) request() (entity.InviteMemberRequest, error) {
	email := strings.TrimSpace(f.email.Value())
	if email == "" {
		return entity.InviteMemberRequest{}, errors.New("Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return entity.InviteMemberRequest{}, errors.New("Enter a valid email address")
	}
	if !f.role.Valid() {
		return entity.InviteMemberRequest{}, errors.New("Select a role")
	}
	return entity.InviteMemberRequest{Email: email, Role: f.role}, nil
}

func (f InvitationForm) View() string {
	var b strings.Builder
	b.WriteString(f.theme.Label.Render("Email") + "\n")
	b.WriteString(f.email.View() + "\n")
	b.WriteString(f.theme.Label.Render("Role") + " " + f.theme.Badge.Render(f.role.String()))
	b.WriteString(" " + f.theme.Muted.Render("(ctrl+r to change)") + "\n")

	if f.err != "" {
		b.WriteString(f.theme.Error.Render(f.err) + "\n")
	}

	label := "Send invitation"
	if f.Submitting {
		label = "Sending..."
	}
	if f.Focused() {
		b.WriteString(f.theme.Button.Render(label))
	} else {
		b.WriteString(f.theme.Disabled.Render(label))
	}
	return b.String()
}
