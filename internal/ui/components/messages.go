// Package components renders entities, members and invitations and reports
// user intents back to the owning page as messages. Components never call the
// client.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/entity"
)

type SelectEntityMsg struct {
	Entity entity.Entity
}

type OpenSettingsMsg struct {
	Slug string
}

type ChangeRoleMsg struct {
	MemberID string
	Role     entity.Role
}

type RemoveMemberMsg struct {
	MemberID string
}

type AcceptInvitationMsg struct {
	Token string
}

type DeclineInvitationMsg struct {
	Token string
}

type CancelInvitationMsg struct {
	InvitationID string
}

type SubmitInvitationMsg struct {
	Request entity.InviteMemberRequest
}

// ConfirmResultMsg answers the ConfirmDialog with the given ID.
type ConfirmResultMsg struct {
	ID        string
	Confirmed bool
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// rowCursor is a bounded row index.
type rowCursor int

func (c rowCursor) clamp(n int) rowCursor {
	switch {
	case n == 0:
		return 0
	case int(c) >= n:
		return rowCursor(n - 1)
	case c < 0:
		return 0
	}
	return c
}

func (c rowCursor) move(delta, n int) rowCursor {
	return (c + rowCursor(delta)).clamp(n)
}
