package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
	"github.com/team-loco/workspaces/internal/ui/components"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestEntityListSelect(t *testing.T) {
	l := components.NewEntityList(ui.DefaultTheme()).SetEntities([]entity.Entity{
		{Slug: "acme", DisplayName: "Acme"},
		{Slug: "globex", DisplayName: "Globex"},
	}, false)
	l.Focused = true

	l, _ = l.Update(keyDown)
	_, cmd := l.Update(keyEnter)
	assert.Equal(t, components.SelectEntityMsg{Entity: entity.Entity{Slug: "globex", DisplayName: "Globex"}}, msgOf(t, cmd))

	_, cmd = l.Update(runes("s"))
	assert.Equal(t, components.OpenSettingsMsg{Slug: "globex"}, msgOf(t, cmd))
}

func TestEntityListEmptyEmitsNothing(t *testing.T) {
	l := components.NewEntityList(ui.DefaultTheme())
	_, cmd := l.Update(keyEnter)
	assert.Nil(t, cmd)
}

func TestMemberListActions(t *testing.T) {
	members := []entity.Member{
		{ID: "m1", UserID: "me", Email: "me@example.com", Role: entity.RoleAdmin},
		{ID: "m2", UserID: "bob", Email: "bob@example.com", Role: entity.RoleMember},
	}

	t.Run("self row offers nothing", func(t *testing.T) {
		l := components.NewMemberList(ui.DefaultTheme(), "me", true).SetMembers(members, false)
		_, cmd := l.Update(runes("x"))
		assert.Nil(t, cmd)
		_, cmd = l.Update(runes("r"))
		assert.Nil(t, cmd)
	})

	t.Run("admin acts on others", func(t *testing.T) {
		l := components.NewMemberList(ui.DefaultTheme(), "me", true).SetMembers(members, false)
		l, _ = l.Update(keyDown)
		_, cmd := l.Update(runes("x"))
		assert.Equal(t, components.RemoveMemberMsg{MemberID: "m2"}, msgOf(t, cmd))
		_, cmd = l.Update(runes("r"))
		assert.Equal(t, components.ChangeRoleMsg{MemberID: "m2", Role: entity.RoleAdmin}, msgOf(t, cmd))
	})

	t.Run("non admin cannot act", func(t *testing.T) {
		l := components.NewMemberList(ui.DefaultTheme(), "me", false).SetMembers(members, false)
		l, _ = l.Update(keyDown)
		_, cmd := l.Update(runes("x"))
		assert.Nil(t, cmd)
	})
}

func TestInvitationListModes(t *testing.T) {
	invitations := []entity.Invitation{
		{ID: "i1", Token: "t1", EntityName: "Acme", Status: entity.InvitationAccepted},
		{ID: "i2", Token: "t2", EntityName: "Globex", Status: entity.InvitationPending},
	}

	user := components.NewInvitationList(ui.DefaultTheme(), components.ModeUser, "none").SetInvitations(invitations, false)
	_, cmd := user.Update(runes("a"))
	assert.Nil(t, cmd, "accepted invitations take no action")

	user, _ = user.Update(keyDown)
	_, cmd = user.Update(runes("a"))
	assert.Equal(t, components.AcceptInvitationMsg{Token: "t2"}, msgOf(t, cmd))
	_, cmd = user.Update(runes("d"))
	assert.Equal(t, components.DeclineInvitationMsg{Token: "t2"}, msgOf(t, cmd))
	_, cmd = user.Update(runes("x"))
	assert.Nil(t, cmd)

	admin := components.NewInvitationList(ui.DefaultTheme(), components.ModeAdmin, "none").SetInvitations(invitations, false)
	admin, _ = admin.Update(keyDown)
	_, cmd = admin.Update(runes("x"))
	assert.Equal(t, components.CancelInvitationMsg{InvitationID: "i2"}, msgOf(t, cmd))
	_, cmd = admin.Update(runes("a"))
	assert.Nil(t, cmd)
}

func TestInvitationListRendersRoles(t *testing.T) {
	invitations := []entity.Invitation{
		{ID: "i1", Email: "carol@example.com", EntitySlug: "acme", Role: entity.RoleManager, InvitedBy: "alice", Status: entity.InvitationPending},
	}

	user := components.NewInvitationList(ui.DefaultTheme(), components.ModeUser, "none").SetInvitations(invitations, false)
	view := user.View()
	assert.Contains(t, view, "acme")
	assert.Contains(t, view, "as [manager]")
	assert.Contains(t, view, "from alice")

	admin := components.NewInvitationList(ui.DefaultTheme(), components.ModeAdmin, "none").SetInvitations(invitations, false)
	view = admin.View()
	assert.Contains(t, view, "carol@example.com")
	assert.Contains(t, view, "[manager]")
}

func TestInvitationListEmptyMessage(t *testing.T) {
	l := components.NewInvitationList(ui.DefaultTheme(), components.ModeUser, "Nothing here")
	assert.Contains(t, l.View(), "Nothing here")

	l = l.SetInvitations(nil, true)
	assert.Contains(t, l.View(), "Loading...")
}

func TestInvitationForm(t *testing.T) {
	f := components.NewInvitationForm(ui.DefaultTheme()).Focus()

	f, cmd := f.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Email is required", f.Err())

	f, _ = f.Update(runes("not-an-email"))
	f, cmd = f.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Enter a valid email address", f.Err())

	f = f.Reset().Focus()
	f, _ = f.Update(runes("bob@example.com"))
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, entity.RoleAdmin, f.Role())

	f, cmd = f.Update(keyEnter)
	assert.Empty(t, f.Err())
	assert.Equal(t, components.SubmitInvitationMsg{Request: entity.InviteMemberRequest{
		Email: "bob@example.com",
		Role:  entity.RoleAdmin,
	}}, msgOf(t, cmd))

	f.Submitting = true
	_, cmd = f.Update(keyEnter)
	assert.Nil(t, cmd)
}

func TestConfirmDialog(t *testing.T) {
	d := components.NewConfirmDialog(ui.DefaultTheme(), "m2", "Sure?")
	assert.Contains(t, d.View(), "Sure?")

	_, cmd := d.Update(runes("y"))
	assert.Equal(t, components.ConfirmResultMsg{ID: "m2", Confirmed: true}, msgOf(t, cmd))
	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, components.ConfirmResultMsg{ID: "m2", Confirmed: false}, msgOf(t, cmd))
	_, cmd = d.Update(runes("q"))
	assert.Nil(t, cmd)
}
