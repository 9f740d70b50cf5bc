package pages_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/pages"
)

func invitation(token string, status entity.InvitationStatus) entity.Invitation {
	return entity.Invitation{
		ID:         "id-" + token,
		Token:      token,
		EntitySlug: "acme",
		EntityName: "Acme",
		Role:       entity.RoleMember,
		Status:     status,
	}
}

func loadedInvitationsPage(t *testing.T, c *fakeClient, opts pages.InvitationsOptions) *pages.InvitationsPage {
	t.Helper()
	p := pages.NewInvitationsPage(c, opts)
	drain(t, p, p.Init())
	return p
}

func TestInvitationsHeader(t *testing.T) {
	tests := []struct {
		name string
		mine []entity.Invitation
		want string
	}{
		{name: "none", want: "No pending invitations"},
		{
			name: "only settled",
			mine: []entity.Invitation{invitation("a", entity.InvitationAccepted), invitation("b", entity.InvitationExpired)},
			want: "No pending invitations",
		},
		{
			name: "one",
			mine: []entity.Invitation{invitation("a", entity.InvitationPending), invitation("b", entity.InvitationDeclined)},
			want: "You have 1 pending invitation",
		},
		{
			name: "two",
			mine: []entity.Invitation{invitation("a", entity.InvitationPending), invitation("b", entity.InvitationPending)},
			want: "You have 2 pending invitations",
		},
		{
			name: "many",
			mine: []entity.Invitation{
				invitation("a", entity.InvitationPending),
				invitation("b", entity.InvitationPending),
				invitation("c", entity.InvitationPending),
				invitation("d", entity.InvitationPending),
				invitation("e", entity.InvitationPending),
			},
			want: "You have 5 pending invitations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFakeClient()
			c.mine = tt.mine
			p := loadedInvitationsPage(t, c, pages.InvitationsOptions{})

			assert.Equal(t, tt.want, p.Header())
			assert.Contains(t, p.View(), tt.want)
		})
	}
}

func TestInvitationsEmptyMessage(t *testing.T) {
	p := loadedInvitationsPage(t, newFakeClient(), pages.InvitationsOptions{})
	assert.Contains(t, p.View(), "You don't have any pending invitations")
}

func TestInvitationsAccept(t *testing.T) {
	c := newFakeClient()
	c.mine = []entity.Invitation{invitation("t1", entity.InvitationPending), invitation("t2", entity.InvitationPending)}

	accepted := 0
	p := loadedInvitationsPage(t, c, pages.InvitationsOptions{
		OnInvitationAccepted: func() tea.Cmd {
			accepted++
			return nil
		},
	})

	send(t, p, keyDown, runes("a"))

	calls := c.called("AcceptInvitation")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"t2"}, calls[0].Args)
	assert.Equal(t, 1, accepted)
	assert.Equal(t, "Invitation accepted", p.Toast().Text)
	assert.Len(t, c.called("ListMyInvitations"), 2)
}

func TestInvitationsAcceptFailure(t *testing.T) {
	c := newFakeClient()
	c.mine = []entity.Invitation{invitation("t1", entity.InvitationPending)}
	c.errs["AcceptInvitation"] = errors.New("invitation expired")

	accepted := 0
	p := loadedInvitationsPage(t, c, pages.InvitationsOptions{
		OnInvitationAccepted: func() tea.Cmd {
			accepted++
			return nil
		},
	})

	send(t, p, runes("a"))

	assert.Zero(t, accepted)
	assert.True(t, p.Toast().IsError)
	assert.Equal(t, "Failed to accept invitation: invitation expired", p.Toast().Text)
	assert.Len(t, c.called("ListMyInvitations"), 1)
	assert.Equal(t, 1, p.PendingCount())
}

func TestInvitationsDecline(t *testing.T) {
	c := newFakeClient()
	c.mine = []entity.Invitation{invitation("t1", entity.InvitationPending)}
	p := loadedInvitationsPage(t, c, pages.InvitationsOptions{})

	send(t, p, runes("d"))

	calls := c.called("DeclineInvitation")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"t1"}, calls[0].Args)
	assert.Equal(t, "Invitation declined", p.Toast().Text)
	assert.Len(t, c.called("ListMyInvitations"), 2)
}

func TestInvitationsSettledAreNotActionable(t *testing.T) {
	c := newFakeClient()
	c.mine = []entity.Invitation{invitation("t1", entity.InvitationAccepted)}
	p := loadedInvitationsPage(t, c, pages.InvitationsOptions{})

	send(t, p, runes("a"), runes("d"))
	assert.Empty(t, c.called("AcceptInvitation"))
	assert.Empty(t, c.called("DeclineInvitation"))
}

func TestInvitationsDeclineFailure(t *testing.T) {
	c := newFakeClient()
	c.mine = []entity.Invitation{invitation("t1", entity.InvitationPending)}
	c.errs["DeclineInvitation"] = errors.New("boom")
	p := loadedInvitationsPage(t, c, pages.InvitationsOptions{})

	send(t, p, runes("d"))
	assert.Equal(t, "Failed to decline invitation: boom", p.Toast().Text)
}
