package pages_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/team-loco/workspaces/internal/entity"
)

type call struct {
	Method string
	Args   []any
}

// fakeClient records every call and answers from its fields.
type fakeClient struct {
	calls []call

	entities    []entity.Entity
	members     []entity.Member
	invitations []entity.Invitation
	mine        []entity.Invitation

	errs map[string]error
}

func newFakeClient() *fakeClient {
	return &fakeClient{errs: map[string]error{}}
}

func (f *fakeClient) record(method string, args ...any) error {
	f.calls = append(f.calls, call{Method: method, Args: args})
	return f.errs[method]
}

func (f *fakeClient) called(method string) []call {
	var out []call
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeClient) ListEntities(context.Context) ([]entity.Entity, error) {
	if err := f.record("ListEntities"); err != nil {
		return nil, err
	}
	return f.entities, nil
}

func (f *fakeClient) CreateEntity(_ context.Context, req entity.CreateEntityRequest) (entity.Entity, error) {
	if err := f.record("CreateEntity", req); err != nil {
		return entity.Entity{}, err
	}
	created := entity.Entity{
		ID:          "new",
		Slug:        "new",
		DisplayName: req.DisplayName,
		Type:        entity.TypeOrganization,
		Role:        entity.RoleAdmin,
	}
	f.entities = append(f.entities, created)
	return created, nil
}

func (f *fakeClient) ListMembers(_ context.Context, slug string) ([]entity.Member, error) {
	if err := f.record("ListMembers", slug); err != nil {
		return nil, err
	}
	return f.members, nil
}

func (f *fakeClient) UpdateMemberRole(_ context.Context, slug, memberID string, role entity.Role) (entity.Member, error) {
	if err := f.record("UpdateMemberRole", slug, memberID, role); err != nil {
		return entity.Member{}, err
	}
	for i, m := range f.members {
		if m.ID == memberID {
			f.members[i].Role = role
			return f.members[i], nil
		}
	}
	return entity.Member{}, errors.New("member not found")
}

func (f *fakeClient) RemoveMember(_ context.Context, slug, memberID string) error {
	return f.record("RemoveMember", slug, memberID)
}

func (f *fakeClient) ListEntityInvitations(_ context.Context, slug string) ([]entity.Invitation, error) {
	if err := f.record("ListEntityInvitations", slug); err != nil {
		return nil, err
	}
	return f.invitations, nil
}

func (f *fakeClient) CreateInvitation(_ context.Context, slug string, req entity.InviteMemberRequest) (entity.Invitation, error) {
	if err := f.record("CreateInvitation", slug, req); err != nil {
		return entity.Invitation{}, err
	}
	inv := entity.Invitation{ID: "inv-new", Email: req.Email, Role: req.Role, Status: entity.InvitationPending, EntitySlug: slug}
	f.invitations = append(f.invitations, inv)
	return inv, nil
}

func (f *fakeClient) CancelInvitation(_ context.Context, slug, invitationID string) error {
	return f.record("CancelInvitation", slug, invitationID)
}

func (f *fakeClient) ListMyInvitations(context.Context) ([]entity.Invitation, error) {
	if err := f.record("ListMyInvitations"); err != nil {
		return nil, err
	}
	return f.mine, nil
}

func (f *fakeClient) AcceptInvitation(_ context.Context, token string) error {
	return f.record("AcceptInvitation", token)
}

func (f *fakeClient) DeclineInvitation(_ context.Context, token string) error {
	return f.record("DeclineInvitation", token)
}

// drain runs cmd and feeds every message it yields back into m until no
// commands remain. Spinner ticks are dropped.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 1000, "command loop did not settle")

		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			var out tea.Cmd
			_, out = m.Update(msg)
			queue = append(queue, out)
		}
	}
}

// send delivers msg to m and drains the resulting commands.
func send(t *testing.T, m tea.Model, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		drain(t, m, cmd)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func containsText(view, text string) bool {
	return strings.Contains(view, text)
}
