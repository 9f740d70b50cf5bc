package pages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/team-loco/workspaces/internal/client"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/query"
	"github.com/team-loco/workspaces/internal/ui"
	"github.com/team-loco/workspaces/internal/ui/components"
)

const (
	membersKey          = "members"
	entityInvitesKey    = "entity-invitations"
	updateRoleKey       = "update-member-role"
	removeMemberKey     = "remove-member"
	createInvitationKey = "create-invitation"
	cancelInvitationKey = "cancel-invitation"

	RemoveMemberPrompt = "Are you sure you want to remove this member?"

	errInviteFallback = "Failed to send invitation"
)

// entityKey scopes a query or mutation key to one entity. The shell hands
// every result to every live page, so a late result from a page that was
// closed must not match the page that replaced it.
func entityKey(base string, e entity.Entity) string {
	return base + ":" + e.Slug
}

type MembersOptions struct {
	// Confirmer confirms member removal. When nil the page asks with its own
	// dialog.
	Confirmer Confirmer

	Theme   *ui.Theme
	Context context.Context
}

type membersSection int

const (
	sectionInviteForm membersSection = iota
	sectionPendingInvitations
	sectionMembers
)

// removalConfirmedMsg carries the Confirmer's answer for a member removal.
type removalConfirmedMsg struct {
	memberID  string
	confirmed bool
	err       error
}

// MembersManagementPage lists an organization's members and, for admins, its
// pending invitations and an invite form. Personal entities get an
// explanatory message and no fetches.
type MembersManagementPage struct {
	client        MembersClient
	entity        entity.Entity
	currentUserID string
	canManage     bool
	opts          MembersOptions
	ctx           context.Context
	theme         ui.Theme

	members     query.Query[entity.Member]
	invitations query.Query[entity.Invitation]

	updateRole       query.Mutation
	removeMember     query.Mutation
	createInvitation query.Mutation
	cancelInvitation query.Mutation

	memberList  components.MemberList
	pendingList components.InvitationList
	form        components.InvitationForm
	confirm     *components.ConfirmDialog
	focus       membersSection

	toast   components.Toast
	spinner spinner.Model
}

func NewMembersManagementPage(c MembersClient, e entity.Entity, currentUserID string, opts MembersOptions) *MembersManagementPage {
	theme := themeOrDefault(opts.Theme)
	canManage := e.CanManage()
	organization := !e.IsPersonal()

	p := &MembersManagementPage{
		client:        c,
		entity:        e,
		currentUserID: currentUserID,
		canManage:     canManage,
		opts:          opts,
		ctx:           contextOrBackground(opts.Context),
		theme:         theme,

		members:     query.New[entity.Member](entityKey(membersKey, e), organization),
		invitations: query.New[entity.Invitation](entityKey(entityInvitesKey, e), organization && canManage),

		updateRole:       query.NewMutation(entityKey(updateRoleKey, e)),
		removeMember:     query.NewMutation(entityKey(removeMemberKey, e)),
		createInvitation: query.NewMutation(entityKey(createInvitationKey, e)),
		cancelInvitation: query.NewMutation(entityKey(cancelInvitationKey, e)),

		memberList:  components.NewMemberList(theme, currentUserID, canManage),
		pendingList: components.NewInvitationList(theme, components.ModeAdmin, "No pending invitations"),
		form:        components.NewInvitationForm(theme),
		focus:       sectionMembers,
		spinner:     ui.NewSpinner(),
	}
	p.applyFocus()
	return p
}

func (p *MembersManagementPage) Init() tea.Cmd {
	return p.Refresh()
}

// Refresh refetches members and, for admins, pending invitations. It does
// nothing for personal entities.
func (p *MembersManagementPage) Refresh() tea.Cmd {
	if p.entity.IsPersonal() {
		return nil
	}
	return tea.Batch(p.fetchMembers(), p.fetchInvitations(), p.spinner.Tick)
}

func (p *MembersManagementPage) fetchMembers() tea.Cmd {
	slug := p.entity.Slug
	cmd := p.members.Fetch(p.ctx, func(ctx context.Context) ([]entity.Member, error) {
		return p.client.ListMembers(ctx, slug)
	})
	p.memberList = p.memberList.SetMembers(p.members.Data, p.members.Loading)
	return cmd
}

func (p *MembersManagementPage) fetchInvitations() tea.Cmd {
	slug := p.entity.Slug
	cmd := p.invitations.Fetch(p.ctx, func(ctx context.Context) ([]entity.Invitation, error) {
		return p.client.ListEntityInvitations(ctx, slug)
	})
	p.pendingList = p.pendingList.SetInvitations(p.invitations.Data, p.invitations.Loading)
	return cmd
}

func (p *MembersManagementPage) Entity() entity.Entity {
	return p.entity
}

// CanManage reports whether the caller may invite, change roles and remove
// members.
func (p *MembersManagementPage) CanManage() bool {
	return p.canManage
}

func (p *MembersManagementPage) Members() []entity.Member {
	return p.members.Data
}

func (p *MembersManagementPage) PendingInvitations() []entity.Invitation {
	return p.invitations.Data
}

// ConfirmOpen reports whether the inline removal dialog is showing.
func (p *MembersManagementPage) ConfirmOpen() bool {
	return p.confirm != nil
}

func (p *MembersManagementPage) InviteError() string {
	return p.form.Err()
}

func (p *MembersManagementPage) CapturesInput() bool {
	return p.confirm != nil || (p.canManage && p.focus == sectionInviteForm)
}

func (p *MembersManagementPage) Toast() components.Toast {
	return p.toast
}

func (p *MembersManagementPage) loading() bool {
	return p.members.Loading || p.invitations.Loading
}

func (p *MembersManagementPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.loading() {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case query.Result[entity.Member]:
		if p.members.Apply(msg) && msg.Err != nil {
			p.toast = reportFailure(p.ctx, "load members", msg.Err, "entity", p.entity.Slug)
		}
		p.memberList = p.memberList.SetMembers(p.members.Data, p.members.Loading)
		return p, nil

	case query.Result[entity.Invitation]:
		if p.invitations.Apply(msg) && msg.Err != nil {
			p.toast = reportFailure(p.ctx, "load invitations", msg.Err, "entity", p.entity.Slug)
		}
		p.pendingList = p.pendingList.SetInvitations(p.invitations.Data, p.invitations.Loading)
		return p, nil

	case components.ChangeRoleMsg:
		return p, p.runUpdateRole(msg.MemberID, msg.Role)

	case components.RemoveMemberMsg:
		return p, p.askRemoval(msg.MemberID)

	case components.ConfirmResultMsg:
		if p.confirm == nil || p.confirm.ID != msg.ID {
			return p, nil
		}
		p.confirm = nil
		if !msg.Confirmed {
			return p, nil
		}
		return p, p.runRemove(msg.ID)

	case removalConfirmedMsg:
		if msg.err != nil {
			p.toast = reportFailure(p.ctx, "confirm removal", msg.err, "member", msg.memberID)
			return p, nil
		}
		if !msg.confirmed {
			return p, nil
		}
		return p, p.runRemove(msg.memberID)

	case components.SubmitInvitationMsg:
		return p, p.runCreateInvitation(msg.Request)

	case components.CancelInvitationMsg:
		return p, p.runCancelInvitation(msg.InvitationID)

	case query.Done:
		return p, p.finish(msg)

	case tea.KeyMsg:
		return p, p.updateKeys(msg)
	}

	return p, nil
}

func (p *MembersManagementPage) updateKeys(msg tea.KeyMsg) tea.Cmd {
	if p.entity.IsPersonal() {
		return nil
	}
	p.toast = components.Toast{}

	if p.confirm != nil {
		var cmd tea.Cmd
		*p.confirm, cmd = p.confirm.Update(msg)
		return cmd
	}

	if key.Matches(msg, ui.KeyTab) {
		p.nextFocus()
		return nil
	}

	var cmd tea.Cmd
	switch p.focus {
	case sectionInviteForm:
		p.form, cmd = p.form.Update(msg)
	case sectionPendingInvitations:
		p.pendingList, cmd = p.pendingList.Update(msg)
	case sectionMembers:
		p.memberList, cmd = p.memberList.Update(msg)
	}
	return cmd
}

// nextFocus moves focus to the next rendered section. Non-admins only see
// the member list.
func (p *MembersManagementPage) nextFocus() {
	if !p.canManage {
		return
	}
	p.focus = (p.focus + 1) % 3
	p.applyFocus()
}

func (p *MembersManagementPage) applyFocus() {
	p.memberList.Focused = p.focus == sectionMembers
	p.pendingList.Focused = p.focus == sectionPendingInvitations
	if p.focus == sectionInviteForm {
		p.form = p.form.Focus()
	} else {
		p.form = p.form.Blur()
	}
}

func (p *MembersManagementPage) askRemoval(memberID string) tea.Cmd {
	if p.opts.Confirmer == nil {
		d := components.NewConfirmDialog(p.theme, memberID, RemoveMemberPrompt)
		p.confirm = &d
		return nil
	}

	confirmer := p.opts.Confirmer
	ctx := p.ctx
	return func() tea.Msg {
		ok, err := confirmer.Confirm(ctx, RemoveMemberPrompt)
		return removalConfirmedMsg{memberID: memberID, confirmed: ok, err: err}
	}
}

func (p *MembersManagementPage) runUpdateRole(memberID string, role entity.Role) tea.Cmd {
	if p.updateRole.Pending {
		return nil
	}
	slug := p.entity.Slug
	return p.updateRole.Run(p.ctx, func(ctx context.Context) (any, error) {
		return p.client.UpdateMemberRole(ctx, slug, memberID, role)
	})
}

func (p *MembersManagementPage) runRemove(memberID string) tea.Cmd {
	slug := p.entity.Slug
	return p.removeMember.Run(p.ctx, func(ctx context.Context) (any, error) {
		return memberID, p.client.RemoveMember(ctx, slug, memberID)
	})
}

// runCreateInvitation forwards req as submitted; the form has already
// validated it.
func (p *MembersManagementPage) runCreateInvitation(req entity.InviteMemberRequest) tea.Cmd {
	if p.createInvitation.Pending {
		return nil
	}
	slug := p.entity.Slug
	p.form.Submitting = true
	return p.createInvitation.Run(p.ctx, func(ctx context.Context) (any, error) {
		return p.client.CreateInvitation(ctx, slug, req)
	})
}

func (p *MembersManagementPage) runCancelInvitation(invitationID string) tea.Cmd {
	if p.cancelInvitation.Pending {
		return nil
	}
	slug := p.entity.Slug
	return p.cancelInvitation.Run(p.ctx, func(ctx context.Context) (any, error) {
		return invitationID, p.client.CancelInvitation(ctx, slug, invitationID)
	})
}

func (p *MembersManagementPage) finish(msg query.Done) tea.Cmd {
	slug := p.entity.Slug

	switch {
	case p.updateRole.Finish(msg):
		if msg.Err != nil {
			p.toast = reportFailure(p.ctx, "update member role", msg.Err, "entity", slug)
			return nil
		}
		if m, ok := msg.Value.(entity.Member); ok {
			slog.InfoContext(p.ctx, "member role updated", "entity", slug, "member", m.ID, "role", m.Role)
			p.toast = components.InfoToast(fmt.Sprintf("%s is now %s", m.Name(), m.Role))
		}
		return p.fetchMembers()

	case p.removeMember.Finish(msg):
		if msg.Err != nil {
			p.toast = reportFailure(p.ctx, "remove member", msg.Err, "entity", slug)
			return nil
		}
		slog.InfoContext(p.ctx, "member removed", "entity", slug, "member", msg.Value)
		p.toast = components.InfoToast("Member removed")
		return p.fetchMembers()

	case p.createInvitation.Finish(msg):
		p.form.Submitting = false
		if msg.Err != nil {
			slog.ErrorContext(p.ctx, "failed to create invitation", "entity", slug, "error", msg.Err)
			p.form = p.form.SetError(client.ErrorMessage(msg.Err, errInviteFallback))
			return nil
		}
		p.form = p.form.Reset()
		if inv, ok := msg.Value.(entity.Invitation); ok {
			slog.InfoContext(p.ctx, "invitation sent", "entity", slug, "email", inv.Email)
			p.toast = components.InfoToast("Invitation sent to " + inv.Email)
		}
		return p.fetchInvitations()

	case p.cancelInvitation.Finish(msg):
		if msg.Err != nil {
			p.toast = reportFailure(p.ctx, "cancel invitation", msg.Err, "entity", slug)
			return nil
		}
		slog.InfoContext(p.ctx, "invitation cancelled", "entity", slug, "invitation", msg.Value)
		p.toast = components.InfoToast("Invitation cancelled")
		return p.fetchInvitations()
	}

	return nil
}

func (p *MembersManagementPage) View() string {
	if p.entity.IsPersonal() {
		return lipgloss.JoinVertical(lipgloss.Left,
			p.theme.Title.Render("Members"),
			p.theme.EmptyState.Render(
				"Personal workspaces cannot have additional members.\n"+
					p.theme.Muted.Render("Create an organization to collaborate with others."),
			),
		)
	}

	header := p.theme.Title.Render("Members")
	if p.loading() {
		header += " " + p.spinner.View()
	}
	sections := []string{
		header + "\n" + p.theme.Subtitle.Render("Manage members and invitations for "+p.entity.DisplayName),
	}

	if p.confirm != nil {
		sections = append(sections, p.confirm.View())
	}

	if p.canManage {
		sections = append(sections,
			p.theme.Section.Render("Invite Members")+"\n"+p.theme.Panel.Render(p.form.View()),
			p.theme.Section.Render("Pending Invitations")+"\n"+p.pendingList.View(),
		)
	}

	sections = append(sections,
		p.theme.Section.Render(fmt.Sprintf("Current Members (%d)", len(p.members.Data)))+"\n"+p.memberList.View(),
	)

	if !p.toast.Empty() {
		sections = append(sections, p.toast.View(p.theme))
	}

	if p.canManage && p.confirm == nil {
		sections = append(sections, p.theme.HelpPadding.Render(ui.HelpView(ui.KeyTab)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
