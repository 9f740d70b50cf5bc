package pages

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/query"
	"github.com/team-loco/workspaces/internal/ui"
	"github.com/team-loco/workspaces/internal/ui/components"
)

const (
	myInvitationsKey     = "my-invitations"
	acceptInvitationKey  = "accept-invitation"
	declineInvitationKey = "decline-invitation"
)

type InvitationsOptions struct {
	// OnInvitationAccepted is called after an invitation was accepted.
	OnInvitationAccepted func() tea.Cmd

	Theme   *ui.Theme
	Context context.Context
}

// InvitationsPage shows the caller's invitations and lets them accept or
// decline the pending ones.
type InvitationsPage struct {
	client InvitationsClient
	opts   InvitationsOptions
	ctx    context.Context
	theme  ui.Theme

	invitations query.Query[entity.Invitation]
	accept      query.Mutation
	decline     query.Mutation

	list    components.InvitationList
	toast   components.Toast
	spinner spinner.Model
}

func NewInvitationsPage(c InvitationsClient, opts InvitationsOptions) *InvitationsPage {
	theme := themeOrDefault(opts.Theme)
	list := components.NewInvitationList(theme, components.ModeUser, "You don't have any pending invitations")
	list.Focused = true

	return &InvitationsPage{
		client:      c,
		opts:        opts,
		ctx:         contextOrBackground(opts.Context),
		theme:       theme,
		invitations: query.New[entity.Invitation](myInvitationsKey, true),
		accept:      query.NewMutation(acceptInvitationKey),
		decline:     query.NewMutation(declineInvitationKey),
		list:        list,
		spinner:     ui.NewSpinner(),
	}
}

func (p *InvitationsPage) Init() tea.Cmd {
	return p.Refresh()
}

func (p *InvitationsPage) Refresh() tea.Cmd {
	cmd := p.invitations.Fetch(p.ctx, p.client.ListMyInvitations)
	p.list = p.list.SetInvitations(p.invitations.Data, p.invitations.Loading)
	return tea.Batch(cmd, p.spinner.Tick)
}

func (p *InvitationsPage) CapturesInput() bool {
	return false
}

// PendingCount is the number of invitations awaiting a response.
func (p *InvitationsPage) PendingCount() int {
	return entity.PendingCount(p.invitations.Data)
}

// Header returns the summary line under the page title.
func (p *InvitationsPage) Header() string {
	return entity.PendingSummary(p.PendingCount())
}

func (p *InvitationsPage) Toast() components.Toast {
	return p.toast
}

func (p *InvitationsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.invitations.Loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case query.Result[entity.Invitation]:
		if p.invitations.Apply(msg) && msg.Err != nil {
			p.toast = reportFailure(p.ctx, "load invitations", msg.Err)
		}
		p.list = p.list.SetInvitations(p.invitations.Data, p.invitations.Loading)
		return p, nil

	case components.AcceptInvitationMsg:
		token := msg.Token
		return p, p.accept.Run(p.ctx, func(ctx context.Context) (any, error) {
			return token, p.client.AcceptInvitation(ctx, token)
		})

	case components.DeclineInvitationMsg:
		token := msg.Token
		return p, p.decline.Run(p.ctx, func(ctx context.Context) (any, error) {
			return token, p.client.DeclineInvitation(ctx, token)
		})

	case query.Done:
		switch {
		case p.accept.Finish(msg):
			return p, p.acceptDone(msg)
		case p.decline.Finish(msg):
			return p, p.declineDone(msg)
		}
		return p, nil

	case tea.KeyMsg:
		p.toast = components.Toast{}
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *InvitationsPage) acceptDone(msg query.Done) tea.Cmd {
	if msg.Err != nil {
		p.toast = reportFailure(p.ctx, "accept invitation", msg.Err)
		return nil
	}

	slog.InfoContext(p.ctx, "invitation accepted")
	p.toast = components.InfoToast("Invitation accepted")
	cmds := []tea.Cmd{p.Refresh()}
	if p.opts.OnInvitationAccepted != nil {
		cmds = append(cmds, p.opts.OnInvitationAccepted())
	}
	return tea.Batch(cmds...)
}

func (p *InvitationsPage) declineDone(msg query.Done) tea.Cmd {
	if msg.Err != nil {
		p.toast = reportFailure(p.ctx, "decline invitation", msg.Err)
		return nil
	}

	slog.InfoContext(p.ctx, "invitation declined")
	p.toast = components.InfoToast("Invitation declined")
	return p.Refresh()
}

func (p *InvitationsPage) View() string {
	header := p.theme.Title.Render("Invitations")
	if p.invitations.Loading {
		header += " " + p.spinner.View()
	}

	sections := []string{
		header + "\n" + p.theme.Subtitle.Render(p.Header()),
		"",
		p.list.View(),
	}
	if !p.toast.Empty() {
		sections = append(sections, "", p.toast.View(p.theme))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
