// Package app hosts the workspace pages in a single bubbletea program.
package app

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/pages"
	"github.com/team-loco/workspaces/internal/ui"
)

type Tab int

const (
	TabEntities Tab = iota
	TabInvitations
)

var (
	KeyEntitiesTab    = key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "workspaces"))
	KeyInvitationsTab = key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "invitations"))
	keyForceQuit      = key.NewBinding(key.WithKeys("ctrl+c"))
)

type Options struct {
	CurrentUserID string
	// Confirmer is handed to the members page. Nil means the page's own dialog.
	Confirmer pages.Confirmer
	// OnUseEntity is called when an entity is opened.
	OnUseEntity func(entity.Entity) error

	Theme   *ui.Theme
	Context context.Context
}

type openMembersMsg struct {
	entity entity.Entity
}

type openSettingsMsg struct {
	slug string
}

type invitationAcceptedMsg struct{}

// Model is the shell: two tabs plus a members page opened from the entity
// list.
type Model struct {
	client pages.Client
	opts   Options
	ctx    context.Context
	theme  ui.Theme

	tab         Tab
	entities    *pages.EntityListPage
	invitations *pages.InvitationsPage
	members     *pages.MembersManagementPage
}

func New(c pages.Client, opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	theme := ui.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	m := &Model{
		client: c,
		opts:   opts,
		ctx:    opts.Context,
		theme:  theme,
	}

	m.entities = pages.NewEntityListPage(c, pages.EntityListOptions{
		OnSelectEntity: func(e entity.Entity) tea.Cmd {
			return func() tea.Msg { return openMembersMsg{entity: e} }
		},
		OnNavigateToSettings: func(slug string) tea.Cmd {
			return func() tea.Msg { return openSettingsMsg{slug: slug} }
		},
		Theme:   &m.theme,
		Context: m.ctx,
	})
	m.invitations = pages.NewInvitationsPage(c, pages.InvitationsOptions{
		OnInvitationAccepted: func() tea.Cmd {
			return func() tea.Msg { return invitationAcceptedMsg{} }
		},
		Theme:   &m.theme,
		Context: m.ctx,
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.entities.Init(), m.invitations.Init())
}

func (m *Model) Tab() Tab {
	return m.tab
}

// Members returns the open members page, or nil.
func (m *Model) Members() *pages.MembersManagementPage {
	return m.members
}

func (m *Model) Entities() *pages.EntityListPage {
	return m.entities
}

func (m *Model) Invitations() *pages.InvitationsPage {
	return m.invitations
}

// Active returns the page receiving keystrokes.
func (m *Model) Active() pages.Page {
	if m.members != nil {
		return m.members
	}
	if m.tab == TabInvitations {
		return m.invitations
	}
	return m.entities
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.updateKeys(msg)

	case openMembersMsg:
		return m, m.openMembers(msg.entity)

	case openSettingsMsg:
		if e, ok := entity.FindBySlug(m.entities.Personal(), msg.slug); ok {
			return m, m.openMembers(e)
		}
		if e, ok := entity.FindBySlug(m.entities.Organizations(), msg.slug); ok {
			return m, m.openMembers(e)
		}
		slog.WarnContext(m.ctx, "settings requested for unknown entity", "entity", msg.slug)
		return m, nil

	case invitationAcceptedMsg:
		return m, m.entities.Refresh()
	}

	return m, m.broadcast(msg)
}

func (m *Model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keyForceQuit) {
		return tea.Quit
	}

	active := m.Active()
	if !active.CapturesInput() {
		switch {
		case key.Matches(msg, ui.KeyQuit):
			return tea.Quit
		case m.members != nil && key.Matches(msg, ui.KeyBack):
			m.members = nil
			return nil
		case key.Matches(msg, KeyEntitiesTab):
			m.members = nil
			m.tab = TabEntities
			return nil
		case key.Matches(msg, KeyInvitationsTab):
			m.members = nil
			m.tab = TabInvitations
			return nil
		}
	}

	_, cmd := active.Update(msg)
	return cmd
}

// broadcast hands msg to every live page. Results and completions are keyed,
// so pages ignore what is not theirs.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 3)
	for _, p := range m.livePages() {
		_, cmd := p.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) livePages() []pages.Page {
	live := []pages.Page{m.entities, m.invitations}
	if m.members != nil {
		live = append(live, m.members)
	}
	return live
}

func (m *Model) openMembers(e entity.Entity) tea.Cmd {
	if m.opts.OnUseEntity != nil {
		if err := m.opts.OnUseEntity(e); err != nil {
			slog.ErrorContext(m.ctx, "failed to save current entity", "entity", e.Slug, "error", err)
		}
	}

	m.members = pages.NewMembersManagementPage(m.client, e, m.opts.CurrentUserID, pages.MembersOptions{
		Confirmer: m.opts.Confirmer,
		Theme:     &m.theme,
		Context:   m.ctx,
	})
	return m.members.Init()
}

func (m *Model) View() string {
	tabs := []string{
		m.tabLabel(TabEntities, "1 Workspaces"),
		m.tabLabel(TabInvitations, "2 Invitations"),
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	help := []key.Binding{KeyEntitiesTab, KeyInvitationsTab}
	if m.members != nil {
		help = append(help, ui.KeyBack)
	}
	help = append(help, ui.KeyQuit)

	return lipgloss.JoinVertical(lipgloss.Left,
		bar,
		"",
		m.Active().View(),
		m.theme.HelpPadding.Render(ui.HelpView(help...)),
	)
}

func (m *Model) tabLabel(t Tab, label string) string {
	if t == m.tab && m.members == nil {
		return m.theme.Selected.Render("[" + label + "]")
	}
	return m.theme.Muted.Render(" " + label + " ")
}
