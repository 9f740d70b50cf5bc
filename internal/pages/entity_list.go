package pages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/team-loco/workspaces/internal/client"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/query"
	"github.com/team-loco/workspaces/internal/ui"
	"github.com/team-loco/workspaces/internal/ui/components"
)

const (
	entitiesKey     = "entities"
	createEntityKey = "create-entity"

	errDisplayNameRequired = "Display name is required"
	errCreateFallback      = "Failed to create organization"
)

var (
	KeyNewOrganization = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new organization"))
	keyFormSwitch      = key.NewBinding(key.WithKeys("tab", "shift+tab"))
)

type EntityListOptions struct {
	// OnSelectEntity is called when the user picks an entity.
	OnSelectEntity func(entity.Entity) tea.Cmd
	// OnNavigateToSettings is called with the slug of the entity whose
	// settings the user asked to open.
	OnNavigateToSettings func(entitySlug string) tea.Cmd

	Theme   *ui.Theme
	Context context.Context
}

// createForm is the create-organization dialog. It only exists while open.
type createForm struct {
	displayName textinput.Model
	description textarea.Model
	field       int
	err         string
}

func newCreateForm() *createForm {
	name := textinput.New()
	name.Placeholder = "My Organization"
	name.CharLimit = 100
	name.Prompt = ""
	name.Cursor.SetMode(cursor.CursorStatic)
	name.Focus()

	desc := textarea.New()
	desc.Placeholder = "What is this organization for?"
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.SetHeight(3)
	desc.SetWidth(48)
	desc.CharLimit = 500
	desc.Cursor.SetMode(cursor.CursorStatic)
	desc.Blur()

	return &createForm{displayName: name, description: desc}
}

func (f *createForm) switchField() {
	f.field = (f.field + 1) % 2
	if f.field == 0 {
		f.description.Blur()
		f.displayName.Focus()
		return
	}
	f.displayName.Blur()
	f.description.Focus()
}

// EntityListPage lists the caller's personal and organization workspaces and
// lets them create an organization.
type EntityListPage struct {
	client EntitiesClient
	opts   EntityListOptions
	ctx    context.Context
	theme  ui.Theme

	entities query.Query[entity.Entity]
	create   query.Mutation

	personal      components.EntityList
	organizations components.EntityList
	// focusOrgs is true when the organization group holds the cursor.
	focusOrgs bool

	form    *createForm
	toast   components.Toast
	spinner spinner.Model
}

func NewEntityListPage(c EntitiesClient, opts EntityListOptions) *EntityListPage {
	theme := themeOrDefault(opts.Theme)
	p := &EntityListPage{
		client:        c,
		opts:          opts,
		ctx:           contextOrBackground(opts.Context),
		theme:         theme,
		entities:      query.New[entity.Entity](entitiesKey, true),
		create:        query.NewMutation(createEntityKey),
		personal:      components.NewEntityList(theme),
		organizations: components.NewEntityList(theme),
		spinner:       ui.NewSpinner(),
	}
	p.syncLists()
	return p
}

func (p *EntityListPage) Init() tea.Cmd {
	return p.Refresh()
}

func (p *EntityListPage) Refresh() tea.Cmd {
	cmd := p.entities.Fetch(p.ctx, p.client.ListEntities)
	p.syncLists()
	return tea.Batch(cmd, p.spinner.Tick)
}

// Personal returns the personal group as currently rendered.
func (p *EntityListPage) Personal() []entity.Entity {
	return p.personal.Entities
}

// Organizations returns the organization group as currently rendered.
func (p *EntityListPage) Organizations() []entity.Entity {
	return p.organizations.Entities
}

func (p *EntityListPage) Loading() bool {
	return p.entities.Loading
}

// CreateDialogOpen reports whether the create-organization dialog is showing.
func (p *EntityListPage) CreateDialogOpen() bool {
	return p.form != nil
}

// CreateError returns the message shown in the create dialog, if any.
func (p *EntityListPage) CreateError() string {
	if p.form == nil {
		return ""
	}
	return p.form.err
}

func (p *EntityListPage) CapturesInput() bool {
	return p.form != nil
}

func (p *EntityListPage) Toast() components.Toast {
	return p.toast
}

func (p *EntityListPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.entities.Loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case query.Result[entity.Entity]:
		if p.entities.Apply(msg) && msg.Err != nil {
			p.toast = reportFailure(p.ctx, "load workspaces", msg.Err)
		}
		p.syncLists()
		return p, nil

	case query.Done:
		if p.create.Finish(msg) {
			return p, p.createDone(msg)
		}
		return p, nil

	case components.SelectEntityMsg:
		if p.opts.OnSelectEntity != nil {
			return p, p.opts.OnSelectEntity(msg.Entity)
		}
		return p, nil

	case components.OpenSettingsMsg:
		if p.opts.OnNavigateToSettings != nil {
			return p, p.opts.OnNavigateToSettings(msg.Slug)
		}
		return p, nil

	case tea.KeyMsg:
		if p.form != nil {
			return p, p.updateForm(msg)
		}
		return p, p.updateList(msg)
	}

	return p, nil
}

func (p *EntityListPage) updateList(msg tea.KeyMsg) tea.Cmd {
	p.toast = components.Toast{}

	switch {
	case key.Matches(msg, KeyNewOrganization):
		p.openForm()
		return nil
	case key.Matches(msg, ui.KeyTab):
		if len(p.personal.Entities) > 0 {
			p.focusOrgs = !p.focusOrgs
			p.syncLists()
		}
		return nil
	}

	if p.focusOrgs {
		// The empty state's call to action.
		if len(p.organizations.Entities) == 0 && !p.entities.Loading && key.Matches(msg, ui.KeyEnter) {
			p.openForm()
			return nil
		}
		var cmd tea.Cmd
		p.organizations, cmd = p.organizations.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	p.personal, cmd = p.personal.Update(msg)
	return cmd
}

func (p *EntityListPage) openForm() {
	p.form = newCreateForm()
}

func (p *EntityListPage) closeForm() {
	p.form = nil
}

func (p *EntityListPage) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ui.KeyBack):
		p.closeForm()
		return nil
	case key.Matches(msg, ui.KeyEnter):
		return p.submitCreate()
	case key.Matches(msg, keyFormSwitch):
		p.form.switchField()
		return nil
	}

	var cmd tea.Cmd
	if p.form.field == 0 {
		p.form.displayName, cmd = p.form.displayName.Update(msg)
	} else {
		p.form.description, cmd = p.form.description.Update(msg)
	}
	return cmd
}

func (p *EntityListPage) submitCreate() tea.Cmd {
	if p.create.Pending {
		return nil
	}
	p.form.err = ""

	displayName := strings.TrimSpace(p.form.displayName.Value())
	if displayName == "" {
		p.form.err = errDisplayNameRequired
		return nil
	}

	req := entity.CreateEntityRequest{DisplayName: displayName}
	if description := strings.TrimSpace(p.form.description.Value()); description != "" {
		req.Description = &description
	}

	return p.create.Run(p.ctx, func(ctx context.Context) (any, error) {
		return p.client.CreateEntity(ctx, req)
	})
}

func (p *EntityListPage) createDone(msg query.Done) tea.Cmd {
	if msg.Err != nil {
		slog.ErrorContext(p.ctx, "failed to create organization", "error", msg.Err)
		errMsg := client.ErrorMessage(msg.Err, errCreateFallback)
		if p.form != nil {
			p.form.err = errMsg
		} else {
			p.toast = components.ErrorToast(errMsg)
		}
		return nil
	}

	p.closeForm()
	if created, ok := msg.Value.(entity.Entity); ok {
		slog.InfoContext(p.ctx, "organization created", "entity", created.Slug)
		p.toast = components.InfoToast("Created " + created.DisplayName)
	}
	return p.Refresh()
}

// syncLists pushes query state into the two groups and keeps focus on a
// group that is rendered.
func (p *EntityListPage) syncLists() {
	personal, orgs := entity.Partition(p.entities.Data)
	if dropped := len(p.entities.Data) - len(personal) - len(orgs); dropped > 0 {
		slog.WarnContext(p.ctx, "ignoring entities of unknown type", "count", dropped)
	}

	p.personal = p.personal.SetEntities(personal, p.entities.Loading)
	p.organizations = p.organizations.SetEntities(orgs, p.entities.Loading)

	if len(personal) == 0 {
		p.focusOrgs = true
	}
	p.personal.Focused = !p.focusOrgs
	p.organizations.Focused = p.focusOrgs
}

func (p *EntityListPage) View() string {
	var sections []string

	header := p.theme.Title.Render("Workspaces")
	if p.entities.Loading {
		header += " " + p.spinner.View()
	}
	sections = append(sections,
		header+"\n"+p.theme.Subtitle.Render("Manage your personal and organization workspaces"),
	)

	if p.form != nil {
		sections = append(sections, p.formView())
	}

	if len(p.personal.Entities) > 0 {
		sections = append(sections,
			p.theme.Section.Render("Personal Workspace")+"\n"+p.personal.View(),
		)
	}

	orgs := p.theme.Section.Render("Organizations") + "\n"
	if len(p.organizations.Entities) == 0 && !p.entities.Loading {
		orgs += p.theme.EmptyState.Render(
			"No organizations yet\n" + p.theme.Link.Render("Create your first organization") + " (n)",
		)
	} else {
		orgs += p.organizations.View()
	}
	sections = append(sections, orgs)

	if !p.toast.Empty() {
		sections = append(sections, p.toast.View(p.theme))
	}

	if p.form == nil {
		sections = append(sections, p.theme.HelpPadding.Render(ui.HelpView(
			ui.KeyUp, ui.KeyDown, ui.KeyEnter, components.KeySettings, KeyNewOrganization, ui.KeyTab,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *EntityListPage) formView() string {
	f := p.form
	var b strings.Builder
	b.WriteString(p.theme.Title.Render("Create Organization") + "\n\n")
	b.WriteString(p.theme.Label.Render("Display Name") + "\n")
	b.WriteString(f.displayName.View() + "\n\n")
	b.WriteString(p.theme.Label.Render("Description (optional)") + "\n")
	b.WriteString(f.description.View() + "\n")
	if f.err != "" {
		b.WriteString(p.theme.Error.Render(f.err) + "\n")
	}

	label := "Create"
	if p.create.Pending {
		label = "Creating..."
	}
	b.WriteString("\n" + p.theme.Muted.Render("esc Cancel") + "  " + p.theme.Button.Render("enter "+label))
	return p.theme.Dialog.Render(b.String())
}
