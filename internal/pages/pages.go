// Package pages holds the three workspace page containers: the entity list,
// member management and the caller's invitations. Each page is a bubbletea
// model that fetches through a client, renders with the components package
// and reports remote failures to the log and to a toast line.
package pages

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/client"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
	"github.com/team-loco/workspaces/internal/ui/components"
)

// EntitiesClient is what EntityListPage needs from the client.
type EntitiesClient interface {
	ListEntities(ctx context.Context) ([]entity.Entity, error)
	CreateEntity(ctx context.Context, req entity.CreateEntityRequest) (entity.Entity, error)
}

// MembersClient is what MembersManagementPage needs from the client.
type MembersClient interface {
	ListMembers(ctx context.Context, entitySlug string) ([]entity.Member, error)
	UpdateMemberRole(ctx context.Context, entitySlug, memberID string, role entity.Role) (entity.Member, error)
	RemoveMember(ctx context.Context, entitySlug, memberID string) error
	ListEntityInvitations(ctx context.Context, entitySlug string) ([]entity.Invitation, error)
	CreateInvitation(ctx context.Context, entitySlug string, req entity.InviteMemberRequest) (entity.Invitation, error)
	CancelInvitation(ctx context.Context, entitySlug, invitationID string) error
}

// InvitationsClient is what InvitationsPage needs from the client.
type InvitationsClient interface {
	ListMyInvitations(ctx context.Context) ([]entity.Invitation, error)
	AcceptInvitation(ctx context.Context, token string) error
	DeclineInvitation(ctx context.Context, token string) error
}

// Client is the full surface used by all three pages.
type Client interface {
	EntitiesClient
	MembersClient
	InvitationsClient
}

var _ Client = (*client.Client)(nil)

// Page is implemented by every page in this package.
type Page interface {
	tea.Model
	// CapturesInput reports whether keystrokes are going into a text field or
	// dialog, in which case hosts should not treat them as shortcuts.
	CapturesInput() bool
	// Refresh refetches the page's data.
	Refresh() tea.Cmd
}

var (
	_ Page = (*EntityListPage)(nil)
	_ Page = (*MembersManagementPage)(nil)
	_ Page = (*InvitationsPage)(nil)
)

func themeOrDefault(t *ui.Theme) ui.Theme {
	if t == nil {
		return ui.DefaultTheme()
	}
	return *t
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// reportFailure logs a failed action and turns it into an error toast.
func reportFailure(ctx context.Context, action string, err error, attrs ...any) components.Toast {
	slog.ErrorContext(ctx, "failed to "+action, append(attrs, "error", err)...)
	return components.ErrorToast(fmt.Sprintf("Failed to %s: %s", action, client.ErrorMessage(err, "unknown error")))
}
