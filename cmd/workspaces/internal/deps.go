package internal

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/team-loco/workspaces/internal/client"
	"github.com/team-loco/workspaces/internal/config"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/pages"
	"github.com/team-loco/workspaces/internal/ui"
)

// API is the remote surface the commands use.
type API interface {
	pages.Client
	WhoAmI(ctx context.Context) (client.User, error)
	GetEntity(ctx context.Context, slug string) (entity.Entity, error)
}

var _ API = (*client.Client)(nil)

// Deps contains all injectable dependencies for the commands.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// Host is the resolved API host.
	Host string
	// Client is nil when no token is available.
	Client API
	// NewClient builds a client for another token, as login does.
	NewClient func(host, token string) API

	// Config operations
	LoadSessionConfig func() (*config.SessionConfig, error)
	SaveSessionConfig func(*config.SessionConfig) error

	// Interactive operations
	RunProgram func(tea.Model) error
	Select     func(title string, options []ui.SelectOption) (any, error)
}

// NewDeps creates Deps with real implementations. An empty token leaves
// Client nil.
func NewDeps(host, token string) *Deps {
	d := &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,

		Host:      host,
		NewClient: func(host, token string) API {
			return client.NewClient(host, token)
		},

		LoadSessionConfig: config.Load,
		SaveSessionConfig: (*config.SessionConfig).Save,

		RunProgram: runProgram,
		Select:     ui.SelectFromList,
	}
	if token != "" {
		d.Client = d.NewClient(host, token)
	}
	return d
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
