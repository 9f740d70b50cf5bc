package workspaces

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/cmd/workspaces/internal"
	"github.com/team-loco/workspaces/internal/app"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/pages"
)

func buildShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive workspace shell",
		Args:  cobra.NoArgs,
		Example: `  # Browse workspaces and invitations
  workspaces shell

  # Remove members without a confirmation prompt
  workspaces shell --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) error {
	ctx := cmd.Context()
	d, err := getDeps(ctx)
	if err != nil {
		return err
	}
	c, err := requireClient(d)
	if err != nil {
		return err
	}

	usr, err := c.WhoAmI(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	confirmer, err := confirmerFromFlags(cmd)
	if err != nil {
		return err
	}

	model := app.New(c, app.Options{
		CurrentUserID: usr.ID,
		Confirmer:     confirmer,
		OnUseEntity: func(e entity.Entity) error {
			return saveCurrentEntity(cmd, d, e)
		},
		Context: ctx,
	})

	slog.Debug("starting shell", "user", usr.ID)
	return d.RunProgram(model)
}

// confirmerFromFlags returns AutoConfirm under --yes and nil otherwise, which
// leaves confirmation to the page's dialog.
func confirmerFromFlags(cmd *cobra.Command) (pages.Confirmer, error) {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return nil, fmt.Errorf("error reading yes flag: %w", err)
	}
	if yes {
		return pages.AutoConfirm, nil
	}
	return nil, nil
}

func saveCurrentEntity(cmd *cobra.Command, d *internal.Deps, e entity.Entity) error {
	cfg, err := loadSessionConfig(cmd, d.LoadSessionConfig)
	if err != nil {
		return err
	}
	if err := cfg.SetEntity(e); err != nil {
		return err
	}
	if err := d.SaveSessionConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
