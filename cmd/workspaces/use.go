package workspaces

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/ui"
)

func buildUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [slug]",
		Short: "Switch to a different workspace",
		Long:  "Switch your current workspace. Without a slug, pick one from a list.",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Switch to acme
  workspaces use acme

  # Pick interactively
  workspaces use`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUse(cmd, args)
		},
	}
}

func runUse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := getDeps(ctx)
	if err != nil {
		return err
	}
	c, err := requireClient(d)
	if err != nil {
		return err
	}

	entities, err := c.ListEntities(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	var chosen entity.Entity
	if len(args) > 0 {
		e, ok := entity.FindBySlug(entities, args[0])
		if !ok {
			return fmt.Errorf("workspace '%s' not found", args[0])
		}
		chosen = e
	} else {
		current := ""
		if cfg, err := loadSessionConfig(cmd, d.LoadSessionConfig); err == nil {
			if e, ok := cfg.CurrentEntity(); ok {
				current = e.Slug
			}
		}
		options := entityOptions(entities, current)
		picked, err := d.Select("Choose a workspace", options)
		if err != nil {
			return err
		}
		e, ok := picked.(entity.Entity)
		if !ok {
			return fmt.Errorf("internal error: unexpected selection %T", picked)
		}
		chosen = e
	}

	if err := saveCurrentEntity(cmd, d, chosen); err != nil {
		return err
	}
	slog.Info("switched workspace", "entity", chosen.Slug)

	successMsg := lipgloss.NewStyle().
		Foreground(ui.LightGreen).
		Render(fmt.Sprintf("✓ Switched to %s", chosen.DisplayName))
	fmt.Fprintln(d.Stdout, successMsg)

	return nil
}

// entityOptions lists the personal workspace first, then organizations, each
// described by slug, kind and the caller's role.
func entityOptions(entities []entity.Entity, current string) []ui.SelectOption {
	personal, orgs := entity.Partition(entities)
	options := make([]ui.SelectOption, 0, len(personal)+len(orgs))
	for _, group := range [][]entity.Entity{personal, orgs} {
		for _, e := range group {
			kind := "organization"
			if e.IsPersonal() {
				kind = "personal"
			}
			options = append(options, ui.SelectOption{
				Label:       e.DisplayName,
				Description: fmt.Sprintf("%s · %s · %s", e.Slug, kind, e.Role),
				Current:     e.Slug == current,
				Value:       e,
			})
		}
	}
	return options
}
