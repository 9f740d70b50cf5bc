package workspaces

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/internal/entity"
)

func buildListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your workspaces",
		Long:  "List your personal workspace and the organizations you belong to.",
		Args:  cobra.NoArgs,
		Example: `  # List all your workspaces
  workspaces list`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			var current string
			if cfg, err := loadSessionConfig(cmd, d.LoadSessionConfig); err == nil {
				if e, ok := cfg.CurrentEntity(); ok {
					current = e.Slug
				}
			}

			printEntities(d.Stdout, entities, current)
			return nil
		},
	}
}

func printEntities(w io.Writer, entities []entity.Entity, current string) {
	personal, orgs := entity.Partition(entities)

	if len(personal) > 0 {
		fmt.Fprintln(w, "Personal Workspace:")
		for _, e := range personal {
			printEntity(w, e, current)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Organizations:")
	if len(orgs) == 0 {
		fmt.Fprintln(w, "  No organizations yet.")
		return
	}
	for _, e := range orgs {
		printEntity(w, e, current)
	}
}

func printEntity(w io.Writer, e entity.Entity, current string) {
	marker := " "
	if e.Slug == current {
		marker = "*"
	}
	fmt.Fprintf(w, "%s %s (%s) [%s]\n", marker, e.DisplayName, e.Slug, e.Role)
}
