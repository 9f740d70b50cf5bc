package workspaces

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/cmd/workspaces/internal"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/pages"
)

var errNoEntity = errors.New("no workspace selected - pass a slug or run 'workspaces use'")

func buildMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members [slug]",
		Short: "Manage members of a workspace",
		Long:  "Manage the members and pending invitations of an organization. Defaults to the current workspace.",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Manage members of the current workspace
  workspaces members

  # Print the members of acme
  workspaces members acme --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMembers(cmd, args)
		},
	}
	cmd.Flags().Bool("plain", false, "Print members instead of opening the interactive page")
	return cmd
}

func runMembers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := getDeps(ctx)
	if err != nil {
		return err
	}
	c, err := requireClient(d)
	if err != nil {
		return err
	}

	slug, err := entitySlug(cmd, d, args)
	if err != nil {
		return err
	}

	e, err := c.GetEntity(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return fmt.Errorf("error reading plain flag: %w", err)
	}
	if plain {
		return printMembers(ctx, d.Stdout, c, e)
	}

	usr, err := c.WhoAmI(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	confirmer, err := confirmerFromFlags(cmd)
	if err != nil {
		return err
	}

	page := pages.NewMembersManagementPage(c, e, usr.ID, pages.MembersOptions{
		Confirmer: confirmer,
		Context:   ctx,
	})
	return d.RunProgram(standalone(page))
}

// entitySlug returns the slug argument or the current profile's entity.
func entitySlug(cmd *cobra.Command, d *internal.Deps, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	cfg, err := loadSessionConfig(cmd, d.LoadSessionConfig)
	if err != nil {
		return "", err
	}
	if e, ok := cfg.CurrentEntity(); ok {
		return e.Slug, nil
	}
	return "", errNoEntity
}

func printMembers(ctx context.Context, w io.Writer, c internal.API, e entity.Entity) error {
	if e.IsPersonal() {
		fmt.Fprintln(w, "Personal workspaces cannot have additional members.")
		fmt.Fprintln(w, "Create an organization to collaborate with others.")
		return nil
	}

	members, err := c.ListMembers(ctx, e.Slug)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	fmt.Fprintf(w, "Current Members (%d):\n", len(members))
	for _, m := range members {
		fmt.Fprintf(w, "  - %s <%s> [%s]\n", m.Name(), m.Email, m.Role)
	}

	if !e.CanManage() {
		return nil
	}

	invitations, err := c.ListEntityInvitations(ctx, e.Slug)
	if err != nil {
		return fmt.Errorf("failed to list invitations: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pending Invitations:")
	if entity.PendingCount(invitations) == 0 {
		fmt.Fprintln(w, "  No pending invitations")
		return nil
	}
	for _, inv := range invitations {
		if inv.IsPending() {
			fmt.Fprintf(w, "  - %s [%s]\n", inv.Email, inv.Role)
		}
	}
	return nil
}
