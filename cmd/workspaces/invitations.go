package workspaces

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/internal/entity"
	"github.com/team-loco/workspaces/internal/pages"
)

func buildInvitationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "Review invitations addressed to you",
		Long:  "Accept or decline invitations to join organizations.",
		Args:  cobra.NoArgs,
		Example: `  # Review your invitations
  workspaces invitations

  # Print them instead
  workspaces invitations --plain`,
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

			plain, err := cmd.Flags().GetBool("plain")
			if err != nil {
				return fmt.Errorf("error reading plain flag: %w", err)
			}
			if plain {
				invitations, err := c.ListMyInvitations(ctx)
				if err != nil {
					return fmt.Errorf("failed to list invitations: %w", err)
				}
				printInvitations(d.Stdout, invitations)
				return nil
			}

			page := pages.NewInvitationsPage(c, pages.InvitationsOptions{Context: ctx})
			return d.RunProgram(standalone(page))
		},
	}
	cmd.Flags().Bool("plain", false, "Print invitations instead of opening the interactive page")
	return cmd
}

func printInvitations(w io.Writer, invitations []entity.Invitation) {
	fmt.Fprintln(w, entity.PendingSummary(entity.PendingCount(invitations)))
	for _, inv := range invitations {
		if !inv.IsPending() {
			continue
		}
		name := inv.EntityName
		if name == "" {
			name = inv.EntitySlug
		}
		fmt.Fprintf(w, "  - %s as %s", name, inv.Role)
		if inv.InvitedBy != "" {
			fmt.Fprintf(w, " from %s", inv.InvitedBy)
		}
		fmt.Fprintln(w)
	}
}
