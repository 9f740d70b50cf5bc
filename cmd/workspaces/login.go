package workspaces

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/cmd/workspaces/internal"
	"github.com/team-loco/workspaces/internal/keychain"
	"github.com/team-loco/workspaces/internal/ui"
)

func buildLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token in the OS keychain",
		Long:  "Verify an API token against the server and store it in the OS keychain.",
		Args:  cobra.NoArgs,
		Example: `  # Log in with a token valid for a day
  workspaces login --token $TOKEN --ttl 24h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := getDeps(ctx)
			if err != nil {
				return err
			}

			token, err := cmd.Flags().GetString("token")
			if err != nil {
				return fmt.Errorf("error reading token flag: %w", err)
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("token is required. Use --token flag")
			}
			ttl, err := cmd.Flags().GetDuration("ttl")
			if err != nil {
				return fmt.Errorf("error reading ttl flag: %w", err)
			}

			usr, err := d.NewClient(d.Host, token).WhoAmI(ctx)
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			name, err := internal.CurrentUserName()
			if err != nil {
				return err
			}
			stored := keychain.UserToken{Token: token}
			if ttl > 0 {
				stored.ExpiresAt = time.Now().Add(ttl)
			}
			if err := keychain.SetToken(name, stored); err != nil {
				return err
			}
			slog.Info("logged in", "user", usr.ID)

			checkmark := lipgloss.NewStyle().Foreground(ui.Green).Render("✔")
			message := lipgloss.NewStyle().Bold(true).Foreground(ui.Orange).Render("Logged in as " + displayName(usr.DisplayName, usr.Email))
			fmt.Fprintf(d.Stdout, "%s %s\n", checkmark, message)
			return nil
		},
	}
	cmd.Flags().String("token", "", "API token")
	cmd.Flags().Duration("ttl", 0, "Forget the token after this long (0 keeps it)")
	return cmd
}

func buildLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := getDeps(cmd.Context())
			if err != nil {
				return err
			}

			name, err := internal.CurrentUserName()
			if err != nil {
				return err
			}
			if err := keychain.DeleteToken(name); err != nil {
				return err
			}

			fmt.Fprintln(d.Stdout, lipgloss.NewStyle().Foreground(ui.LightGray).Render("Logged out"))
			return nil
		},
	}
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
