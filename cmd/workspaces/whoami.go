package workspaces

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/internal/client"
	"github.com/team-loco/workspaces/internal/ui"
)

func buildWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "displays information on the logged in user",
		Args:  cobra.NoArgs,
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

			usr, err := c.WhoAmI(ctx)
			if err != nil {
				return fmt.Errorf("failed to get user info: %w", err)
			}

			current := "none"
			if cfg, err := loadSessionConfig(cmd, d.LoadSessionConfig); err == nil {
				if e, ok := cfg.CurrentEntity(); ok {
					current = fmt.Sprintf("%s (%s)", e.DisplayName, e.Slug)
				}
			}

			renderCard(d.Stdout, usr, d.Host, current)
			return nil
		},
	}
}

func renderCard(w io.Writer, usr client.User, host, currentEntity string) {
	borderColor := ui.Orange

	greeting := lipgloss.NewStyle().
		Bold(true).
		Foreground(borderColor).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("👋  Hi, %s!", displayName(usr.DisplayName, usr.Email)))

	labelStyle := lipgloss.NewStyle().
		Foreground(ui.MidGray).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(ui.White)

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			labelStyle.Render(label+": "),
			valueStyle.Render(value),
		)
	}

	rows := []string{
		row("Email", usr.Email),
		row("User ID", usr.ID),
		row("Host", host),
		row("Workspace", currentEntity),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		greeting,
		"",
		body,
	)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 5).
		MaxWidth(200).
		Align(lipgloss.Left)

	fmt.Fprintln(w, cardStyle.Render(content))
}
