package workspaces

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/cmd/workspaces/internal"
	"github.com/team-loco/workspaces/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logPath   string
	startTime time.Time
)

type depsKey struct{}

func withDeps(ctx context.Context, deps *internal.Deps) context.Context {
	return context.WithValue(ctx, depsKey{}, deps)
}

func getDeps(ctx context.Context) (*internal.Deps, error) {
	deps, _ := ctx.Value(depsKey{}).(*internal.Deps)
	if deps == nil {
		return nil, fmt.Errorf("internal error: deps not initialized")
	}
	return deps, nil
}

// NewRootCmd builds the CLI with real dependencies, resolved once flags are
// parsed.
func NewRootCmd() *cobra.Command {
	return buildRootCmd(nil)
}

// NewRootCmdWithDeps builds the CLI with pre-built deps (for testing).
func NewRootCmdWithDeps(deps *internal.Deps) *cobra.Command {
	return buildRootCmd(deps)
}

func buildRootCmd(deps *internal.Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "workspaces",
		Short: "Manage your workspaces, members and invitations",
		Long: `Browse personal and organization workspaces, manage members and
respond to invitations. Run without a subcommand to open the interactive shell.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			startTime = time.Now()

			if deps != nil {
				cmd.SetContext(withDeps(cmd.Context(), deps))
				return nil
			}

			if err := initLogger(cmd); err != nil {
				fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
				os.Exit(1)
			}

			d, err := resolveDeps(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(withDeps(cmd.Context(), d))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			slog.Info(
				"command finished",
				"command", cmd.Name(),
				"duration", time.Since(startTime),
			)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}

	root.PersistentFlags().String("host", "", "Set the host URL")
	root.PersistentFlags().StringP("profile", "p", "", "Config profile to use")
	root.PersistentFlags().BoolP("yes", "y", false, "Remove members without asking for confirmation")

	root.AddCommand(
		buildShellCmd(),
		buildListCmd(),
		buildMembersCmd(),
		buildInvitationsCmd(),
		buildUseCmd(),
		buildLoginCmd(),
		buildLogoutCmd(),
		buildWhoAmICmd(),
	)

	return root
}

func resolveDeps(cmd *cobra.Command) (*internal.Deps, error) {
	env, err := config.LoadEnv(config.EnvFileName)
	if err != nil {
		return nil, err
	}

	cfg, err := loadSessionConfig(cmd, config.Load)
	if err != nil {
		slog.Debug("failed to load config", "error", err)
	}

	host, err := internal.GetHost(cmd, env, cfg)
	if err != nil {
		return nil, err
	}

	token, err := internal.GetToken(env)
	if err != nil && !errors.Is(err, internal.ErrLoginRequired) {
		return nil, err
	}

	return internal.NewDeps(host, token), nil
}

// loadSessionConfig loads the config and applies the --profile flag.
func loadSessionConfig(cmd *cobra.Command, load func() (*config.SessionConfig, error)) (*config.SessionConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	profile, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, fmt.Errorf("error reading profile flag: %w", err)
	}
	if profile != "" {
		if _, err := cfg.UseProfile(profile); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func requireClient(d *internal.Deps) (internal.API, error) {
	if d.Client == nil {
		return nil, internal.ErrLoginRequired
	}
	return d.Client, nil
}

func initLogger(cmd *cobra.Command) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}

	logPath = filepath.Join(dir, "workspaces.log")

	output := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    2, // megabytes
		MaxBackups: 0,
		MaxAge:     30, // days
		Compress:   false,
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	slog.Info(
		"new run",
		"version", cmd.Root().Version,
		"args", os.Args,
	)
	return nil
}
