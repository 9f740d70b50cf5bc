package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"github.com/team-loco/workspaces/internal/config"
	"github.com/team-loco/workspaces/internal/keychain"
)

const DefaultHost = "https://api.workspaces.dev"

// tokenLeeway is how close to expiry a stored token may be and still be used.
const tokenLeeway = 5 * time.Minute

var ErrLoginRequired = errors.New("login required - please run 'workspaces login'")

// GetHost resolves the API host from flag > environment (or .env) > profile > default.
func GetHost(cmd *cobra.Command, env config.Env, cfg *config.SessionConfig) (string, error) {
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return "", fmt.Errorf("error reading host flag: %w", err)
	}
	if host != "" {
		slog.Debug("using host from flag")
		return host, nil
	}

	if env.Host != "" {
		slog.Debug("using host from environment")
		return env.Host, nil
	}

	if cfg != nil {
		if p, err := cfg.GetProfile(); err == nil && p.Host != "" {
			slog.Debug("using host from profile", "profile", cfg.CurrentProfile)
			return p.Host, nil
		}
	}

	slog.Debug("defaulting to prod url")
	return DefaultHost, nil
}

// CurrentUserName is the OS user the keychain entry belongs to.
func CurrentUserName() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return usr.Username, nil
}

// GetToken resolves the API token from the environment, then the keychain.
func GetToken(env config.Env) (string, error) {
	if env.Token != "" {
		slog.Debug("using token from environment")
		return env.Token, nil
	}

	name, err := CurrentUserName()
	if err != nil {
		return "", err
	}

	t, err := keychain.GetToken(name)
	if err != nil {
		slog.Debug("failed to get token from keychain", "error", err)
		return "", ErrLoginRequired
	}
	if t.Expired(time.Now(), tokenLeeway) {
		slog.Debug("token is expired or will expire soon", "expires_at", t.ExpiresAt)
		return "", fmt.Errorf("token is expired or will expire soon: %w", ErrLoginRequired)
	}
	return t.Token, nil
}
