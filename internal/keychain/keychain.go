// Package keychain stores the CLI's API token in the OS keyring.
package keychain

import (
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/zalando/go-keyring"
)

const service = "workspaces"

var ErrNotFound = errors.New("no token stored")

// UserToken is the stored credential for one OS user.
type UserToken struct {
	Token string `json:"token"`
	// ExpiresAt is zero for tokens without an expiry.
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether t expires within leeway of now.
func (t UserToken) Expired(now time.Time, leeway time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return t.ExpiresAt.Before(now.Add(leeway))
}

func GetToken(user string) (*UserToken, error) {
	raw, err := keyring.Get(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring: %w", err)
	}

	var t UserToken
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, fmt.Errorf("failed to decode stored token: %w", err)
	}
	return &t, nil
}

func SetToken(user string, t UserToken) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := keyring.Set(service, user, string(raw)); err != nil {
		return fmt.Errorf("failed to write keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the stored token. Deleting a missing token is not an
// error.
func DeleteToken(user string) error {
	err := keyring.Delete(service, user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
