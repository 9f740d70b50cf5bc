package client

import (
	"errors"
	"strings"

	"connectrpc.com/connect"
)

var ErrEntityNotFound = errors.New("entity not found")

// ErrorMessage returns a message fit for showing to the user. It prefers the
// server's message on connect errors and falls back when err carries none.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var cErr *connect.Error
	if errors.As(err, &cErr) {
		if msg := strings.TrimSpace(cErr.Message()); msg != "" {
			return msg
		}
		return fallback
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
