package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var LoadingSpinner = spinner.Spinner{
	Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	FPS:    time.Second / 10,
}

// NewSpinner returns the spinner shown while a page is loading.
func NewSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(LoadingSpinner),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(Cyan)),
	)
}
