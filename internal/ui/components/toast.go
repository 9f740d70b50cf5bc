package components

import "github.com/team-loco/workspaces/internal/ui"

// Toast is a one-line status shown at the bottom of a page until replaced or
// cleared.
type Toast struct {
	Text    string
	IsError bool
}

func InfoToast(text string) Toast {
	return Toast{Text: text}
}

func ErrorToast(text string) Toast {
	return Toast{Text: text, IsError: true}
}

func (t Toast) Empty() bool {
	return t.Text == ""
}

func (t Toast) View(theme ui.Theme) string {
	if t.Empty() {
		return ""
	}
	if t.IsError {
		return theme.ToastError.Render(t.Text)
	}
	return theme.Toast.Render(t.Text)
}
