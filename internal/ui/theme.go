package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Pages never hardcode colors; they go through a Theme.
var (
	Orange     = lipgloss.Color("#FF7A1A")
	Red        = lipgloss.Color("#D7263D")
	Green      = lipgloss.Color("#2ECC40")
	LightGreen = lipgloss.Color("#7DDE92")
	Cyan       = lipgloss.Color("#00BFFF")
	White      = lipgloss.Color("#FFFFFF")
	LightGray  = lipgloss.Color("#C8C8C8")
	MidGray    = lipgloss.Color("#8A8A8A")
	DimGray    = lipgloss.Color("#5F5F5F")
	DarkGray   = lipgloss.Color("#303030")
	Coal       = lipgloss.Color("#1C1C1C")
	Steel      = lipgloss.Color("#7A8A99")
)

// Theme is the set of styles the pages and components render with. Hosts can
// replace any of them.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Section     lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Badge       lipgloss.Style
	Button      lipgloss.Style
	Link        lipgloss.Style
	Dialog      lipgloss.Style
	Panel       lipgloss.Style
	EmptyState  lipgloss.Style
	Label       lipgloss.Style
	Toast       lipgloss.Style
	ToastError  lipgloss.Style
	HelpPadding lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Orange),
		Subtitle: lipgloss.NewStyle().Foreground(MidGray),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(White).MarginTop(1),
		Muted:    lipgloss.NewStyle().Foreground(MidGray),
		Error:    lipgloss.NewStyle().Foreground(Red),
		Success:  lipgloss.NewStyle().Foreground(LightGreen),
		Selected: lipgloss.NewStyle().Foreground(Green).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(DimGray),
		Badge:    lipgloss.NewStyle().Foreground(Coal).Background(Steel).Padding(0, 1),
		Button:   lipgloss.NewStyle().Foreground(White).Background(Orange).Padding(0, 1),
		Link:     lipgloss.NewStyle().Foreground(Cyan).Underline(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Orange).
			Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DimGray).
			Padding(0, 1),
		EmptyState: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DimGray).
			Foreground(MidGray).
			Padding(1, 4).
			Align(lipgloss.Center),
		Label:       lipgloss.NewStyle().Foreground(LightGray).Bold(true),
		Toast:       lipgloss.NewStyle().Foreground(LightGreen).Italic(true),
		ToastError:  lipgloss.NewStyle().Foreground(Red).Italic(true),
		HelpPadding: lipgloss.NewStyle().MarginTop(1),
	}
}
