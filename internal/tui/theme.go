package tui

import "github.com/charmbracelet/lipgloss"

// Color palette, warm tones of a paper card index.
var (
	Amber    = lipgloss.Color("#ffaf5f")
	DimAmber = lipgloss.Color("#875f2f")
	Cream    = lipgloss.Color("#ffd7af")
	Red      = lipgloss.Color("#ff5f5f")
	Green    = lipgloss.Color("#5faf5f")
	Gray     = lipgloss.Color("#8a8a8a")
)

// Shared styles
var (
	TitleStyle     = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	FormTitleStyle = lipgloss.NewStyle().Foreground(Cream).Bold(true)
	LabelStyle     = lipgloss.NewStyle().Foreground(Amber)
	ErrorStyle     = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle   = lipgloss.NewStyle().Foreground(Green)
	HelpStyle      = lipgloss.NewStyle().Foreground(Gray)
	StatusStyle    = lipgloss.NewStyle().Foreground(DimAmber)

	// CardStyle frames a single contact the way a drawer card would look.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimAmber).
			Padding(0, 1)
)
