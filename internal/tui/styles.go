package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader   = lipgloss.Color("39")  // Bright blue
	ColorLabel    = lipgloss.Color("245") // Gray
	ColorValue    = lipgloss.Color("255") // White
	ColorSelected = lipgloss.Color("212") // Pink
	ColorMuted    = lipgloss.Color("240") // Dark gray
	ColorError    = lipgloss.Color("196") // Red
	ColorOK       = lipgloss.Color("42")  // Green
	ColorBorder   = lipgloss.Color("63")  // Purple
)

// Glyphs.
const (
	IconCursor   = "▸"
	IconEllipsis = "…"
)

//nolint:gochecknoglobals // shared lipgloss styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	IndexStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ItemStyle = lipgloss.NewStyle().Foreground(ColorValue)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSelected)

	StatusStyle = lipgloss.NewStyle().Foreground(ColorOK)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorBorder)
)
