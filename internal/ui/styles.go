package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#7f57b4") // purple
	ColorSecondary  = lipgloss.Color("#436b77") // teal
	ColorAccent     = lipgloss.Color("#a7754e") // warm
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorWarning    = lipgloss.Color("#c78854") // warning
	ColorBorder     = lipgloss.Color("#273540") // border
)

// --- Reusable Styles ---

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	PageBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)
