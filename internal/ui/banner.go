package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle    = "OPERADORAS"
	headerSubtitle = "Health-insurance operator expenses • Terminal Dashboard"
)

// RenderBanner returns the dashboard header: spaced title, subtitle and rule.
func RenderBanner() string {
	title := TitleStyle.Render(spaced(headerTitle))

	blockWidth := lipgloss.Width(title)
	if w := lipgloss.Width(headerSubtitle); w > blockWidth {
		blockWidth = w
	}

	title = lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center).Render(title)
	subtitle := MutedStyle.Width(blockWidth).Align(lipgloss.Center).Render(headerSubtitle)
	underline := DividerStyle.Width(blockWidth).Align(lipgloss.Center).
		Render(strings.Repeat("─", lipgloss.Width(headerSubtitle)))

	return "\n" + title + "\n" + subtitle + "\n" + underline + "\n"
}

// spaced puts a space between letters, "ABC" -> "A B C".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
