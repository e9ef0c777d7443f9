package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartBar is one labelled horizontal bar. Ratio is the bar length relative
// to the largest bar, in [0, 1].
type ChartBar struct {
	Label string
	Ratio float64
	Value string
}

const barGlyph = "█"

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4"))
	barLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)
	barValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))
)

// BarChart renders bars one per line as "LABEL ████████ VALUE" within width.
func BarChart(bars []ChartBar, width int) string {
	if len(bars) == 0 {
		return ""
	}

	labelWidth, valueWidth := 0, 0
	for _, b := range bars {
		if w := lipgloss.Width(SanitizeOneLine(b.Label)); w > labelWidth {
			labelWidth = w
		}
		if w := lipgloss.Width(SanitizeOneLine(b.Value)); w > valueWidth {
			valueWidth = w
		}
	}
	track := width - labelWidth - valueWidth - 2
	if track < 1 {
		track = 1
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		n := barLength(b.Ratio, track)
		bar := barStyle.Render(strings.Repeat(barGlyph, n)) + strings.Repeat(" ", track-n)
		lines = append(lines,
			barLabelStyle.Render(padRight(SanitizeOneLine(b.Label), labelWidth))+" "+
				bar+" "+
				barValueStyle.Render(SanitizeOneLine(b.Value)))
	}
	return strings.Join(lines, "\n")
}

// barLength maps ratio onto track cells. Any positive ratio gets at least one cell.
func barLength(ratio float64, track int) int {
	if ratio <= 0 || math.IsNaN(ratio) {
		return 0
	}
	if ratio > 1 {
		ratio = 1
	}
	n := int(math.Round(ratio * float64(track)))
	if n < 1 {
		n = 1
	}
	return n
}
