package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(0, 1)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	boxValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	bannerBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(0, 1)

	bannerHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)

	bannerBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))
)

func boxWidth(width int) int {
	// Use ~90% of terminal width, capped at 110
	if width <= 0 {
		return 0
	}
	w := width * 90 / 100
	if w < 40 {
		w = 40
	}
	if w > 110 {
		w = 110
	}
	return w
}

func safeBoxWidth(width int) int {
	if width <= 0 {
		return boxWidth(width)
	}
	w := boxWidth(width)
	if w > width {
		return width
	}
	return w
}

// styleWidth is the Width to give style so that its rendered block, border
// included, spans safeBoxWidth(width). Style.Width excludes the border.
func styleWidth(style lipgloss.Style, width int) int {
	w := safeBoxWidth(width)
	if w <= 0 {
		return 0
	}
	w -= style.GetHorizontalBorderSize()
	if w < 1 {
		return 1
	}
	return w
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(styleWidth(boxBorder, width)).Render(content)
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	w := styleWidth(boxBorder, width)
	if w <= 0 {
		return 0
	}
	inner := w - boxBorder.GetHorizontalPadding()
	if inner < 0 {
		return 0
	}
	return inner
}

// ClampTextWidth truncates text to the given visual width (ANSI-aware).
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// Banner renders a red bordered warning that stays on screen until cleared.
func Banner(title, message string, width int) string {
	header := ""
	if title != "" {
		header = bannerHeaderStyle.Render(title) + "  "
	}
	body := bannerBodyStyle.Render(SanitizeOneLine(message))
	return bannerBorder.Width(styleWidth(bannerBorder, width)).Render(header + body)
}

// TitledBox renders a box with a header title.
func TitledBox(title, content string, width int) string {
	if title == "" {
		return boxBorder.Width(styleWidth(boxBorder, width)).Render(content)
	}
	boxed := boxBorder.Width(styleWidth(boxBorder, width)).Render(content)
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title))
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	titleWidth := lipgloss.Width(titleText)
	left := (middleLen - titleWidth) / 2
	right := middleLen - titleWidth - left

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#273540"))
	line := borderStyle.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)

	lines[0] = line
	return strings.Join(lines, "\n")
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders a key-value table with aligned columns inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(SanitizeOneLine(r.Label)); w > labelWidth {
			labelWidth = w
		}
	}
	contentWidth := BoxContentWidth(width)
	if contentWidth <= 0 {
		contentWidth = labelWidth + 40
	}
	if labelWidth > contentWidth/2 {
		labelWidth = contentWidth / 2
	}
	valueWidth := contentWidth - labelWidth - 2
	if valueWidth < 4 {
		valueWidth = 4
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := boxLabelStyle.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		lines = append(lines, label+"  "+boxValueStyle.Render(ClampTextWidth(r.Value, valueWidth)))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
