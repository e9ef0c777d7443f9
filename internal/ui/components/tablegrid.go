package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a single column for TableGrid.
//
// Width is the visual width of the column content (excluding separators).
// Align controls how cell text is aligned within the column.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// SuspectMarker flags rows that failed validation.
const SuspectMarker = "!"

const tableGridLeftOffset = 1

var gridLineStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#273540"))

var gridActiveRowStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#d7d9da")).
	Background(lipgloss.Color("#1f2530")).
	Bold(true)

var gridActiveSepStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#273540")).
	Background(lipgloss.Color("#1f2530"))

var gridSuspectMarkStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#c78854")).
	Bold(true)

var gridPlaceholderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#9ba0bf")).
	Italic(true)

// TableGrid renders a header, a rule and rows separated by rounded border glyphs.
// activeRow is a 0-based index into rows to highlight; pass -1 to disable.
//
// The returned string has a visual width equal to tableWidth.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	v, cross, h := gridGlyphs()
	cols := fitGridColumns(columns, v, tableWidth)

	out := make([]string, 0, len(rows)+2)
	out = append(out, renderGridRow(cols, headerCells(cols), v, tableWidth, true, false))
	out = append(out, renderGridRule(cols, cross, h, tableWidth))
	for i, row := range rows {
		out = append(out, renderGridRow(cols, row, v, tableWidth, false, i == activeRow))
	}
	return strings.Join(out, "\n")
}

// TableGridPlaceholder renders the header and rule followed by a single
// centered line of text spanning all columns.
func TableGridPlaceholder(columns []TableColumn, text string, tableWidth int) string {
	if tableWidth <= 0 {
		return ""
	}
	v, cross, h := gridGlyphs()
	cols := fitGridColumns(columns, v, tableWidth)

	inner := tableWidth - tableGridLeftOffset
	line := strings.Repeat(" ", tableGridLeftOffset) + renderGridCell(text, inner, lipgloss.Center)
	return strings.Join([]string{
		renderGridRow(cols, headerCells(cols), v, tableWidth, true, false),
		renderGridRule(cols, cross, h, tableWidth),
		"",
		gridPlaceholderStyle.Render(line),
		"",
	}, "\n")
}

func gridGlyphs() (vertical, cross, horizontal string) {
	border := lipgloss.RoundedBorder()
	vertical, cross, horizontal = border.Left, border.Middle, border.Top
	if vertical == "" {
		vertical = "|"
	}
	if cross == "" {
		cross = "+"
	}
	if horizontal == "" {
		horizontal = "-"
	}
	return vertical, cross, horizontal
}

func headerCells(columns []TableColumn) []string {
	hdr := make([]string, len(columns))
	for i, c := range columns {
		hdr[i] = SanitizeOneLine(c.Header)
	}
	return hdr
}

// fitGridColumns stretches or shrinks the last column so the row fills tableWidth.
func fitGridColumns(columns []TableColumn, sep string, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	sepW := lipgloss.Width(sep)
	if sepW < 1 {
		sepW = 1
	}
	contentWidth := tableWidth - tableGridLeftOffset
	if contentWidth < len(fitted) {
		contentWidth = len(fitted)
	}

	sum := 0
	for i := range fitted {
		if fitted[i].Width < 1 {
			fitted[i].Width = 1
		}
		sum += fitted[i].Width
	}
	expected := sum
	if len(fitted) > 1 {
		expected += (len(fitted) - 1) * sepW
	}
	if delta := contentWidth - expected; len(fitted) > 0 && delta != 0 {
		fitted[len(fitted)-1].Width += delta
		if fitted[len(fitted)-1].Width < 1 {
			fitted[len(fitted)-1].Width = 1
		}
	}
	return fitted
}

func renderGridRow(columns []TableColumn, cells []string, sep string, tableWidth int, header bool, active bool) string {
	sepStyle := gridLineStyle
	if active {
		sepStyle = gridActiveSepStyle
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", tableGridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}

		rendered := renderGridCell(text, col.Width, col.Align)
		switch {
		case header:
			rendered = boxLabelStyle.Bold(true).Inline(true).Render(rendered)
		case active:
			rendered = gridActiveRowStyle.Inline(true).Render(rendered)
		}
		if !header && strings.TrimSpace(text) == SuspectMarker {
			rendered = strings.Replace(rendered, SuspectMarker, gridSuspectMarkStyle.Render(SuspectMarker), 1)
		}
		b.WriteString(rendered)
	}

	line := b.String()
	if lipgloss.Width(line) < tableWidth {
		line = padRight(line, tableWidth)
	}
	return line
}

func renderGridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", tableGridLeftOffset))
	for i, col := range columns {
		w := col.Width
		if w < 1 {
			w = 1
		}
		b.WriteString(strings.Repeat(horiz, w))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	line := b.String()
	if lipgloss.Width(line) < tableWidth {
		line = padRight(line, tableWidth)
	}
	return gridLineStyle.Inline(true).Render(line)
}

func renderGridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}

	clamped := ClampTextWidth(text, width)
	w := lipgloss.Width(clamped)
	if w >= width {
		return clamped
	}

	pad := width - w
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
