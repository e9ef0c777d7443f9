package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/operadoras/internal/dashboard"
	"github.com/gravitrone/operadoras/internal/format"
	"github.com/gravitrone/operadoras/internal/ui/components"
)

const defaultFrameWidth = 100

// frameRenderer receives every projection the controller pushes. The App
// holds it by pointer so bubbletea's value copies of the model share it.
type frameRenderer struct {
	view    dashboard.View
	renders int
}

func (r *frameRenderer) Render(v dashboard.View) {
	r.view = v
	r.renders++
}

// --- Table ---

func operatorColumns(width int) []components.TableColumn {
	const (
		flagW     = 1
		taxIDW    = 18
		regionW   = 4
		expensesW = 16
		seps      = 4
	)
	nameW := width - 1 - flagW - taxIDW - regionW - expensesW - seps
	if nameW < 8 {
		nameW = 8
	}
	return []components.TableColumn{
		{Header: "", Width: flagW, Align: lipgloss.Center},
		{Header: "CNPJ", Width: taxIDW},
		{Header: "Name", Width: nameW},
		{Header: "UF", Width: regionW, Align: lipgloss.Center},
		{Header: "Expenses", Width: expensesW, Align: lipgloss.Right},
	}
}

func renderOperatorTable(v dashboard.View, width, cursor int) string {
	inner := components.BoxContentWidth(width)
	if inner <= 0 {
		inner = defaultFrameWidth
	}
	cols := operatorColumns(inner)

	var body string
	suspect := 0
	if v.Empty {
		body = components.TableGridPlaceholder(cols, dashboard.NoResultsText, inner)
	} else {
		rows := make([][]string, 0, len(v.Rows))
		for _, r := range v.Rows {
			flag := ""
			if r.Suspect() {
				flag = components.SuspectMarker
				suspect++
			}
			rows = append(rows, []string{flag, r.TaxID, r.Name, r.Region, r.Expenses})
		}
		body = components.TableGrid(cols, rows, inner, clampCursor(cursor, len(v.Rows)))
	}

	footer := renderPagination(v.Pagination)
	if v.Query != "" {
		footer += AccentStyle.Render(fmt.Sprintf("  filter: %q", components.SanitizeOneLine(v.Query)))
	}
	if suspect > 0 {
		footer += WarningStyle.Render(fmt.Sprintf("  %s %d failed validation", components.SuspectMarker, suspect))
	}
	return components.TitledBox("Operators", body+"\n\n"+footer, width)
}

func renderPagination(p dashboard.Pagination) string {
	prev, next := " ", " "
	if p.CanPrev {
		prev = "←"
	}
	if p.CanNext {
		next = "→"
	}
	return MutedStyle.Render(prev+" ") + PageBadgeStyle.Render(p.Label) + MutedStyle.Render(" "+next)
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return -1
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// --- Panels ---

func renderStatistics(s dashboard.StatsView, width int) string {
	if !s.Loaded {
		return components.TitledBox("Statistics", MutedStyle.Render("Loading statistics..."), width)
	}
	rows := []components.TableRow{
		{Label: "Operators", Value: format.Count(s.Count)},
		{Label: "Total expenses", Value: s.Total},
		{Label: "Average", Value: s.Average},
	}
	for i, top := range s.Top {
		rows = append(rows, components.TableRow{
			Label: fmt.Sprintf("Top %d", i+1),
			Value: fmt.Sprintf("%s (%s) %s", top.Name, top.Region, top.Total),
		})
	}
	title := "Statistics"
	if s.Local {
		title = "Statistics (computed locally)"
	}
	return components.Table(title, rows, width)
}

func renderDetail(d *dashboard.DetailView, width int) string {
	rows := []components.TableRow{
		{Label: "CNPJ", Value: d.TaxID},
		{Label: "Name", Value: d.Name},
		{Label: "UF", Value: d.Region},
		{Label: "Expenses", Value: d.Expenses},
		{Label: "Aggregated", Value: d.Aggregated},
	}
	for _, h := range d.History {
		rows = append(rows, components.TableRow{Label: h.Period, Value: h.Expenses})
	}
	return components.Table("Operator details", rows, width)
}

func renderChart(c *dashboard.ChartView, width int) string {
	inner := components.BoxContentWidth(width)
	if inner <= 0 {
		inner = defaultFrameWidth
	}
	bars := make([]components.ChartBar, 0, len(c.Bars))
	for _, b := range c.Bars {
		bars = append(bars, components.ChartBar{Label: b.Region, Ratio: b.Ratio, Value: b.Label})
	}
	return components.TitledBox(c.Title, components.BarChart(bars, inner), width)
}

// renderFrame lays out every dashboard panel for v.
func renderFrame(v dashboard.View, width, cursor int) string {
	sections := make([]string, 0, 5)
	if v.Banner != "" {
		sections = append(sections, components.Banner("Offline", v.Banner, width))
	}
	sections = append(sections, renderStatistics(v.Stats, width))
	sections = append(sections, renderOperatorTable(v, width, cursor))
	if v.Detail != nil {
		sections = append(sections, renderDetail(v.Detail, width))
	}
	if v.Chart != nil {
		sections = append(sections, renderChart(v.Chart, width))
	}
	return strings.Join(sections, "\n")
}
