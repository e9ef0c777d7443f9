package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gravitrone/operadoras/internal/dashboard"
	"github.com/gravitrone/operadoras/internal/format"
	"github.com/gravitrone/operadoras/internal/ui/components"
)

type section uint8

const (
	sectionList section = 1 << iota
	sectionStats
	sectionDetail
)

const chartWidth = 60

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	rightStyle  = cellStyle.Align(lipgloss.Right)
)

// textRenderer writes the selected sections of a View as plain tables.
type textRenderer struct {
	w        io.Writer
	sections section
}

func newTextRenderer(w io.Writer, sections section) *textRenderer {
	return &textRenderer{w: w, sections: sections}
}

func (r *textRenderer) Render(v dashboard.View) {
	if r.sections&sectionStats != 0 && v.Stats.Loaded {
		r.writeStats(v.Stats)
	}
	if r.sections&sectionList != 0 {
		r.writeList(v)
	}
	if r.sections&sectionDetail != 0 && v.Detail != nil {
		r.writeDetail(v.Detail)
		if v.Chart != nil {
			r.writeChart(v.Chart)
		}
	}
}

func (r *textRenderer) writeList(v dashboard.View) {
	if v.Empty {
		fmt.Fprintln(r.w, dashboard.NoResultsText)
		fmt.Fprintln(r.w, v.Pagination.Label)
		return
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		flag := ""
		if row.Suspect() {
			flag = components.SuspectMarker
		}
		rows = append(rows, []string{flag, row.TaxID, clean(row.Name), row.Region, row.Expenses})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "CNPJ", "NAME", "UF", "EXPENSES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4:
				return rightStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(r.w, t.Render())
	fmt.Fprintln(r.w, v.Pagination.Label)
}

func (r *textRenderer) writeStats(s dashboard.StatsView) {
	rows := [][]string{
		{"Operators", format.Count(s.Count)},
		{"Total expenses", s.Total},
		{"Average", s.Average},
	}
	for i, top := range s.Top {
		rows = append(rows, []string{fmt.Sprintf("Top %d", i+1), fmt.Sprintf("%s (%s) %s", clean(top.Name), top.Region, top.Total)})
	}
	r.writeKeyValues(rows)
	if s.Local {
		fmt.Fprintln(r.w, "(computed locally from the operator list)")
	}
}

func (r *textRenderer) writeDetail(d *dashboard.DetailView) {
	rows := [][]string{
		{"CNPJ", d.TaxID},
		{"Name", clean(d.Name)},
		{"UF", d.Region},
		{"Expenses", d.Expenses},
		{"Aggregated", d.Aggregated},
	}
	for _, h := range d.History {
		rows = append(rows, []string{h.Period, h.Expenses})
	}
	r.writeKeyValues(rows)
}

func (r *textRenderer) writeChart(c *dashboard.ChartView) {
	bars := make([]components.ChartBar, 0, len(c.Bars))
	for _, b := range c.Bars {
		bars = append(bars, components.ChartBar{Label: b.Region, Ratio: b.Ratio, Value: b.Label})
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, c.Title)
	fmt.Fprintln(r.w, components.Indent(components.BarChart(bars, chartWidth), 2))
}

func (r *textRenderer) writeKeyValues(rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(r.w, strings.TrimRight(t.Render(), "\n"))
}

func clean(s string) string {
	return components.SanitizeOneLine(s)
}
