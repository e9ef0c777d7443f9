package dashboard

import (
	"fmt"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/format"
)

// Placeholder texts shown by every renderer.
const (
	NoResultsText    = "No operators found"
	NoAggregatedText = "No aggregated data available"
	ListFailedText   = "Could not reach the API. Make sure the server is running; showing sample data."
)

// Renderer draws a View. Every View passed to Render is freshly built, so
// implementations may keep it.
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(View)

func (f RendererFunc) Render(v View) { f(v) }

// View is the plain-data projection of the dashboard state.
type View struct {
	Query   string
	Loading bool
	// Banner is non-empty while the last list load failed.
	Banner string

	Rows       []Row
	Empty      bool
	Pagination Pagination
	Stats      StatsView

	Detail *DetailView
	Chart  *ChartView
}

// Row is one formatted table row.
type Row struct {
	CNPJ     string
	TaxID    string
	Name     string
	Region   string
	Expenses string
	Issues   []string
}

// Suspect reports whether validation flagged the row.
func (r Row) Suspect() bool {
	return len(r.Issues) > 0
}

// Pagination is the page label and navigation state.
type Pagination struct {
	Current int
	Total   int
	Label   string
	CanPrev bool
	CanNext bool
}

// StatsView is the formatted statistics panel.
type StatsView struct {
	Loaded  bool
	Local   bool
	Count   int
	Total   string
	Average string
	Top     []TopRow
}

// TopRow is one entry of the top operators list served with the statistics.
type TopRow struct {
	Name   string
	Region string
	Total  string
}

// DetailView is the formatted detail panel of the selected operator.
type DetailView struct {
	CNPJ          string
	TaxID         string
	Name          string
	Region        string
	Expenses      string
	HasAggregated bool
	Aggregated    string
	History       []HistoryRow
}

// HistoryRow is one period of the selected operator's expense history.
type HistoryRow struct {
	Period   string
	Expenses string
}

func projectRows(ops []api.Operator) []Row {
	rows := make([]Row, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, Row{
			CNPJ:     op.CNPJ.String(),
			TaxID:    format.TaxID(op.CNPJ.String()),
			Name:     op.RazaoSocial,
			Region:   op.UF,
			Expenses: format.Currency(op.ValorDespesas),
			Issues:   Validate(op),
		})
	}
	return rows
}

func projectPagination(page, count int) Pagination {
	return Pagination{
		Current: page,
		Total:   count,
		Label:   fmt.Sprintf("Page %d of %d", page, count),
		CanPrev: CanGoPrev(page),
		CanNext: CanGoNext(page, count),
	}
}

func projectStats(stats api.Statistics, loaded, local bool) StatsView {
	if !loaded {
		return StatsView{}
	}
	view := StatsView{
		Loaded:  true,
		Local:   local,
		Count:   stats.TotalOperadoras,
		Total:   format.Currency(stats.TotalDespesas),
		Average: format.Currency(stats.MediaDespesas),
	}
	for _, top := range stats.TopOperadoras {
		view.Top = append(view.Top, TopRow{
			Name:   top.RazaoSocial,
			Region: top.UF,
			Total:  format.Currency(top.TotalDespesas),
		})
	}
	return view
}

func projectDetail(d *api.OperatorDetail, history []api.ExpenseRecord) *DetailView {
	if d == nil {
		return nil
	}
	view := &DetailView{
		CNPJ:       d.CNPJ.String(),
		TaxID:      format.TaxID(d.CNPJ.String()),
		Name:       d.RazaoSocial,
		Region:     d.UF,
		Expenses:   format.Currency(d.Despesas),
		Aggregated: NoAggregatedText,
	}
	if len(d.Agregado) > 0 {
		view.HasAggregated = true
		view.Aggregated = "Consolidated total: " + format.Currency(d.Agregado[0].TotalDespesas)
	}
	for _, rec := range history {
		view.History = append(view.History, HistoryRow{
			Period:   PeriodLabel(rec),
			Expenses: format.Currency(rec.ValorDespesas),
		})
	}
	return view
}

// PeriodLabel names the period of rec: "2024 Q1", "2024", or "-".
func PeriodLabel(rec api.ExpenseRecord) string {
	switch {
	case rec.Ano > 0 && rec.Trimestre > 0:
		return fmt.Sprintf("%d Q%d", rec.Ano, rec.Trimestre)
	case rec.Ano > 0:
		return fmt.Sprintf("%d", rec.Ano)
	default:
		return "-"
	}
}
