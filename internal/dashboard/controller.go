package dashboard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/format"
)

// Source is the part of the API client the dashboard reads from.
// ListOperators and GetOperator return fallback data alongside any error.
type Source interface {
	ListOperators(ctx context.Context, limit int) ([]api.Operator, error)
	GetOperator(ctx context.Context, cnpj string) (*api.OperatorDetail, error)
	GetStatistics(ctx context.Context) (*api.Statistics, error)
	ListExpenseHistory(ctx context.Context, cnpj string) ([]api.ExpenseRecord, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the renderer invoked after every state change.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithLogger sets the logger for degraded-mode diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger.With().Str("component", "dashboard").Logger() }
}

// WithListLimit sets how many operators the list request asks for.
func WithListLimit(limit int) Option {
	return func(c *Controller) { c.limit = limit }
}

// Controller owns the dashboard state: the full and filtered operator sets,
// the query, the current page and the selected detail. State only changes
// through its methods, and each change is followed by a render.
//
// A Controller is not safe for concurrent use; drive it from one goroutine
// (the bubbletea Update loop, or a CLI command).
type Controller struct {
	source   Source
	renderer Renderer
	logger   zerolog.Logger
	limit    int

	full     []api.Operator
	filtered []api.Operator
	query    string
	page     int

	detail  *api.OperatorDetail
	history []api.ExpenseRecord

	stats       api.Statistics
	statsLoaded bool
	statsLocal  bool

	banner  string
	loading bool
}

// NewController creates a controller with an empty operator set.
func NewController(source Source, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		logger:   zerolog.Nop(),
		limit:    api.DefaultListLimit,
		page:     1,
		filtered: []api.Operator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Synchronous loaders ---

// Load fetches the operator list and then the statistics. It returns the
// list error, if any, after the fallback rows have been applied.
func (c *Controller) Load(ctx context.Context) error {
	err := c.LoadList(ctx)
	c.LoadStatistics(ctx)
	return err
}

// LoadList fetches the operator list only.
func (c *Controller) LoadList(ctx context.Context) error {
	c.SetLoading(true)
	ops, err := c.source.ListOperators(ctx, c.limit)
	c.ApplyList(ops, err)
	return err
}

// LoadStatistics fetches the statistics, deriving them locally on failure.
func (c *Controller) LoadStatistics(ctx context.Context) {
	stats, err := c.source.GetStatistics(ctx)
	c.ApplyStatistics(stats, err)
}

// SelectOperator fetches and selects one operator's detail, then its history.
func (c *Controller) SelectOperator(ctx context.Context, cnpj string) error {
	c.SetLoading(true)
	detail, err := c.source.GetOperator(ctx, cnpj)
	c.ApplyDetail(cnpj, detail, err)
	records, histErr := c.source.ListExpenseHistory(ctx, cnpj)
	c.ApplyHistory(cnpj, records, histErr)
	return err
}

// --- Mutations ---

// SetLoading toggles the loading indicator.
func (c *Controller) SetLoading(loading bool) {
	if c.loading == loading {
		return
	}
	c.loading = loading
	c.render()
}

// ApplyList replaces the full set with a list-fetch result. A non-nil err
// means ops is fallback data: the banner is raised. A nil err clears it.
func (c *Controller) ApplyList(ops []api.Operator, err error) {
	if err != nil {
		c.logger.Warn().Err(err).Int("rows", len(ops)).Msg("operator list unavailable, using sample data")
		if len(ops) == 0 {
			ops = api.FallbackOperators()
		}
		c.banner = ListFailedText
	} else {
		c.banner = ""
	}
	c.full = ops
	c.loading = false
	c.refilter()
	c.render()
}

// ApplyStatistics stores server statistics, or derives them from the full
// set when the request failed.
func (c *Controller) ApplyStatistics(stats *api.Statistics, err error) {
	if err != nil || stats == nil {
		if err != nil {
			c.logger.Warn().Err(err).Msg("statistics unavailable, deriving locally")
		}
		c.stats = LocalStatistics(c.full)
		c.statsLocal = true
	} else {
		c.stats = *stats
		c.statsLocal = false
	}
	c.statsLoaded = true
	c.render()
}

// ApplyDetail selects a detail-fetch result for cnpj. The previous
// selection and its history are dropped.
func (c *Controller) ApplyDetail(cnpj string, detail *api.OperatorDetail, err error) {
	if err != nil {
		c.logger.Warn().Err(err).Str("cnpj", cnpj).Msg("operator detail unavailable, using placeholder")
	}
	if detail == nil {
		detail = api.FallbackDetail(cnpj)
	}
	c.detail = detail
	c.history = nil
	c.loading = false
	c.render()
}

// ApplyHistory attaches expense history to the selected detail. Results for
// an operator that is no longer selected are dropped.
func (c *Controller) ApplyHistory(cnpj string, records []api.ExpenseRecord, err error) {
	if err != nil {
		c.logger.Debug().Err(err).Str("cnpj", cnpj).Msg("expense history unavailable")
		return
	}
	if c.detail == nil || !sameTaxID(c.detail.CNPJ.String(), cnpj) {
		return
	}
	c.history = records
	c.render()
}

// sameTaxID compares CNPJs by digits, so a numeric CNPJ that lost its
// leading zeros still matches its padded form.
func sameTaxID(a, b string) bool {
	return format.PadTaxID(format.Digits(a)) == format.PadTaxID(format.Digits(b))
}

// ClearDetail closes the detail panel.
func (c *Controller) ClearDetail() {
	if c.detail == nil {
		return
	}
	c.detail = nil
	c.history = nil
	c.render()
}

// SetQuery recomputes the filtered set for query and resets to page 1.
func (c *Controller) SetQuery(query string) {
	c.query = query
	c.refilter()
	c.render()
}

// Navigate moves one page back (-1) or forward (+1). Moves outside
// [1, PageCount] are ignored. It reports whether the page changed.
func (c *Controller) Navigate(direction int) bool {
	return c.GoTo(c.page + direction)
}

// GoTo jumps to page if it exists and reports whether the page changed.
func (c *Controller) GoTo(page int) bool {
	if page < 1 || page > c.PageCount() || page == c.page {
		return false
	}
	c.page = page
	c.render()
	return true
}

// Refresh re-renders the current state without changing it.
func (c *Controller) Refresh() {
	c.render()
}

func (c *Controller) refilter() {
	c.filtered = ApplyFilter(c.full, c.query)
	c.page = 1
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.View())
}

// --- Accessors ---

// Query returns the active filter text.
func (c *Controller) Query() string { return c.query }

// Page returns the current 1-based page.
func (c *Controller) Page() int { return c.page }

// PageCount returns the number of pages of the filtered set.
func (c *Controller) PageCount() int { return PageCount(len(c.filtered), PageSize) }

// Loading reports whether a fetch is outstanding.
func (c *Controller) Loading() bool { return c.loading }

// Banner returns the list-failure message, or "".
func (c *Controller) Banner() string { return c.banner }

// Operators returns a copy of the full set.
func (c *Controller) Operators() []api.Operator {
	return append([]api.Operator(nil), c.full...)
}

// Filtered returns a copy of the filtered set.
func (c *Controller) Filtered() []api.Operator {
	return append([]api.Operator(nil), c.filtered...)
}

// PageItems returns the operators on the current page.
func (c *Controller) PageItems() []api.Operator {
	return append([]api.Operator(nil), ItemsForPage(c.filtered, c.page, PageSize)...)
}

// Detail returns the selected detail, or nil.
func (c *Controller) Detail() *api.OperatorDetail { return c.detail }

// History returns the expense history of the selected operator.
func (c *Controller) History() []api.ExpenseRecord {
	return append([]api.ExpenseRecord(nil), c.history...)
}

// Statistics returns the current statistics and whether they were derived locally.
func (c *Controller) Statistics() (api.Statistics, bool) { return c.stats, c.statsLocal }

// View projects the current state.
func (c *Controller) View() View {
	count := c.PageCount()
	v := View{
		Query:      c.query,
		Loading:    c.loading,
		Banner:     c.banner,
		Rows:       projectRows(ItemsForPage(c.filtered, c.page, PageSize)),
		Empty:      len(c.filtered) == 0,
		Pagination: projectPagination(c.page, count),
		Stats:      projectStats(c.stats, c.statsLoaded, c.statsLocal),
		Detail:     projectDetail(c.detail, c.history),
	}
	if v.Detail != nil {
		chart := RegionChart()
		v.Chart = &chart
	}
	return v
}
