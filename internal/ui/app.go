package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/dashboard"
	"github.com/gravitrone/operadoras/internal/ui/components"
)

// --- Messages ---

type operatorsLoadedMsg struct {
	items []api.Operator
	err   error
}

type statisticsLoadedMsg struct {
	stats *api.Statistics
	err   error
}

type detailLoadedMsg struct {
	cnpj   string
	detail *api.OperatorDetail
	err    error
}

type historyLoadedMsg struct {
	cnpj    string
	records []api.ExpenseRecord
	err     error
}

// Option configures the App.
type Option func(*App)

// WithLogger sets the logger passed down to the controller.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithListLimit sets how many operators the list request asks for.
func WithListLimit(limit int) Option {
	return func(a *App) { a.limit = limit }
}

// --- App Model ---

// App is the root TUI model. All dashboard state lives in the controller;
// the App only adds terminal concerns: size, cursor, search input, spinner.
type App struct {
	ctx    context.Context
	source dashboard.Source
	ctrl   *dashboard.Controller
	frame  *frameRenderer
	logger zerolog.Logger
	limit  int

	keys      keyMap
	search    textinput.Model
	spinner   spinner.Model
	searching bool
	cursor    int

	width  int
	height int
}

// NewApp creates the root application model reading from source.
func NewApp(ctx context.Context, source dashboard.Source, opts ...Option) App {
	a := App{
		ctx:    ctx,
		source: source,
		frame:  &frameRenderer{},
		logger: zerolog.Nop(),
		limit:  api.DefaultListLimit,
		keys:   defaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&a)
	}

	a.ctrl = dashboard.NewController(source,
		dashboard.WithRenderer(a.frame),
		dashboard.WithLogger(a.logger),
		dashboard.WithListLimit(a.limit),
	)

	a.search = textinput.New()
	a.search.Prompt = "/ "
	a.search.Placeholder = "Search by name, CNPJ or UF"
	a.search.CharLimit = 64

	a.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	a.spinner.Style = SpinnerStyle

	a.ctrl.Refresh()
	return a
}

func (a App) Init() tea.Cmd {
	a.ctrl.SetLoading(true)
	return tea.Batch(a.spinner.Tick, a.loadOperators())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.Width = components.BoxContentWidth(msg.Width) - 4
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case operatorsLoadedMsg:
		a.ctrl.ApplyList(msg.items, msg.err)
		a.cursor = 0
		return a, a.loadStatistics()

	case statisticsLoadedMsg:
		a.ctrl.ApplyStatistics(msg.stats, msg.err)
		return a, nil

	case detailLoadedMsg:
		a.ctrl.ApplyDetail(msg.cnpj, msg.detail, msg.err)
		return a, a.loadHistory(msg.cnpj)

	case historyLoadedMsg:
		a.ctrl.ApplyHistory(msg.cnpj, msg.records, msg.err)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.searching {
			return a.handleSearchKeys(msg)
		}
		return a.handleListKeys(msg)
	}
	return a, nil
}

func (a App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if q := a.search.Value(); q != a.ctrl.Query() {
		a.ctrl.SetQuery(q)
		a.cursor = 0
	}
	return a, cmd
}

func (a App) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Search):
		a.searching = true
		return a, a.search.Focus()

	case key.Matches(msg, a.keys.Back):
		if a.ctrl.Detail() != nil {
			a.ctrl.ClearDetail()
			return a, nil
		}
		if a.ctrl.Query() != "" {
			a.search.SetValue("")
			a.ctrl.SetQuery("")
			a.cursor = 0
		}
		return a, nil

	case key.Matches(msg, a.keys.PrevPage):
		if a.ctrl.Navigate(-1) {
			a.cursor = 0
		}
		return a, nil

	case key.Matches(msg, a.keys.NextPage):
		if a.ctrl.Navigate(1) {
			a.cursor = 0
		}
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.ctrl.PageItems())-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Select):
		if a.ctrl.Loading() {
			return a, nil
		}
		items := a.ctrl.PageItems()
		if len(items) == 0 {
			return a, nil
		}
		cnpj := items[clampCursor(a.cursor, len(items))].CNPJ.String()
		a.ctrl.SetLoading(true)
		return a, a.loadDetail(cnpj)

	case key.Matches(msg, a.keys.Reload):
		if a.ctrl.Loading() {
			return a, nil
		}
		a.ctrl.SetLoading(true)
		return a, a.loadOperators()
	}
	return a, nil
}

// --- Commands ---

func (a App) loadOperators() tea.Cmd {
	source, ctx, limit := a.source, a.ctx, a.limit
	return func() tea.Msg {
		items, err := source.ListOperators(ctx, limit)
		return operatorsLoadedMsg{items: items, err: err}
	}
}

func (a App) loadStatistics() tea.Cmd {
	source, ctx := a.source, a.ctx
	return func() tea.Msg {
		stats, err := source.GetStatistics(ctx)
		return statisticsLoadedMsg{stats: stats, err: err}
	}
}

func (a App) loadDetail(cnpj string) tea.Cmd {
	source, ctx := a.source, a.ctx
	return func() tea.Msg {
		detail, err := source.GetOperator(ctx, cnpj)
		return detailLoadedMsg{cnpj: cnpj, detail: detail, err: err}
	}
}

func (a App) loadHistory(cnpj string) tea.Cmd {
	source, ctx := a.source, a.ctx
	return func() tea.Msg {
		records, err := source.ListExpenseHistory(ctx, cnpj)
		return historyLoadedMsg{cnpj: cnpj, records: records, err: err}
	}
}

// --- View ---

func (a App) View() string {
	v := a.frame.view

	banner := centerBlockUniform(RenderBanner(), a.width)
	searchLine := a.search.View()
	if v.Loading {
		searchLine += "  " + a.spinner.View() + MutedStyle.Render(" Loading...")
	}
	searchBox := centerBlockUniform(components.Box(searchLine, a.width), a.width)
	content := centerBlockUniform(renderFrame(v, a.width, a.cursor), a.width)

	bindings := a.keys.listBindings(a.searching, v.Detail != nil)
	hints := components.StatusBar(components.BindingHints(bindings...), a.width)

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", banner, searchBox, content, hints)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
