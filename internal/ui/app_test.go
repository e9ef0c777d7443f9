package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/dashboard"
	"github.com/gravitrone/operadoras/internal/ui/components"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *api.Client) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, api.NewClient(srv.URL)
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func sampleCNPJ(i int) string {
	return fmt.Sprintf("%014d", 11222333000100+i)
}

// dashboardHandler serves seven operators, alternating SP and RJ.
func dashboardHandler(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/operadoras":
		items := make([]map[string]any, 0, 7)
		for i := 1; i <= 7; i++ {
			uf := "SP"
			if i%2 == 0 {
				uf = "RJ"
			}
			items = append(items, map[string]any{
				"CNPJ":          sampleCNPJ(i),
				"RazaoSocial":   fmt.Sprintf("Operadora %d", i),
				"UF":            uf,
				"ValorDespesas": 1000 * i,
			})
		}
		writeData(w, items)
	case r.URL.Path == "/api/estatisticas":
		writeData(w, map[string]any{
			"total_operadoras": 7,
			"total_despesas":   28000,
			"media_despesas":   4000,
		})
	case strings.HasSuffix(r.URL.Path, "/despesas"):
		writeData(w, []map[string]any{
			{"Trimestre": 1, "Ano": 2024, "ValorDespesas": 500},
		})
	case strings.HasPrefix(r.URL.Path, "/api/operadoras/"):
		writeData(w, map[string]any{
			"cnpj":         path.Base(r.URL.Path),
			"razao_social": "Operadora 2",
			"UF":           "RJ",
			"despesas":     2000,
			"agregado":     []map[string]any{{"UF": "RJ", "TotalDespesas": 2000}},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func step(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	updated, ok := model.(App)
	require.True(t, ok)
	return updated, cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedApp returns an App after the list and statistics requests completed.
func loadedApp(t *testing.T, handler http.HandlerFunc, width int) App {
	t.Helper()
	_, client := testClient(t, handler)

	app := NewApp(context.Background(), client)
	if width > 0 {
		app, _ = step(t, app, tea.WindowSizeMsg{Width: width, Height: 50})
	}
	require.NotNil(t, app.Init())
	require.True(t, app.ctrl.Loading())

	app, cmd := step(t, app, app.loadOperators()())
	require.NotNil(t, cmd)
	app, _ = step(t, app, cmd())
	return app
}

func TestNewAppRendersInitialFrame(t *testing.T) {
	app := NewApp(context.Background(), api.NewClient("http://127.0.0.1:1"))
	assert.Equal(t, 1, app.frame.renders)
	assert.True(t, app.frame.view.Empty)
	assert.Equal(t, "Page 1 of 0", app.frame.view.Pagination.Label)
}

func TestAppLoadsOperatorsAndStatistics(t *testing.T) {
	app := loadedApp(t, dashboardHandler, 120)

	assert.False(t, app.ctrl.Loading())
	assert.Len(t, app.ctrl.Filtered(), 7)
	assert.Equal(t, "", app.ctrl.Banner())

	stats, local := app.ctrl.Statistics()
	assert.False(t, local)
	assert.Equal(t, 7, stats.TotalOperadoras)

	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Page 1 of 2")
	assert.Contains(t, out, "Operadora 1")
	assert.Contains(t, out, "11.222.333/0001-01")
	assert.Contains(t, out, "R$ 1.000,00")
	assert.Contains(t, out, "R$ 28.000,00")
	assert.NotContains(t, out, "Operadora 6")
	assert.NotContains(t, out, "Offline")
}

func TestAppPagesWithArrowKeys(t *testing.T) {
	app := loadedApp(t, dashboardHandler, 120)

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, app.ctrl.Page())
	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Page 2 of 2")
	assert.Contains(t, out, "Operadora 6")

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, app.ctrl.Page())

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyLeft})
	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, app.ctrl.Page())
}

func TestAppSearchFiltersAndEscClears(t *testing.T) {
	app := loadedApp(t, dashboardHandler, 120)
	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyRight})

	app, _ = step(t, app, runeKey("/"))
	require.True(t, app.searching)

	app, _ = step(t, app, runeKey("rj"))
	assert.Equal(t, "rj", app.ctrl.Query())
	assert.Len(t, app.ctrl.Filtered(), 3)
	assert.Equal(t, 1, app.ctrl.Page())

	// q is text while the search box is focused.
	app, _ = step(t, app, runeKey("q"))
	assert.True(t, app.searching)
	assert.Empty(t, app.ctrl.Filtered())
	out := components.SanitizeText(app.View())
	assert.Contains(t, out, dashboard.NoResultsText)

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, app.ctrl.Filtered(), 3)

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.searching)
	assert.Equal(t, "rj", app.ctrl.Query())

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", app.ctrl.Query())
	assert.Equal(t, "", app.search.Value())
	assert.Len(t, app.ctrl.Filtered(), 7)
}

func TestAppSelectLoadsDetailHistoryAndChart(t *testing.T) {
	app := loadedApp(t, dashboardHandler, 120)

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.cursor)

	app, cmd := step(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, app.ctrl.Loading())

	// A second fetch key while loading is ignored.
	_, ignored := step(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ignored)

	app, cmd = step(t, app, cmd())
	require.NotNil(t, cmd)
	require.NotNil(t, app.ctrl.Detail())
	assert.Equal(t, sampleCNPJ(2), app.ctrl.Detail().CNPJ.String())
	assert.False(t, app.ctrl.Loading())

	app, _ = step(t, app, cmd())
	require.NotNil(t, app.frame.view.Detail)
	require.Len(t, app.frame.view.Detail.History, 1)

	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Operator details")
	assert.Contains(t, out, "Consolidated total: R$ 2.000,00")
	assert.Contains(t, out, "2024 Q1")
	assert.Contains(t, out, "Expenses by region")
	assert.Contains(t, out, "R$ 450K")

	app, _ = step(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, app.ctrl.Detail())
	assert.Nil(t, app.frame.view.Chart)
}

func TestAppFallsBackWhenAPIUnavailable(t *testing.T) {
	app := loadedApp(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 0)

	assert.Len(t, app.ctrl.Filtered(), 5)
	assert.Equal(t, dashboard.ListFailedText, app.ctrl.Banner())
	assert.True(t, app.frame.view.Stats.Local)
	assert.Equal(t, 5, app.frame.view.Stats.Count)

	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Offline")
	assert.Contains(t, out, "Could not reach the API")
	assert.Contains(t, out, "Hospital Sao Paulo")
}

func TestAppReloadIgnoredWhileLoading(t *testing.T) {
	_, client := testClient(t, dashboardHandler)
	app := NewApp(context.Background(), client)
	app.Init()

	_, cmd := step(t, app, runeKey("r"))
	assert.Nil(t, cmd)
}

func TestAppReloadKeepsQuery(t *testing.T) {
	app := loadedApp(t, dashboardHandler, 120)
	app.ctrl.SetQuery("sp")

	app, cmd := step(t, app, runeKey("r"))
	require.NotNil(t, cmd)
	app, _ = step(t, app, cmd())

	assert.Equal(t, "sp", app.ctrl.Query())
	assert.Len(t, app.ctrl.Filtered(), 4)
	assert.Equal(t, 1, app.ctrl.Page())
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, -1, clampCursor(3, 0))
	assert.Equal(t, 0, clampCursor(-2, 4))
	assert.Equal(t, 3, clampCursor(9, 4))
	assert.Equal(t, 2, clampCursor(2, 4))
}

func TestCenterBlockUniformPadsNarrowBlocks(t *testing.T) {
	assert.Equal(t, "  ab\n  cd", centerBlockUniform("ab\ncd", 6))
	assert.Equal(t, "abc", centerBlockUniform("abc", 0))
	assert.Equal(t, "abcdef", centerBlockUniform("abcdef", 4))
}
