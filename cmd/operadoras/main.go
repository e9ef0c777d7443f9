package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/operadoras/internal/cmd"
	"github.com/gravitrone/operadoras/internal/ui"
)

var errNotInteractive = errors.New("the dashboard needs an interactive terminal; use 'operadoras list' or 'operadoras stats' instead")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	g := &cmd.Globals{}
	root := &cobra.Command{
		Use:   "operadoras",
		Short: "Operadoras - health-insurance operator expenses",
		Long:  "Browse health-insurance operators and their expenses: search, paginate, inspect details and statistics.",
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c.Context(), g, c.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	g.Bind(root)

	root.AddCommand(cmd.ListCmd(g))
	root.AddCommand(cmd.ShowCmd(g))
	root.AddCommand(cmd.StatsCmd(g))
	root.AddCommand(cmd.HistoryCmd(g))
	root.AddCommand(cmd.ConfigCmd(g))
	return root
}

func runTUI(ctx context.Context, g *cmd.Globals, stderr io.Writer) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errNotInteractive
	}

	env, err := g.Resolve(stderr, true)
	if err != nil {
		return err
	}
	defer env.Close()

	app := ui.NewApp(ctx, env.Client,
		ui.WithLogger(env.Logger.Logger),
		ui.WithListLimit(env.Config.ListLimit),
	)
	env.Logger.Info().Str("base_url", env.Client.BaseURL()).Msg("dashboard started")

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
