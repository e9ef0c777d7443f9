package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/operadoras/internal/dashboard"
)

// ListCmd returns the `operadoras list` command.
func ListCmd(g *Globals) *cobra.Command {
	var (
		query  string
		page   int
		limit  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operators, filtered and paginated like the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := parseFormat(output)
			if err != nil {
				return err
			}
			env, err := g.Resolve(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer env.Close()

			if limit <= 0 {
				limit = env.Config.ListLimit
			}
			ctrl := dashboard.NewController(env.Client,
				dashboard.WithLogger(env.Logger.Logger),
				dashboard.WithListLimit(limit),
			)
			listErr := ctrl.LoadList(cmd.Context())
			if listErr != nil {
				warn(cmd.ErrOrStderr(), "%s", dashboard.ListFailedText)
			}

			ctrl.SetQuery(query)
			if page != ctrl.Page() && !ctrl.GoTo(page) {
				return fmt.Errorf("page %d out of range (1-%d)", page, ctrl.PageCount())
			}

			out := cmd.OutOrStdout()
			if outFormat == formatTable {
				newTextRenderer(out, sectionList).Render(ctrl.View())
				return nil
			}
			return writeStructured(out, outFormat, listOutput{
				Query:     ctrl.Query(),
				Page:      ctrl.Page(),
				Pages:     ctrl.PageCount(),
				Total:     len(ctrl.Filtered()),
				Fallback:  listErr != nil,
				Operators: toOperatorOutputs(ctrl.PageItems()),
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name, CNPJ or UF (case-insensitive)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	cmd.Flags().IntVar(&limit, "limit", 0, "operators to request (default from config)")
	addOutputFlag(cmd, &output)
	return cmd
}
