package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/operadoras/internal/dashboard"
	"github.com/gravitrone/operadoras/internal/format"
)

// ShowCmd returns the `operadoras show` command.
func ShowCmd(g *Globals) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <cnpj>",
		Short: "Show one operator with its aggregated total and expense history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := parseFormat(output)
			if err != nil {
				return err
			}
			cnpj := format.Digits(args[0])
			if cnpj == "" {
				return fmt.Errorf("invalid CNPJ %q", args[0])
			}
			cnpj = format.PadTaxID(cnpj)

			env, err := g.Resolve(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer env.Close()

			ctrl := dashboard.NewController(env.Client, dashboard.WithLogger(env.Logger.Logger))
			detailErr := ctrl.SelectOperator(cmd.Context(), cnpj)
			if detailErr != nil {
				warn(cmd.ErrOrStderr(), "operator %s unavailable; showing sample data", format.TaxID(cnpj))
			}

			out := cmd.OutOrStdout()
			if outFormat == formatTable {
				newTextRenderer(out, sectionDetail).Render(ctrl.View())
				return nil
			}
			return writeStructured(out, outFormat, toDetailOutput(ctrl.Detail(), ctrl.History(), detailErr != nil))
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
