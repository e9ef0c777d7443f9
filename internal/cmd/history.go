package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/operadoras/internal/dashboard"
	"github.com/gravitrone/operadoras/internal/format"
)

// HistoryCmd returns the `operadoras history` command.
func HistoryCmd(g *Globals) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "history <cnpj>",
		Short: "Show the per-quarter expense history of one operator",
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

			records, err := env.Client.ListExpenseHistory(cmd.Context(), cnpj)
			if err != nil {
				return fmt.Errorf("expense history: %w", err)
			}

			out := cmd.OutOrStdout()
			if outFormat != formatTable {
				return writeStructured(out, outFormat, toHistoryOutputs(records))
			}
			if len(records) == 0 {
				fmt.Fprintf(out, "no expense history for %s\n", format.TaxID(cnpj))
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{dashboard.PeriodLabel(rec), format.Currency(rec.ValorDespesas)})
			}
			fmt.Fprintln(out, format.TaxID(cnpj))
			newTextRenderer(out, 0).writeKeyValues(rows)
			return nil
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
