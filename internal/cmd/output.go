package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/dashboard"
)

// --- Output Formats ---

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	case "":
		return formatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", string(formatTable), "output format: table, json or yaml")
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, f outputFormat, v any) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not structured", f)
}

// --- Output Shapes ---
// Amounts are plain decimal strings ("150000.50") so they survive any encoder.

type operatorOutput struct {
	CNPJ     string   `json:"cnpj" yaml:"cnpj"`
	Name     string   `json:"name" yaml:"name"`
	UF       string   `json:"uf" yaml:"uf"`
	Expenses string   `json:"expenses" yaml:"expenses"`
	Issues   []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type listOutput struct {
	Query     string           `json:"query,omitempty" yaml:"query,omitempty"`
	Page      int              `json:"page" yaml:"page"`
	Pages     int              `json:"pages" yaml:"pages"`
	Total     int              `json:"total" yaml:"total"`
	Fallback  bool             `json:"fallback" yaml:"fallback"`
	Operators []operatorOutput `json:"operators" yaml:"operators"`
}

type aggregatedOutput struct {
	UF    string `json:"uf" yaml:"uf"`
	Total string `json:"total" yaml:"total"`
}

type historyOutput struct {
	Period   string `json:"period" yaml:"period"`
	Year     int    `json:"year,omitempty" yaml:"year,omitempty"`
	Quarter  int    `json:"quarter,omitempty" yaml:"quarter,omitempty"`
	Expenses string `json:"expenses" yaml:"expenses"`
}

type detailOutput struct {
	CNPJ       string             `json:"cnpj" yaml:"cnpj"`
	Name       string             `json:"name" yaml:"name"`
	UF         string             `json:"uf" yaml:"uf"`
	Expenses   string             `json:"expenses" yaml:"expenses"`
	Fallback   bool               `json:"fallback" yaml:"fallback"`
	Aggregated []aggregatedOutput `json:"aggregated" yaml:"aggregated"`
	History    []historyOutput    `json:"history,omitempty" yaml:"history,omitempty"`
}

type topOutput struct {
	Name  string `json:"name" yaml:"name"`
	UF    string `json:"uf" yaml:"uf"`
	Total string `json:"total" yaml:"total"`
}

type statsOutput struct {
	Operators int               `json:"operators" yaml:"operators"`
	Total     string            `json:"total" yaml:"total"`
	Average   string            `json:"average" yaml:"average"`
	Local     bool              `json:"local" yaml:"local"`
	Top       []topOutput       `json:"top,omitempty" yaml:"top,omitempty"`
	ByRegion  map[string]string `json:"by_region,omitempty" yaml:"by_region,omitempty"`
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toOperatorOutputs(ops []api.Operator) []operatorOutput {
	out := make([]operatorOutput, 0, len(ops))
	for _, op := range ops {
		out = append(out, operatorOutput{
			CNPJ:     op.CNPJ.String(),
			Name:     op.RazaoSocial,
			UF:       op.UF,
			Expenses: amount(op.ValorDespesas),
			Issues:   dashboard.Validate(op),
		})
	}
	return out
}

func toHistoryOutputs(records []api.ExpenseRecord) []historyOutput {
	out := make([]historyOutput, 0, len(records))
	for _, rec := range records {
		out = append(out, historyOutput{
			Period:   dashboard.PeriodLabel(rec),
			Year:     rec.Ano,
			Quarter:  rec.Trimestre,
			Expenses: amount(rec.ValorDespesas),
		})
	}
	return out
}

func toDetailOutput(d *api.OperatorDetail, history []api.ExpenseRecord, fallback bool) detailOutput {
	out := detailOutput{
		CNPJ:       d.CNPJ.String(),
		Name:       d.RazaoSocial,
		UF:         d.UF,
		Expenses:   amount(d.Despesas),
		Fallback:   fallback,
		Aggregated: make([]aggregatedOutput, 0, len(d.Agregado)),
	}
	for _, a := range d.Agregado {
		out.Aggregated = append(out.Aggregated, aggregatedOutput{UF: a.UF, Total: amount(a.TotalDespesas)})
	}
	if len(history) > 0 {
		out.History = toHistoryOutputs(history)
	}
	return out
}

func toStatsOutput(s api.Statistics, local bool) statsOutput {
	out := statsOutput{
		Operators: s.TotalOperadoras,
		Total:     amount(s.TotalDespesas),
		Average:   amount(s.MediaDespesas),
		Local:     local,
	}
	for _, top := range s.TopOperadoras {
		out.Top = append(out.Top, topOutput{Name: top.RazaoSocial, UF: top.UF, Total: amount(top.TotalDespesas)})
	}
	if len(s.DistribuicaoUF) > 0 {
		out.ByRegion = make(map[string]string, len(s.DistribuicaoUF))
		for uf, v := range s.DistribuicaoUF {
			out.ByRegion[uf] = amount(v)
		}
	}
	return out
}
