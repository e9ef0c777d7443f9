package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   any  `json:"error,omitempty"`
}

// QueryParams holds optional query string filters.
type QueryParams map[string]string

// TaxID is a CNPJ kept as its digit string. The backend emits it either as a
// JSON string or, when pandas inferred an integer column, as a bare number.
type TaxID string

func (t *TaxID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TaxID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cnpj: %w", err)
	}
	*t = TaxID(n.String())
	return nil
}

func (t TaxID) String() string {
	return string(t)
}

// --- Operators ---

// Operator is one row of the operator listing.
type Operator struct {
	CNPJ          TaxID           `json:"CNPJ"`
	RazaoSocial   string          `json:"RazaoSocial"`
	UF            string          `json:"UF"`
	ValorDespesas decimal.Decimal `json:"ValorDespesas"`
}

// AggregatedExpense is a precomputed per-region expense total.
type AggregatedExpense struct {
	RazaoSocial   string          `json:"RazaoSocial,omitempty"`
	UF            string          `json:"UF"`
	TotalDespesas decimal.Decimal `json:"TotalDespesas"`
}

// OperatorDetail is the single-operator view served by /api/operadoras/{cnpj}.
type OperatorDetail struct {
	CNPJ        TaxID               `json:"cnpj"`
	RazaoSocial string              `json:"razao_social"`
	UF          string              `json:"UF"`
	Despesas    decimal.Decimal     `json:"despesas"`
	Agregado    []AggregatedExpense `json:"agregado"`
}

// ExpenseRecord is one entry of an operator's expense history.
type ExpenseRecord struct {
	CNPJ          TaxID           `json:"CNPJ"`
	RazaoSocial   string          `json:"RazaoSocial"`
	UF            string          `json:"UF,omitempty"`
	Trimestre     int             `json:"Trimestre,omitempty"`
	Ano           int             `json:"Ano,omitempty"`
	ValorDespesas decimal.Decimal `json:"ValorDespesas"`
}

// --- Statistics ---

// Statistics holds the aggregate figures shown in the dashboard header.
type Statistics struct {
	TotalOperadoras int                        `json:"total_operadoras"`
	TotalDespesas   decimal.Decimal            `json:"total_despesas"`
	MediaDespesas   decimal.Decimal            `json:"media_despesas"`
	TopOperadoras   []AggregatedExpense        `json:"top_5_operadoras,omitempty"`
	DistribuicaoUF  map[string]decimal.Decimal `json:"distribuicao_uf,omitempty"`
}
