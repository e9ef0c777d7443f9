package api

import "github.com/shopspring/decimal"

// FallbackOperators returns the sample rows shown when the API is unreachable.
// A fresh slice is returned on every call.
func FallbackOperators() []Operator {
	return []Operator{
		{CNPJ: "11222333000144", RazaoSocial: "Hospital Sao Paulo", UF: "SP", ValorDespesas: decimal.RequireFromString("150000.50")},
		{CNPJ: "22333444000155", RazaoSocial: "Clinica Saude Total", UF: "RJ", ValorDespesas: decimal.RequireFromString("75000.00")},
		{CNPJ: "33444555000166", RazaoSocial: "Laboratorio Diagnostico", UF: "MG", ValorDespesas: decimal.RequireFromString("50000.25")},
		{CNPJ: "44555666000177", RazaoSocial: "Plano Saúde Excel", UF: "SP", ValorDespesas: decimal.RequireFromString("120000.00")},
		{CNPJ: "55666777000188", RazaoSocial: "Assistência Médica", UF: "RS", ValorDespesas: decimal.RequireFromString("85000.75")},
	}
}

// FallbackDetail returns the placeholder detail shown for cnpj when the
// detail request fails.
func FallbackDetail(cnpj string) *OperatorDetail {
	amount := decimal.NewFromInt(100000)
	return &OperatorDetail{
		CNPJ:        TaxID(cnpj),
		RazaoSocial: "Operadora de Exemplo",
		UF:          "SP",
		Despesas:    amount,
		Agregado:    []AggregatedExpense{{UF: "SP", TotalDespesas: amount}},
	}
}
