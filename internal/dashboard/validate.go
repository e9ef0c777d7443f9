package dashboard

import (
	"strings"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/format"
)

// Reasons a row is flagged as suspect.
const (
	IssueTaxIDLength   = "CNPJ must have 14 digits"
	IssueTaxIDRepeated = "CNPJ is a single repeated digit"
	IssueNonPositive   = "expenses are not positive"
	IssueBlankName     = "legal name is blank"
)

// Validate returns the reasons op looks suspect; nil means the row is clean.
// Short CNPJs are zero-padded first; check digits are not verified.
func Validate(op api.Operator) []string {
	var issues []string
	digits := format.PadTaxID(format.Digits(op.CNPJ.String()))
	switch {
	case len(digits) != format.TaxIDLength:
		issues = append(issues, IssueTaxIDLength)
	case strings.Count(digits, digits[:1]) == len(digits):
		issues = append(issues, IssueTaxIDRepeated)
	}
	if !op.ValorDespesas.IsPositive() {
		issues = append(issues, IssueNonPositive)
	}
	if strings.TrimSpace(op.RazaoSocial) == "" {
		issues = append(issues, IssueBlankName)
	}
	return issues
}
