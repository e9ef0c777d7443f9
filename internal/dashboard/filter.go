package dashboard

import (
	"strings"

	"github.com/gravitrone/operadoras/internal/api"
)

// Matches reports whether query matches op: a case-insensitive substring of
// the legal name or region, or a substring of the CNPJ digits.
func Matches(op api.Operator, query string) bool {
	term := strings.ToLower(query)
	return strings.Contains(strings.ToLower(op.RazaoSocial), term) ||
		strings.Contains(op.CNPJ.String(), term) ||
		strings.Contains(strings.ToLower(op.UF), term)
}

// ApplyFilter returns the operators matching query, in their original order.
// An empty query yields a copy of full.
func ApplyFilter(full []api.Operator, query string) []api.Operator {
	if query == "" {
		out := make([]api.Operator, len(full))
		copy(out, full)
		return out
	}
	out := make([]api.Operator, 0, len(full))
	for _, op := range full {
		if Matches(op, query) {
			out = append(out, op)
		}
	}
	return out
}
