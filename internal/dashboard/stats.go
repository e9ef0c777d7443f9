package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/gravitrone/operadoras/internal/api"
)

// LocalStatistics derives count, total and average expenses from ops.
// The average is zero for an empty set.
func LocalStatistics(ops []api.Operator) api.Statistics {
	total := decimal.Zero
	for _, op := range ops {
		total = total.Add(op.ValorDespesas)
	}
	avg := decimal.Zero
	if len(ops) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(ops))))
	}
	return api.Statistics{
		TotalOperadoras: len(ops),
		TotalDespesas:   total,
		MediaDespesas:   avg,
	}
}
