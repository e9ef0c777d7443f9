package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/gravitrone/operadoras/internal/format"
)

// Bar is one column of the per-region chart.
type Bar struct {
	Region string
	Value  decimal.Decimal
	// Ratio is Value divided by the largest value in the chart, in [0, 1].
	Ratio float64
	Label string
}

// ChartView is the per-region expenses chart.
type ChartView struct {
	Title string
	Bars  []Bar
}

// regionSamples is illustrative; it is not derived from the loaded operators.
var regionSamples = []struct {
	region string
	value  int64
}{
	{"SP", 450000},
	{"RJ", 155000},
	{"MG", 50000},
	{"RS", 85000},
	{"PR", 65000},
}

// RegionChart builds the chart from the fixed illustrative dataset.
func RegionChart() ChartView {
	peak := decimal.Zero
	for _, s := range regionSamples {
		if v := decimal.NewFromInt(s.value); v.GreaterThan(peak) {
			peak = v
		}
	}
	bars := make([]Bar, 0, len(regionSamples))
	for _, s := range regionSamples {
		v := decimal.NewFromInt(s.value)
		ratio := 0.0
		if peak.IsPositive() {
			ratio = v.Div(peak).InexactFloat64()
		}
		bars = append(bars, Bar{
			Region: s.region,
			Value:  v,
			Ratio:  ratio,
			Label:  format.Thousands(v),
		})
	}
	return ChartView{Title: "Expenses by region", Bars: bars}
}
