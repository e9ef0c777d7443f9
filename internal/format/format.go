package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TaxIDLength is the digit count of a CNPJ.
const TaxIDLength = 14

var taxIDPattern = regexp.MustCompile(`^(\d{2})(\d{3})(\d{3})(\d{4})(\d{2})$`)

// printer groups thousands the way pt-BR does ("150.000").
var printer = message.NewPrinter(language.BrazilianPortuguese)

var thousand = decimal.NewFromInt(1000)

// PadTaxID left-pads id with zeros up to TaxIDLength.
func PadTaxID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) >= TaxIDLength {
		return id
	}
	return strings.Repeat("0", TaxIDLength-len(id)) + id
}

// Digits drops every character of s that is not an ASCII digit, so
// "11.222.333/0001-44" becomes "11222333000144".
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TaxID renders a CNPJ as NN.NNN.NNN/NNNN-NN.
// Input that is not 14 digits after padding is returned padded but ungrouped.
func TaxID(id string) string {
	return taxIDPattern.ReplaceAllString(PadTaxID(id), "$1.$2.$3/$4-$5")
}

// Currency renders an amount as Brazilian reais with two decimals, e.g. "R$ 150.000,50".
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%sR$ %s,%02d", sign, printer.Sprintf("%d", whole.IntPart()), cents)
}

// Thousands renders a compact label in thousands of reais, e.g. "R$ 450K".
func Thousands(amount decimal.Decimal) string {
	return "R$ " + amount.Div(thousand).Round(0).String() + "K"
}

// Count renders an integer with pt-BR grouping.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}
