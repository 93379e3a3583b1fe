package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	esAR    = language.MustParse("es-AR")
	printer = message.NewPrinter(esAR)
	title   = cases.Title(esAR)
)

// formatMoney importe con separadores de es-AR: 1234567.5 → "$ 1.234.567,50".
func formatMoney(d decimal.Decimal) string {
	return "$ " + printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

func titleCase(s string) string {
	return title.String(s)
}
