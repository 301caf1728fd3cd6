// Package money formatea importes en rupias y pesos en kilos para reportes y exportaciones.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formatea un importe en rupias sin decimales (agrupación india): ₹4,000, ₹1,25,000.
func FormatINR(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-₹" + printer.Sprintf("%d", -n)
	}
	return "₹" + printer.Sprintf("%d", n)
}

// FormatWeight formatea un peso en kilos: "12.5 Kg".
func FormatWeight(weight decimal.Decimal) string {
	return weight.String() + " Kg"
}
