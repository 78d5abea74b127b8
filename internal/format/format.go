// Package format renders prices for display. The catalog is Czech retail
// data, so amounts are formatted as CZK for the cs-CZ locale.
package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Czech)

var czk = currency.MustParseISO("CZK")

// Price formats an amount as Czech koruna.
func Price(v float64) string {
	return printer.Sprint(currency.Symbol(czk.Amount(v)))
}

// PricePtr formats an optional amount, rendering the unknown value as a dash
// placeholder.
func PricePtr(v *float64) string {
	if v == nil {
		return "—"
	}
	return Price(*v)
}
