package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display figures use English digit grouping regardless of content locale,
// matching how prices and areas are rendered on the site.
var displayPrinter = message.NewPrinter(language.English)

// FormatAmount renders a decimal with two fraction digits and thousands
// separators, e.g. 1234567.8 -> "1,234,567.80".
func FormatAmount(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return displayPrinter.Sprintf("%.2f", f)
}
