// Package format renders AED money values for reports and logs.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// AED returns a currency string with the AED prefix and thousands
// separators (e.g., "AED 1,234.56"). Values pass through a decimal round
// so display never shows binary-float artifacts.
func AED(amount float64) string {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return printer.Sprintf("AED %.2f", rounded)
}

// WholeAED returns a whole-unit currency string (e.g., "AED -11,626").
// Schedule rows and waterfall bars report whole AED.
func WholeAED(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0).IntPart()
	return printer.Sprintf("AED %d", rounded)
}

// Percent returns a percentage with two decimals (e.g., "2.30%").
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", value)
}
