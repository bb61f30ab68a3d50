package capedge

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd formats dollar amounts with US grouping separators.
var usd = message.NewPrinter(language.AmericanEnglish)

// FormatMarketCap renders a market cap as a compact dollar string:
// "$12.40B", "$350.00M", or a grouped amount below a million.
// Unknown values (<= 0) render as "-".
func FormatMarketCap(value float64) string {
	switch {
	case value <= 0:
		return "-"
	case value >= 1e9:
		return usd.Sprintf("$%.2fB", value/1e9)
	case value >= 1e6:
		return usd.Sprintf("$%.2fM", value/1e6)
	default:
		return usd.Sprintf("$%.0f", value)
	}
}

// FormatPrice renders a share price, or "-" when unknown.
func FormatPrice(value float64) string {
	if value <= 0 {
		return "-"
	}
	return usd.Sprintf("$%.2f", value)
}
