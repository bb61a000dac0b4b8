package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"HKD": "HK$",
	"JPY": "¥",
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders a whole-unit amount with its currency symbol and
// thousands separators, e.g. "HK$41,000". Unknown currencies get no symbol.
func FormatAmount(amount float64, currency string) string {
	whole := int64(math.Round(amount))
	symbol, ok := currencySymbols[currency]
	if !ok {
		return fmt.Sprintf("%d", whole)
	}
	return symbol + printer.Sprintf("%d", whole)
}

// FormatRate renders the exchange rate label of a region.
func FormatRate(region RegionSpec, rate float64) string {
	if region.IsBase() {
		return "Base currency"
	}
	if rate <= 0 {
		rate = region.FallbackRate
	}

	if region.RateLabel.Inverse {
		inverse := decimal.NewFromInt(1).Div(decimal.NewFromFloat(rate))
		return fmt.Sprintf("1 %s = %s %s", region.Currency, inverse.StringFixed(region.RateLabel.Places), BaseCurrency)
	}
	return fmt.Sprintf("1 %s = %s %s", BaseCurrency, decimal.NewFromFloat(rate).StringFixed(region.RateLabel.Places), region.Currency)
}
