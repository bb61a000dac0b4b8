package pricing

import "github.com/shopspring/decimal"

// Normalized is the outcome of normalizing one raw price. All fields are nil
// when the price is unavailable.
type Normalized struct {
	// PriceNumeric is the tax-exclusive local price rounded to a whole unit.
	PriceNumeric *float64
	// PriceUSD is USDExact rounded to a whole dollar.
	PriceUSD *float64
	USDExact *decimal.Decimal
}

// Normalize removes included consumption tax and converts to USD. rate is
// units of region currency per USD and is ignored for the base currency.
// The function is pure.
func Normalize(rawPrice *float64, taxInclusive bool, region RegionSpec, rate float64) Normalized {
	if rawPrice == nil || *rawPrice <= 0 {
		return Normalized{}
	}

	local := decimal.NewFromFloat(*rawPrice)
	if taxInclusive && region.TaxRate.IsPositive() {
		local = local.Div(decimal.NewFromInt(1).Add(region.TaxRate)).Round(0)
	}

	usd := local
	if !region.IsBase() {
		if rate <= 0 {
			rate = region.FallbackRate
		}
		usd = local.Div(decimal.NewFromFloat(rate))
	}

	numeric := local.InexactFloat64()
	rounded := usd.Round(0).InexactFloat64()

	return Normalized{
		PriceNumeric: &numeric,
		PriceUSD:     &rounded,
		USDExact:     &usd,
	}
}
