package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const BaseCurrency = "USD"

const defaultDisclaimer = "Prices sourced from web search and may not reflect current retail prices. " +
	"Always verify on the official brand website before purchasing."

// RateLabel describes how a region's exchange rate is shown to people.
// Inverse labels read "1 EUR = x USD" instead of "1 USD = x EUR".
type RateLabel struct {
	Inverse bool
	Places  int32
}

// RegionSpec is the static description of one market.
type RegionSpec struct {
	Name     string
	Flag     string
	Currency string
	// TaxRate is the consumption tax included in shelf prices, 0 if none.
	TaxRate decimal.Decimal
	TaxNote string
	// FallbackRate is units of Currency per USD used when the FX feed has no rate.
	FallbackRate float64
	RateLabel    RateLabel
	// SearchQuery and BroadSearchQuery are fmt templates taking the product query.
	SearchQuery      string
	BroadSearchQuery string
	// URLMarkers are path fragments identifying the region's localized brand pages.
	URLMarkers []string
}

func (r RegionSpec) IsBase() bool {
	return r.Currency == BaseCurrency
}

// Config is the immutable table the pricing pipeline runs on. Regions are kept
// in display order, which is also the tie-break order of the selector.
type Config struct {
	Regions    []RegionSpec
	Disclaimer string
}

func DefaultConfig() Config {
	return Config{
		Regions: []RegionSpec{
			{
				Name:             "US",
				Flag:             "\U0001F1FA\U0001F1F8",
				Currency:         "USD",
				TaxRate:          decimal.Zero,
				TaxNote:          "MSRP, state sales tax not included",
				FallbackRate:     1,
				SearchQuery:      "%s price USD official retail",
				BroadSearchQuery: "%s US retail price",
			},
			{
				Name:             "Hong Kong",
				Flag:             "\U0001F1ED\U0001F1F0",
				Currency:         "HKD",
				TaxRate:          decimal.Zero,
				TaxNote:          "No VAT or GST in Hong Kong",
				FallbackRate:     7.85,
				RateLabel:        RateLabel{Places: 2},
				SearchQuery:      "%s Hong Kong price HKD official",
				BroadSearchQuery: "%s HK$ price",
				URLMarkers:       []string{"/zh_HK/", "/hk/", "/en_HK/"},
			},
			{
				Name:             "Japan",
				Flag:             "\U0001F1EF\U0001F1F5",
				Currency:         "JPY",
				TaxRate:          decimal.NewFromFloat(0.10),
				TaxNote:          "Pre-tax price (ex 10% consumption tax)",
				FallbackRate:     150,
				RateLabel:        RateLabel{Places: 1},
				SearchQuery:      "%s Japan price JPY official",
				BroadSearchQuery: "%s 価格 円",
				URLMarkers:       []string{"/ja/", "/ja_JP/", "/jp/"},
			},
			{
				Name:             "France",
				Flag:             "\U0001F1EB\U0001F1F7",
				Currency:         "EUR",
				TaxRate:          decimal.NewFromFloat(0.20),
				TaxNote:          "Pre-tax price (ex 20% VAT)",
				FallbackRate:     0.92,
				RateLabel:        RateLabel{Inverse: true, Places: 4},
				SearchQuery:      "%s France prix EUR officiel",
				BroadSearchQuery: "%s prix euros",
				URLMarkers:       []string{"/fr/", "/fr_FR/", "/fr-fr/"},
			},
		},
		Disclaimer: defaultDisclaimer,
	}
}

// WithFallbackRates returns a copy of c with fallback rates replaced for the
// currencies present in rates. Keys are matched case-insensitively.
func (c Config) WithFallbackRates(rates map[string]float64) Config {
	regions := make([]RegionSpec, len(c.Regions))
	copy(regions, c.Regions)

	for i := range regions {
		if regions[i].IsBase() {
			continue
		}
		for currency, rate := range rates {
			if strings.EqualFold(currency, regions[i].Currency) && rate > 0 {
				regions[i].FallbackRate = rate
			}
		}
	}

	c.Regions = regions
	return c
}

// Region looks a region up by name, case-insensitively.
func (c Config) Region(name string) (RegionSpec, bool) {
	for _, r := range c.Regions {
		if strings.EqualFold(r.Name, strings.TrimSpace(name)) {
			return r, true
		}
	}
	return RegionSpec{}, false
}

// HomeRegion picks the region whose URL markers match rawURL. Anything that is
// not a URL, or matches no marker, belongs to the first region.
func (c Config) HomeRegion(rawURL string) RegionSpec {
	if strings.HasPrefix(strings.ToLower(rawURL), "http") {
		lowered := strings.ToLower(rawURL)
		for _, r := range c.Regions {
			for _, marker := range r.URLMarkers {
				if strings.Contains(lowered, strings.ToLower(marker)) {
					return r
				}
			}
		}
	}
	return c.Regions[0]
}

func (c Config) validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("pricing config has no regions")
	}
	seen := make(map[string]struct{}, len(c.Regions))
	for _, r := range c.Regions {
		if _, ok := seen[strings.ToLower(r.Name)]; ok {
			return fmt.Errorf("duplicate region %q", r.Name)
		}
		seen[strings.ToLower(r.Name)] = struct{}{}
		if r.FallbackRate <= 0 {
			return fmt.Errorf("region %q has no fallback rate", r.Name)
		}
	}
	return nil
}
