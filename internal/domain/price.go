package domain

import "time"

type Confidence string

const (
	ConfidenceHigh        Confidence = "high"
	ConfidenceMedium      Confidence = "medium"
	ConfidenceUnavailable Confidence = "unavailable"
)

// RegionPrice is the price observation for one region. PriceNumeric and
// PriceUSD are derived from RawPrice by the normalizer; IsBest is set by the
// selector and nothing else.
type RegionPrice struct {
	Region            string     `json:"region"`
	Flag              string     `json:"flag"`
	Currency          string     `json:"currency"`
	RawPrice          *float64   `json:"rawPrice"`
	TaxInclusive      bool       `json:"taxInclusive"`
	LocalPrice        *string    `json:"localPrice"`
	PriceNumeric      *float64   `json:"priceNumeric"`
	PriceUSD          *float64   `json:"priceUSD"`
	PriceUSDFormatted *string    `json:"priceUSDFormatted"`
	ExchangeRate      string     `json:"exchangeRate"`
	TaxNote           string     `json:"taxNote"`
	OfficialURL       string     `json:"officialUrl"`
	Confidence        Confidence `json:"confidence"`
	Notes             *string    `json:"notes"`
	IsBest            bool       `json:"isBest"`
}

// Available reports whether the record can compete for best region. A price
// that rounds to zero USD cannot.
func (r *RegionPrice) Available() bool {
	return r.PriceUSD != nil && *r.PriceUSD > 0 && r.Confidence != ConfidenceUnavailable
}

type PriceResult struct {
	Product        string        `json:"product"`
	Brand          string        `json:"brand"`
	ConfirmedQuery string        `json:"confirmedQuery"`
	Regions        []RegionPrice `json:"regions"`
	BestRegion     *string       `json:"bestRegion"`
	SearchedAt     time.Time     `json:"searchedAt"`
	Disclaimer     string        `json:"disclaimer"`
}

type PriceSearchRequest struct {
	ConfirmedQuery string   `json:"confirmedQuery" validate:"required"`
	Brand          string   `json:"brand"`
	ProductURL     string   `json:"productUrl" validate:"omitempty,url"`
	HomeRegion     string   `json:"homeRegion"`
	HomePrice      *float64 `json:"homePrice" validate:"omitempty,gt=0"`
	HomeCurrency   string   `json:"homeCurrency"`
}

// FXSnapshot is the set of rates a comparison was computed with.
type FXSnapshot struct {
	Rates     map[string]float64 `json:"rates"`
	Fallbacks []string           `json:"fallbacks"`
	FetchedAt time.Time          `json:"fetchedAt"`
}
