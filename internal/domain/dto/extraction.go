package dto

// PriceExtraction is the model's answer to the combined price extraction
// prompt. Nothing in it is trusted until it has passed validation.
type PriceExtraction struct {
	Product string            `json:"product"`
	Brand   string            `json:"brand"`
	Regions []ExtractedRegion `json:"regions" validate:"required,dive"`
}

type ExtractedRegion struct {
	Region       string   `json:"region" validate:"required"`
	Currency     string   `json:"currency"`
	RawPrice     *float64 `json:"rawPrice" validate:"omitempty,gte=0"`
	TaxInclusive bool     `json:"taxInclusive"`
	OfficialURL  string   `json:"officialUrl"`
	Confidence   string   `json:"confidence" validate:"required,oneof=high medium unavailable"`
	Notes        *string  `json:"notes"`
}

// ProductIdentification is the model's answer to the identify prompt.
type ProductIdentification struct {
	Brand          string   `json:"brand" validate:"required"`
	Product        string   `json:"product" validate:"required"`
	SKU            *string  `json:"sku"`
	HomePrice      *float64 `json:"homePrice" validate:"omitempty,gt=0"`
	HomePriceLabel *string  `json:"homePriceLabel"`
	OfficialURL    *string  `json:"officialUrl"`
	Confidence     string   `json:"confidence" validate:"omitempty,oneof=high medium low unavailable"`
}
