package domain

type ProductInfo struct {
	Brand          string   `json:"brand"`
	Product        string   `json:"product"`
	SKU            *string  `json:"sku"`
	HomeRegion     string   `json:"homeRegion"`
	HomeFlag       string   `json:"homeFlag"`
	HomeCurrency   string   `json:"homeCurrency"`
	HomePrice      *float64 `json:"homePrice"`
	HomePriceLabel *string  `json:"homePriceLabel"`
	OfficialURL    *string  `json:"officialUrl"`
	Confidence     string   `json:"confidence"`
}

type IdentifyRequest struct {
	Input string `json:"input" validate:"required"`
}

type ClarifyRequest struct {
	Query string `json:"query" validate:"required"`
}

type ClarifyQuestion struct {
	ID       string   `json:"id" validate:"required"`
	Label    string   `json:"label" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=select text"`
	Options  []string `json:"options,omitempty" validate:"required_if=Type select"`
	Required bool     `json:"required"`
}

type ClarifyResponse struct {
	Questions      []ClarifyQuestion `json:"questions" validate:"required,dive"`
	ProductSummary string            `json:"productSummary"`
	Brand          string            `json:"brand"`
}
