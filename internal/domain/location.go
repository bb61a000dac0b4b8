package domain

type LocationScore struct {
	ID                string  `json:"id" validate:"required"`
	State             string  `json:"state" validate:"required"`
	Label             string  `json:"label" validate:"required"`
	TotalScore        float64 `json:"totalScore"`
	EducationScore    float64 `json:"educationScore"`
	FinancialScore    float64 `json:"financialScore"`
	STRViabilityScore float64 `json:"strViabilityScore"`
	LifestyleScore    float64 `json:"lifestyleScore"`
	EducationNotes    string  `json:"educationNotes,omitempty"`
	FinancialNotes    string  `json:"financialNotes,omitempty"`
	STRNotes          string  `json:"strNotes,omitempty"`
	LifestyleNotes    string  `json:"lifestyleNotes,omitempty"`
	OverallNotes      string  `json:"overallNotes,omitempty"`
}

type LocationScoresRequest struct {
	StateCodes []string `json:"stateCodes"`
}

type LocationScoresResponse struct {
	Locations []LocationScore `json:"locations" validate:"required,dive"`
}

type ZipSuggestion struct {
	Zip            string  `json:"zip" validate:"len=5,numeric"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state"`
	Score          float64 `json:"score" validate:"gte=0,lte=100"`
	EducationNotes string  `json:"educationNotes,omitempty"`
	STRNotes       string  `json:"strNotes,omitempty"`
	OverallNotes   string  `json:"overallNotes,omitempty"`
}

type ZipSuggestionsRequest struct {
	State      string `json:"state" validate:"required"`
	Label      string `json:"label" validate:"required"`
	LocationID string `json:"locationId"`
	MaxZips    int    `json:"maxZips"`
}

type ZipSuggestionsResponse struct {
	LocationID string          `json:"locationId"`
	State      string          `json:"state"`
	Label      string          `json:"label"`
	Zips       []ZipSuggestion `json:"zips"`
}

type ZipListing struct {
	URL     string `json:"url" validate:"required,url"`
	Title   string `json:"title,omitempty"`
	Price   string `json:"price,omitempty"`
	Source  string `json:"source,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type ZipListingsRequest struct {
	Zip         string `json:"zip" validate:"required"`
	State       string `json:"state"`
	MaxListings int    `json:"maxListings"`
}

type ZipListingsResponse struct {
	Zip      string       `json:"zip"`
	Listings []ZipListing `json:"listings"`
}
