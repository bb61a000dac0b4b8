package dto

import "github.com/ougirez/luxcompare/internal/domain"

// Entries are validated one by one so that a single malformed ZIP or listing
// does not sink the whole answer.

type LocationScores struct {
	Locations []domain.LocationScore `json:"locations" validate:"required"`
}

type ZipSuggestions struct {
	LocationID string                 `json:"locationId"`
	Zips       []domain.ZipSuggestion `json:"zips" validate:"required"`
}

type ZipListings struct {
	Zip      string              `json:"zip"`
	Listings []domain.ZipListing `json:"listings" validate:"required"`
}
