package pricing

import (
	"time"

	"github.com/ougirez/luxcompare/internal/domain"
)

type Identity struct {
	Product        string
	Brand          string
	ConfirmedQuery string
}

func Assemble(id Identity, records []domain.RegionPrice, best *string, searchedAt time.Time, disclaimer string) *domain.PriceResult {
	return &domain.PriceResult{
		Product:        id.Product,
		Brand:          id.Brand,
		ConfirmedQuery: id.ConfirmedQuery,
		Regions:        records,
		BestRegion:     best,
		SearchedAt:     searchedAt.UTC(),
		Disclaimer:     disclaimer,
	}
}
