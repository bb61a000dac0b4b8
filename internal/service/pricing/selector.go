package pricing

import "github.com/ougirez/luxcompare/internal/domain"

// SelectBest flags the cheapest available region in USD and returns its name.
// Records are compared on the rounded PriceUSD; on an exact tie the earlier
// record wins. With no available record nothing is flagged and nil is returned.
func SelectBest(records []domain.RegionPrice) *string {
	best := -1
	for i := range records {
		records[i].IsBest = false
		if !records[i].Available() {
			continue
		}
		if best < 0 || *records[i].PriceUSD < *records[best].PriceUSD {
			best = i
		}
	}

	if best < 0 {
		return nil
	}

	records[best].IsBest = true
	name := records[best].Region
	return &name
}
