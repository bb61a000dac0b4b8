package pricing

import (
	"context"
	"sort"
	"time"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

// ResolveRates fills every configured currency from fetched, falling back to
// the region default for each currency that is missing or non-positive.
func ResolveRates(cfg Config, fetched map[string]float64) domain.FXSnapshot {
	snapshot := domain.FXSnapshot{
		Rates:     make(map[string]float64, len(cfg.Regions)),
		Fallbacks: []string{},
	}

	for _, r := range cfg.Regions {
		if r.IsBase() {
			snapshot.Rates[r.Currency] = 1
			continue
		}
		if rate, ok := fetched[r.Currency]; ok && rate > 0 {
			snapshot.Rates[r.Currency] = rate
			continue
		}
		snapshot.Rates[r.Currency] = r.FallbackRate
		snapshot.Fallbacks = append(snapshot.Fallbacks, r.Currency)
	}
	sort.Strings(snapshot.Fallbacks)

	return snapshot
}

// currentRates never fails: an unreachable feed means every currency uses its
// fallback.
func currentRates(ctx context.Context, fetcher oracle.RateFetcher, cfg Config, now time.Time) domain.FXSnapshot {
	fetched, err := fetcher.LatestRates(ctx)
	if err != nil {
		logger.Warnf(ctx, "fx fetch failed, using fallback rates: %s", err.Error())
		fetched = nil
	}

	snapshot := ResolveRates(cfg, fetched)
	snapshot.FetchedAt = now.UTC()
	if len(snapshot.Fallbacks) > 0 {
		logger.Infof(ctx, "fx fallback rates used for %v", snapshot.Fallbacks)
	}

	return snapshot
}
