// Package pricing compares the price of one product across a fixed set of
// regions: it gathers evidence, has the model extract raw prices, normalizes
// them to tax-exclusive USD and flags the cheapest region.
package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

type Options struct {
	MaxResults   int
	SnippetChars int
}

type Service struct {
	cfg        Config
	aggregator *Aggregator
	rates      oracle.RateFetcher
	now        func() time.Time
}

func NewService(cfg Config, searcher oracle.Searcher, llm oracle.Completer, rates oracle.RateFetcher, opts Options) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Service{
		cfg:        cfg,
		aggregator: NewAggregator(cfg, searcher, llm, opts.MaxResults, opts.SnippetChars),
		rates:      rates,
		now:        time.Now,
	}, nil
}

func (s *Service) Config() Config {
	return s.cfg
}

// Compare runs the whole pipeline for one confirmed product query.
func (s *Service) Compare(ctx context.Context, req *domain.PriceSearchRequest) (*domain.PriceResult, error) {
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	req.ConfirmedQuery = strings.TrimSpace(req.ConfirmedQuery)
	if req.ConfirmedQuery == "" {
		return nil, fmt.Errorf("%w: confirmedQuery is required", constants.ErrBadRequest)
	}

	home, err := s.homePrice(req)
	if err != nil {
		return nil, err
	}

	snapshot := currentRates(ctx, s.rates, s.cfg, s.now())

	extraction, err := s.aggregator.Aggregate(ctx, AggregateRequest{
		Query: req.ConfirmedQuery,
		Brand: req.Brand,
		Home:  home,
	})
	if err != nil {
		return nil, fmt.Errorf("aggregator.Aggregate: %w", err)
	}

	records := make([]domain.RegionPrice, 0, len(extraction.Records))
	for _, raw := range extraction.Records {
		records = append(records, buildRecord(raw, snapshot.Rates[raw.Region.Currency]))
	}

	best := SelectBest(records)
	if best != nil {
		logger.Infof(ctx, "best region for %q is %s", req.ConfirmedQuery, *best)
	} else {
		logger.Infof(ctx, "no region has a usable price for %q", req.ConfirmedQuery)
	}

	return Assemble(Identity{
		Product:        extraction.Product,
		Brand:          extraction.Brand,
		ConfirmedQuery: req.ConfirmedQuery,
	}, records, best, s.now(), s.cfg.Disclaimer), nil
}

// Rates reports the rates a comparison started now would use.
func (s *Service) Rates(ctx context.Context) domain.FXSnapshot {
	return currentRates(ctx, s.rates, s.cfg, s.now())
}

// homePrice resolves the optional home region seed. Without homeRegion the
// region is inferred from productUrl.
func (s *Service) homePrice(req *domain.PriceSearchRequest) (*HomePrice, error) {
	if req.HomePrice == nil {
		return nil, nil
	}

	var region RegionSpec
	switch {
	case req.HomeRegion != "":
		var ok bool
		region, ok = s.cfg.Region(req.HomeRegion)
		if !ok {
			return nil, fmt.Errorf("%w: unknown homeRegion %q", constants.ErrBadRequest, req.HomeRegion)
		}
	case req.ProductURL != "":
		region = s.cfg.HomeRegion(req.ProductURL)
	default:
		return nil, fmt.Errorf("%w: homePrice needs homeRegion or productUrl", constants.ErrBadRequest)
	}

	if req.HomeCurrency != "" && !strings.EqualFold(req.HomeCurrency, region.Currency) {
		return nil, fmt.Errorf("%w: homeCurrency %s does not match %s (%s)",
			constants.ErrBadRequest, req.HomeCurrency, region.Name, region.Currency)
	}

	return &HomePrice{Region: region, Price: *req.HomePrice}, nil
}

func buildRecord(raw RawRecord, rate float64) domain.RegionPrice {
	n := Normalize(raw.RawPrice, raw.TaxInclusive, raw.Region, rate)

	rec := domain.RegionPrice{
		Region:       raw.Region.Name,
		Flag:         raw.Region.Flag,
		Currency:     raw.Region.Currency,
		RawPrice:     raw.RawPrice,
		TaxInclusive: raw.TaxInclusive,
		PriceNumeric: n.PriceNumeric,
		PriceUSD:     n.PriceUSD,
		ExchangeRate: FormatRate(raw.Region, rate),
		TaxNote:      raw.Region.TaxNote,
		OfficialURL:  raw.OfficialURL,
		Confidence:   raw.Confidence,
		Notes:        raw.Notes,
	}

	if n.PriceNumeric == nil {
		rec.Confidence = domain.ConfidenceUnavailable
		return rec
	}

	local := FormatAmount(*n.PriceNumeric, raw.Region.Currency)
	usd := FormatAmount(*n.PriceUSD, BaseCurrency)
	rec.LocalPrice = &local
	rec.PriceUSDFormatted = &usd

	return rec
}
