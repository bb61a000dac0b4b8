package pricing

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/domain/dto"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const extractionMaxTokens = 2000

// HomePrice is a price already known for one region, usually read off the
// product page the user started from.
type HomePrice struct {
	Region RegionSpec
	Price  float64
}

type AggregateRequest struct {
	Query string
	Brand string
	Home  *HomePrice
}

// RawRecord is a region's price as extracted, before normalization.
type RawRecord struct {
	Region       RegionSpec
	RawPrice     *float64
	TaxInclusive bool
	Confidence   domain.Confidence
	OfficialURL  string
	Notes        *string
}

type Extraction struct {
	Product string
	Brand   string
	// Records has one entry per configured region, in configuration order.
	Records []RawRecord
}

type Aggregator struct {
	cfg          Config
	searcher     oracle.Searcher
	llm          oracle.Completer
	maxResults   int
	snippetChars int
}

func NewAggregator(cfg Config, searcher oracle.Searcher, llm oracle.Completer, maxResults, snippetChars int) *Aggregator {
	return &Aggregator{
		cfg:          cfg,
		searcher:     searcher,
		llm:          llm,
		maxResults:   maxResults,
		snippetChars: snippetChars,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, req AggregateRequest) (*Extraction, error) {
	evidence := a.gatherEvidence(ctx, req)

	content, err := a.llm.Complete(ctx, a.extractionMessages(req, evidence), extractionMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("llm.Complete: %w", err)
	}

	var payload dto.PriceExtraction
	if err = utils.DecodeModelJSON(content, &payload, constants.ErrExtractionParse); err != nil {
		logger.Errorf(ctx, "price extraction rejected: %s; raw: %q", err.Error(), content)
		return nil, err
	}

	return a.materialize(req, &payload), nil
}

// gatherEvidence searches every region concurrently. A region whose search
// fails ends up with empty evidence; the others are unaffected. Each goroutine
// writes only its own slot.
func (a *Aggregator) gatherEvidence(ctx context.Context, req AggregateRequest) []string {
	evidence := make([]string, len(a.cfg.Regions))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, region := range a.cfg.Regions {
		if req.Home != nil && req.Home.Region.Name == region.Name {
			continue
		}

		i, region := i, region
		eg.Go(func() error {
			evidence[i] = a.regionEvidence(egCtx, req.Query, region)
			return nil
		})
	}
	_ = eg.Wait()

	return evidence
}

// regionEvidence runs the primary query and, only if it comes back empty, one
// broadened query.
func (a *Aggregator) regionEvidence(ctx context.Context, query string, region RegionSpec) string {
	results, err := a.searcher.Search(ctx, fmt.Sprintf(region.SearchQuery, query), a.maxResults)
	if err != nil {
		logger.Warnf(ctx, "search for %s failed: %s", region.Name, err.Error())
		return ""
	}

	if len(results) == 0 && region.BroadSearchQuery != "" {
		logger.Debugf(ctx, "no results for %s, broadening search", region.Name)
		results, err = a.searcher.Search(ctx, fmt.Sprintf(region.BroadSearchQuery, query), a.maxResults)
		if err != nil {
			logger.Warnf(ctx, "broad search for %s failed: %s", region.Name, err.Error())
			return ""
		}
	}

	return oracle.FormatEvidence(results, a.snippetChars)
}

func (a *Aggregator) materialize(req AggregateRequest, payload *dto.PriceExtraction) *Extraction {
	extraction := &Extraction{
		Product: strings.TrimSpace(payload.Product),
		Brand:   strings.TrimSpace(payload.Brand),
		Records: make([]RawRecord, 0, len(a.cfg.Regions)),
	}
	if extraction.Product == "" {
		extraction.Product = req.Query
	}
	if extraction.Brand == "" {
		extraction.Brand = req.Brand
	}

	for _, spec := range a.cfg.Regions {
		rec := RawRecord{Region: spec, Confidence: domain.ConfidenceUnavailable}

		if ex := findExtracted(payload.Regions, spec); ex != nil {
			rec.RawPrice = ex.RawPrice
			rec.TaxInclusive = ex.TaxInclusive
			rec.Confidence = domain.Confidence(ex.Confidence)
			rec.OfficialURL = ex.OfficialURL
			rec.Notes = ex.Notes
		}

		if req.Home != nil && req.Home.Region.Name == spec.Name {
			price := req.Home.Price
			rec.RawPrice = &price
			rec.Confidence = domain.ConfidenceHigh
		}

		switch {
		case rec.RawPrice == nil || *rec.RawPrice <= 0:
			rec.RawPrice = nil
			rec.Confidence = domain.ConfidenceUnavailable
		case rec.Confidence == domain.ConfidenceUnavailable:
			// a price the model itself calls unavailable is not used
			rec.RawPrice = nil
		}

		extraction.Records = append(extraction.Records, rec)
	}

	return extraction
}

// findExtracted matches by region name first and by currency second. The first
// match wins when the model repeats a region.
func findExtracted(regions []dto.ExtractedRegion, spec RegionSpec) *dto.ExtractedRegion {
	for i := range regions {
		if strings.EqualFold(strings.TrimSpace(regions[i].Region), spec.Name) {
			return &regions[i]
		}
	}
	for i := range regions {
		if regions[i].Currency != "" && strings.EqualFold(regions[i].Currency, spec.Currency) {
			return &regions[i]
		}
	}
	return nil
}
