package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("HKT", 8*3600))

func newTestService(t *testing.T, llm *fakeLLM, rates *fakeRates, searcher *fakeSearcher) *Service {
	t.Helper()
	if searcher == nil {
		searcher = &fakeSearcher{respond: func(_ context.Context, keyword string) ([]oracle.SearchResult, error) {
			return resultFor(keyword), nil
		}}
	}
	svc, err := NewService(DefaultConfig(), searcher, llm, rates, Options{MaxResults: 5, SnippetChars: 300})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func liveRates() *fakeRates {
	return &fakeRates{rates: map[string]float64{"USD": 1, "HKD": 7.85, "JPY": 150, "EUR": 0.92}}
}

func TestCompareEndToEnd(t *testing.T) {
	svc := newTestService(t, &fakeLLM{content: chanelExtraction}, liveRates(), nil)

	res, err := svc.Compare(context.Background(), &domain.PriceSearchRequest{
		ConfirmedQuery: "  Chanel Classic Flap Bag Medium ",
		Brand:          "Chanel",
	})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if res.BestRegion == nil || *res.BestRegion != "US" {
		t.Fatalf("expected US best, got %v", res.BestRegion)
	}
	if res.ConfirmedQuery != "Chanel Classic Flap Bag Medium" {
		t.Fatalf("query not trimmed: %q", res.ConfirmedQuery)
	}
	if !res.SearchedAt.Equal(fixedNow) || res.SearchedAt.Location() != time.UTC {
		t.Fatalf("unexpected searchedAt %v", res.SearchedAt)
	}
	if res.Disclaimer == "" {
		t.Fatalf("missing disclaimer")
	}

	wantUSD := []float64{5200, 5223, 5867, 6467}
	wantLocal := []string{"$5,200", "HK$41,000", "¥880,000", "€5,950"}
	for i, rec := range res.Regions {
		if rec.PriceUSD == nil || *rec.PriceUSD != wantUSD[i] {
			t.Fatalf("%s: expected %v USD, got %v", rec.Region, wantUSD[i], rec.PriceUSD)
		}
		if rec.LocalPrice == nil || *rec.LocalPrice != wantLocal[i] {
			t.Fatalf("%s: expected local %s, got %v", rec.Region, wantLocal[i], rec.LocalPrice)
		}
		if rec.IsBest != (i == 0) {
			t.Fatalf("%s: isBest=%v", rec.Region, rec.IsBest)
		}
	}

	fr := res.Regions[3]
	if fr.Confidence != domain.ConfidenceMedium || fr.Notes == nil || *fr.Notes != "resale listing" {
		t.Fatalf("unexpected France record %+v", fr)
	}
	if fr.ExchangeRate != "1 EUR = 1.0870 USD" || *fr.PriceUSDFormatted != "$6,467" {
		t.Fatalf("unexpected France labels %q %q", fr.ExchangeRate, *fr.PriceUSDFormatted)
	}
	if res.Regions[2].TaxNote != "Pre-tax price (ex 10% consumption tax)" {
		t.Fatalf("unexpected Japan tax note %q", res.Regions[2].TaxNote)
	}
}

func TestCompareFallsBackWhenFXFails(t *testing.T) {
	svc := newTestService(t, &fakeLLM{content: chanelExtraction}, &fakeRates{err: errUpstream}, nil)

	res, err := svc.Compare(context.Background(), &domain.PriceSearchRequest{ConfirmedQuery: "Chanel Classic Flap"})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if res.Regions[1].ExchangeRate != "1 USD = 7.85 HKD" || *res.Regions[1].PriceUSD != 5223 {
		t.Fatalf("fallback rate not applied: %+v", res.Regions[1])
	}
}

func TestCompareRejectsBlankQuery(t *testing.T) {
	llm := &fakeLLM{content: chanelExtraction}
	svc := newTestService(t, llm, liveRates(), nil)

	for _, q := range []string{"", "   "} {
		_, err := svc.Compare(context.Background(), &domain.PriceSearchRequest{ConfirmedQuery: q})
		if !errors.Is(err, constants.ErrBadRequest) {
			t.Fatalf("query %q: expected ErrBadRequest, got %v", q, err)
		}
	}
	if llm.calls != 0 {
		t.Fatalf("model must not be called for a rejected request")
	}
}

func TestCompareHomePriceValidation(t *testing.T) {
	svc := newTestService(t, &fakeLLM{content: chanelExtraction}, liveRates(), nil)
	price := 7100.0

	cases := map[string]*domain.PriceSearchRequest{
		"unknown region":    {ConfirmedQuery: "q", HomePrice: &price, HomeRegion: "Italy"},
		"currency mismatch": {ConfirmedQuery: "q", HomePrice: &price, HomeRegion: "Japan", HomeCurrency: "EUR"},
		"no region source":  {ConfirmedQuery: "q", HomePrice: &price},
		"negative price":    {ConfirmedQuery: "q", HomePrice: ptr(-1), HomeRegion: "US"},
	}
	for name, req := range cases {
		if _, err := svc.Compare(context.Background(), req); !errors.Is(err, constants.ErrBadRequest) {
			t.Fatalf("%s: expected ErrBadRequest, got %v", name, err)
		}
	}
}

func TestCompareInfersHomeRegionFromURL(t *testing.T) {
	searcher := &fakeSearcher{}
	llm := &fakeLLM{content: chanelExtraction}
	svc := newTestService(t, llm, liveRates(), searcher)

	res, err := svc.Compare(context.Background(), &domain.PriceSearchRequest{
		ConfirmedQuery: "Chanel Classic Flap",
		ProductURL:     "https://www.chanel.com/ja_JP/fashion/p/A01112/classic-handbag/",
		HomePrice:      ptr(990000),
		HomeCurrency:   "jpy",
	})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if searcher.searched("Japan price JPY") {
		t.Fatalf("home region must not be searched")
	}
	jp := res.Regions[2]
	if *jp.RawPrice != 990000 || jp.Confidence != domain.ConfidenceHigh {
		t.Fatalf("home price not used for Japan: %+v", jp)
	}
	if *jp.PriceNumeric != 900000 || *jp.PriceUSD != 6000 {
		t.Fatalf("unexpected Japan normalization %v / %v", *jp.PriceNumeric, *jp.PriceUSD)
	}
}

func TestCompareNoAvailableRegion(t *testing.T) {
	llm := &fakeLLM{content: `{"product":"Ribbon ring","brand":"Harry Winston","regions":[]}`}
	svc := newTestService(t, llm, liveRates(), nil)

	res, err := svc.Compare(context.Background(), &domain.PriceSearchRequest{ConfirmedQuery: "Harry Winston ribbon ring"})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if res.BestRegion != nil {
		t.Fatalf("expected no best region, got %s", *res.BestRegion)
	}
	if len(res.Regions) != 4 {
		t.Fatalf("expected 4 regions, got %d", len(res.Regions))
	}
	for _, rec := range res.Regions {
		if rec.Confidence != domain.ConfidenceUnavailable || rec.LocalPrice != nil || rec.IsBest {
			t.Fatalf("unexpected record %+v", rec)
		}
	}
}

func TestCompareIgnoresPriceRoundingToZeroUSD(t *testing.T) {
	llm := &fakeLLM{content: `{"product":"Ribbon ring","brand":"Harry Winston","regions":[
{"region":"US","currency":"USD","rawPrice":7100,"taxInclusive":false,"confidence":"high"},
{"region":"Japan","currency":"JPY","rawPrice":1,"taxInclusive":true,"confidence":"high"}]}`}
	svc := newTestService(t, llm, liveRates(), nil)

	res, err := svc.Compare(context.Background(), &domain.PriceSearchRequest{ConfirmedQuery: "Harry Winston ribbon ring"})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if res.BestRegion == nil || *res.BestRegion != "US" {
		t.Fatalf("expected US best, got %v", res.BestRegion)
	}
	for _, r := range res.Regions {
		if r.Region == "Japan" && r.IsBest {
			t.Fatalf("Japan flagged best with priceUSD %v", r.PriceUSD)
		}
	}
}

func TestRatesReportsFallbacks(t *testing.T) {
	svc := newTestService(t, &fakeLLM{}, &fakeRates{rates: map[string]float64{"HKD": 7.8}}, nil)

	snap := svc.Rates(context.Background())
	if snap.Rates["HKD"] != 7.8 || len(snap.Fallbacks) != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if !snap.FetchedAt.Equal(fixedNow) {
		t.Fatalf("unexpected fetchedAt %v", snap.FetchedAt)
	}
}
