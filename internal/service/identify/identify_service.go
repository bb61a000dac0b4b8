// Package identify turns a product URL or free-text SKU into a product identity
// and, when it can, the price on the brand page the user started from.
package identify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/domain/dto"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/oracle"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
	"github.com/ougirez/luxcompare/internal/service/pricing"
)

const (
	searchResults     = 4
	searchChars       = 800
	identifyTokens    = 800
	clarifyTokens     = 1200
	defaultConfidence = "medium"
)

const identifySystemPrompt = "You are a luxury goods expert. Extract product info from search results. " +
	"Return ONLY valid JSON, no markdown."

type PageSource interface {
	Fetch(ctx context.Context, pageURL string) (*PageMeta, error)
}

type Service struct {
	regions  pricing.Config
	searcher oracle.Searcher
	llm      oracle.Completer
	pages    PageSource
}

func NewIdentifyService(regions pricing.Config, searcher oracle.Searcher, llm oracle.Completer, pages PageSource) *Service {
	return &Service{
		regions:  regions,
		searcher: searcher,
		llm:      llm,
		pages:    pages,
	}
}

func (s *Service) Identify(ctx context.Context, req *domain.IdentifyRequest) (*domain.ProductInfo, error) {
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, fmt.Errorf("%w: input is required", constants.ErrBadRequest)
	}

	isURL := strings.HasPrefix(strings.ToLower(input), "http")
	home := s.regions.HomeRegion(input)

	var (
		evidence string
		page     *PageMeta
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		results, err := s.searcher.Search(egCtx, input, searchResults)
		if err != nil {
			logger.Warnf(ctx, "identify search failed: %s", err.Error())
			return nil
		}
		evidence = oracle.FormatEvidence(results, searchChars)
		return nil
	})
	if isURL && s.pages != nil {
		eg.Go(func() error {
			meta, err := s.pages.Fetch(egCtx, input)
			if err != nil {
				logger.Warnf(ctx, "product page fetch failed: %s", err.Error())
				return nil
			}
			page = meta
			return nil
		})
	}
	_ = eg.Wait()

	content, err := s.llm.Complete(ctx, identifyMessages(input, isURL, home, evidence, page), identifyTokens)
	if err != nil {
		return nil, fmt.Errorf("llm.Complete: %w", err)
	}

	var parsed dto.ProductIdentification
	if err = utils.DecodeModelJSON(content, &parsed, constants.ErrExtractionParse); err != nil {
		logger.Errorf(ctx, "identification rejected: %s; raw: %q", err.Error(), content)
		return nil, err
	}

	return assembleInfo(input, isURL, home, &parsed, page), nil
}

func identifyMessages(input string, isURL bool, home pricing.RegionSpec, evidence string, page *PageMeta) []oracle.Message {
	kind := "SKU"
	if isURL {
		kind = "URL"
	}
	if evidence == "" {
		evidence = "No results"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Input: %s\nType: %s\nHome region: %s\n", input, kind, home.Name)
	if page != nil {
		if pageEvidence := page.Evidence(); pageEvidence != "" {
			fmt.Fprintf(&b, "\nProduct page:\n%s\n", pageEvidence)
		}
	}
	fmt.Fprintf(&b, "\nSearch results:\n%s\n\n", evidence)
	b.WriteString(`Return: {"brand":"Harry Winston","product":"Ribbon Diamond Wedding Band","sku":"WBDPRDPAR",` +
		`"homePrice":7100,"homePriceLabel":"$7,100","officialUrl":"https://www.harrywinston.com/en/products/...","confidence":"high"}`)

	return []oracle.Message{
		oracle.System(identifySystemPrompt),
		oracle.User(b.String()),
	}
}

func assembleInfo(input string, isURL bool, home pricing.RegionSpec, parsed *dto.ProductIdentification, page *PageMeta) *domain.ProductInfo {
	info := &domain.ProductInfo{
		Brand:          strings.TrimSpace(parsed.Brand),
		Product:        strings.TrimSpace(parsed.Product),
		SKU:            nonBlank(parsed.SKU),
		HomeRegion:     home.Name,
		HomeFlag:       home.Flag,
		HomeCurrency:   home.Currency,
		HomePrice:      parsed.HomePrice,
		HomePriceLabel: nonBlank(parsed.HomePriceLabel),
		OfficialURL:    nonBlank(parsed.OfficialURL),
		Confidence:     parsed.Confidence,
	}

	if info.SKU == nil {
		sku := input
		if isURL {
			sku = lastPathSegment(input)
		}
		if sku != "" {
			info.SKU = &sku
		}
	}

	// the page's own price metadata counts only when it is in the home currency
	if info.HomePrice == nil && page != nil && page.Price != nil && strings.EqualFold(page.Currency, home.Currency) {
		price := *page.Price
		info.HomePrice = &price
	}
	if info.HomePrice != nil && info.HomePriceLabel == nil {
		label := pricing.FormatAmount(*info.HomePrice, home.Currency)
		info.HomePriceLabel = &label
	}

	if info.OfficialURL == nil && isURL {
		officialURL := input
		info.OfficialURL = &officialURL
	}
	if info.Confidence == "" {
		info.Confidence = defaultConfidence
	}

	return info
}

func lastPathSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
