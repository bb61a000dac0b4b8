package locations

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/domain/dto"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const (
	defaultMaxListings = 12
	maxListingsLimit   = 30
	listingCap         = 12
)

func (s *Service) Listings(ctx context.Context, req *domain.ZipListingsRequest) (*domain.ZipListingsResponse, error) {
	req.Zip = strings.TrimSpace(req.Zip)
	req.State = strings.ToUpper(strings.TrimSpace(req.State))
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: zip is required", constants.ErrBadRequest)
	}

	maxListings := req.MaxListings
	if maxListings <= 0 || maxListings > maxListingsLimit {
		maxListings = defaultMaxListings
	}

	where := req.Zip
	if req.State != "" {
		where += " " + req.State
	}
	keyword := fmt.Sprintf("Current homes for sale in ZIP %s on Redfin, Zillow, Opendoor, or similar real estate portals.", where)

	var payload dto.ZipListings
	err := s.consult(ctx, keyword, maxListings, listingsSystemPrompt,
		func(evidence string) string { return listingsUserPrompt(req, evidence) }, &payload)
	if err != nil {
		return nil, fmt.Errorf("zip listings: %w", err)
	}

	resp := &domain.ZipListingsResponse{
		Zip:      req.Zip,
		Listings: make([]domain.ZipListing, 0, listingCap),
	}

	seen := make(map[string]struct{}, len(payload.Listings))
	for _, l := range payload.Listings {
		l.URL = strings.TrimSpace(l.URL)
		host, ok := listingHost(l.URL)
		if !ok {
			logger.Warnf(ctx, "dropping listing with url %q", l.URL)
			continue
		}
		if err = utils.Validate(&l); err != nil {
			logger.Warnf(ctx, "dropping listing %q: %s", l.URL, err.Error())
			continue
		}
		if _, dup := seen[l.URL]; dup {
			continue
		}
		seen[l.URL] = struct{}{}

		if strings.TrimSpace(l.Source) == "" {
			l.Source = host
		}

		resp.Listings = append(resp.Listings, l)
		if len(resp.Listings) == listingCap {
			break
		}
	}

	return resp, nil
}

// listingHost returns the host of an absolute http(s) URL without "www.".
func listingHost(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www."), true
}
