package locations

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/domain/dto"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const (
	defaultMaxZips = 8
	maxZipsLimit   = 20
	zipCap         = 10
)

func (s *Service) Zips(ctx context.Context, req *domain.ZipSuggestionsRequest) (*domain.ZipSuggestionsResponse, error) {
	req.State = strings.ToUpper(strings.TrimSpace(req.State))
	req.Label = strings.TrimSpace(req.Label)
	req.LocationID = strings.TrimSpace(req.LocationID)
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: state and label are required", constants.ErrBadRequest)
	}

	maxZips := req.MaxZips
	if maxZips <= 0 || maxZips > maxZipsLimit {
		maxZips = defaultMaxZips
	}

	keyword := fmt.Sprintf("Best ZIP codes for families with strong public high schools and good "+
		"owner-occupied-friendly short term rental potential in %s, %s", req.Label, req.State)

	var payload dto.ZipSuggestions
	err := s.consult(ctx, keyword, maxZips, zipsSystemPrompt,
		func(evidence string) string { return zipsUserPrompt(req, evidence) }, &payload)
	if err != nil {
		return nil, fmt.Errorf("zip suggestions: %w", err)
	}

	resp := &domain.ZipSuggestionsResponse{
		LocationID: req.LocationID,
		State:      req.State,
		Label:      req.Label,
		Zips:       make([]domain.ZipSuggestion, 0, zipCap),
	}
	if resp.LocationID == "" {
		resp.LocationID = strings.TrimSpace(payload.LocationID)
	}

	seen := make(map[string]struct{}, len(payload.Zips))
	for _, z := range payload.Zips {
		z.Zip = strings.TrimSpace(z.Zip)
		z.State = req.State
		if err = utils.Validate(&z); err != nil {
			logger.Warnf(ctx, "dropping zip %q: %s", z.Zip, err.Error())
			continue
		}
		if _, ok := seen[z.Zip]; ok {
			continue
		}
		seen[z.Zip] = struct{}{}

		resp.Zips = append(resp.Zips, z)
		if len(resp.Zips) == zipCap {
			break
		}
	}

	return resp, nil
}
