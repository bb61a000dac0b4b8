package locations

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/domain/dto"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const (
	maxStates         = 20
	scoreSearchLimit  = 20
	scoreSearchPrefix = "Best metros and suburbs for strong public high schools, nearby public universities, " +
		"and owner-occupied-friendly short term rentals in these US states: "
)

var DefaultStates = []string{"CA", "WA", "OR", "TX", "MA", "MI", "WI", "MN", "NJ", "NY"}

var (
	educationWeight = decimal.RequireFromString("0.45")
	financialWeight = decimal.RequireFromString("0.25")
	strWeight       = decimal.RequireFromString("0.15")
	lifestyleWeight = decimal.RequireFromString("0.15")
)

func (s *Service) Scores(ctx context.Context, req *domain.LocationScoresRequest) (*domain.LocationScoresResponse, error) {
	states := normalizeStates(req.StateCodes)

	var payload dto.LocationScores
	err := s.consult(ctx, scoreSearchPrefix+strings.Join(states, ", "), scoreSearchLimit, scoresSystemPrompt,
		func(evidence string) string { return scoresUserPrompt(states, evidence) }, &payload)
	if err != nil {
		return nil, fmt.Errorf("location scores: %w", err)
	}

	locations := make([]domain.LocationScore, 0, len(payload.Locations))
	seen := make(map[string]struct{}, len(payload.Locations))
	for _, loc := range payload.Locations {
		loc.ID = strings.TrimSpace(loc.ID)
		loc.State = strings.ToUpper(strings.TrimSpace(loc.State))
		loc.Label = strings.TrimSpace(loc.Label)
		if err = utils.Validate(&loc); err != nil {
			logger.Warnf(ctx, "dropping location %q: %s", loc.ID, err.Error())
			continue
		}
		if _, ok := seen[loc.ID]; ok {
			continue
		}
		seen[loc.ID] = struct{}{}

		loc.EducationScore = clampScore(loc.EducationScore)
		loc.FinancialScore = clampScore(loc.FinancialScore)
		loc.STRViabilityScore = clampScore(loc.STRViabilityScore)
		loc.LifestyleScore = clampScore(loc.LifestyleScore)
		loc.TotalScore = WeightedTotal(loc)

		locations = append(locations, loc)
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].TotalScore > locations[j].TotalScore
	})

	return &domain.LocationScoresResponse{Locations: locations}, nil
}

// WeightedTotal recomputes the total from the four component scores instead of
// trusting the model's arithmetic. The result has one decimal place.
func WeightedTotal(loc domain.LocationScore) float64 {
	total := decimal.NewFromFloat(loc.EducationScore).Mul(educationWeight).
		Add(decimal.NewFromFloat(loc.FinancialScore).Mul(financialWeight)).
		Add(decimal.NewFromFloat(loc.STRViabilityScore).Mul(strWeight)).
		Add(decimal.NewFromFloat(loc.LifestyleScore).Mul(lifestyleWeight))

	return total.Round(1).InexactFloat64()
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// normalizeStates upper-cases and dedupes the requested codes, keeping at most
// maxStates. No usable code means the default set.
func normalizeStates(codes []string) []string {
	states := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		states = append(states, code)
		if len(states) == maxStates {
			break
		}
	}

	if len(states) == 0 {
		return append([]string(nil), DefaultStates...)
	}
	return states
}
