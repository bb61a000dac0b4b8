// Package shortlist keeps the (at most two) metros a session has starred and
// exports them side by side as a spreadsheet.
package shortlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/store"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

const MaxItems = 2

type Service struct {
	store store.Store
	now   func() time.Time
}

// NewShortlistService accepts a nil store; every call then fails with
// ErrStorageDisabled.
func NewShortlistService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context, userID string) ([]*domain.ShortlistItem, error) {
	if s.store == nil {
		return nil, constants.ErrStorageDisabled
	}

	items, err := s.store.ListShortlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store.ListShortlist: %w", err)
	}
	if items == nil {
		items = []*domain.ShortlistItem{}
	}
	return items, nil
}

// Add saves loc for userID. Saving a location twice changes nothing; a third
// distinct location is rejected.
func (s *Service) Add(ctx context.Context, userID string, loc *domain.LocationScore) ([]*domain.ShortlistItem, error) {
	if s.store == nil {
		return nil, constants.ErrStorageDisabled
	}
	if err := utils.Validate(loc); err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}

	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.LocationID == loc.ID {
			return items, nil
		}
	}
	if len(items) >= MaxItems {
		return nil, constants.ErrShortlistFull
	}

	item := &domain.ShortlistItem{
		ID:                uuid.NewString(),
		UserID:            userID,
		LocationID:        loc.ID,
		State:             strings.ToUpper(loc.State),
		Label:             loc.Label,
		TotalScore:        loc.TotalScore,
		EducationScore:    loc.EducationScore,
		FinancialScore:    loc.FinancialScore,
		STRViabilityScore: loc.STRViabilityScore,
		LifestyleScore:    loc.LifestyleScore,
		OverallNotes:      loc.OverallNotes,
		CreatedAt:         s.now().UTC(),
	}
	if err = s.store.InsertShortlistItem(ctx, item); err != nil {
		return nil, fmt.Errorf("store.InsertShortlistItem: %w", err)
	}
	logger.Infof(ctx, "shortlisted %s", loc.ID)

	return append(items, item), nil
}

func (s *Service) Remove(ctx context.Context, userID, locationID string) ([]*domain.ShortlistItem, error) {
	if s.store == nil {
		return nil, constants.ErrStorageDisabled
	}
	if strings.TrimSpace(locationID) == "" {
		return nil, fmt.Errorf("%w: locationId is required", constants.ErrBadRequest)
	}

	if err := s.store.DeleteShortlistItem(ctx, userID, locationID); err != nil {
		return nil, fmt.Errorf("store.DeleteShortlistItem: %w", err)
	}

	return s.List(ctx, userID)
}
