package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/store/xpgx"
)

var shortlistColumns = []string{
	"id", "user_id", "location_id", "state", "label",
	"total_score", "education_score", "financial_score", "str_viability_score", "lifestyle_score",
	"overall_notes", "created_at",
}

func (s *store) ListShortlist(ctx context.Context, userID string) ([]*domain.ShortlistItem, error) {
	items, err := xpgx.Selectx[domain.ShortlistItem](ctx, s.pool, listShortlistQuery(userID))
	if err != nil {
		return nil, fmt.Errorf("select shortlist: %w", wrapErr(err))
	}
	return items, nil
}

// InsertShortlistItem is a no-op when the user already saved the location.
func (s *store) InsertShortlistItem(ctx context.Context, item *domain.ShortlistItem) error {
	if _, err := s.pool.Execx(ctx, insertShortlistQuery(item)); err != nil {
		return fmt.Errorf("insert shortlist item: %w", wrapErr(err))
	}
	return nil
}

func (s *store) DeleteShortlistItem(ctx context.Context, userID, locationID string) error {
	tag, err := s.pool.Execx(ctx, deleteShortlistQuery(userID, locationID))
	if err != nil {
		return fmt.Errorf("delete shortlist item: %w", wrapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete shortlist item %s: %w", locationID, wrapErr(pgx.ErrNoRows))
	}
	return nil
}

func listShortlistQuery(userID string) sq.SelectBuilder {
	return builder().Select(shortlistColumns...).
		From(tableShortlistItems).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id")
}

func insertShortlistQuery(item *domain.ShortlistItem) sq.InsertBuilder {
	return builder().Insert(tableShortlistItems).
		Columns(shortlistColumns...).
		Values(
			item.ID, item.UserID, item.LocationID, item.State, item.Label,
			item.TotalScore, item.EducationScore, item.FinancialScore, item.STRViabilityScore, item.LifestyleScore,
			item.OverallNotes, item.CreatedAt,
		).
		Suffix("on conflict (user_id, location_id) do nothing")
}

func deleteShortlistQuery(userID, locationID string) sq.DeleteBuilder {
	return builder().Delete(tableShortlistItems).
		Where(sq.Eq{"user_id": userID, "location_id": locationID})
}
