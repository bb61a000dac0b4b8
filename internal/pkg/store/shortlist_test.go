package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
)

func TestListShortlistQuery(t *testing.T) {
	sql, args, err := listShortlistQuery("u-1").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	want := "SELECT " + strings.Join(shortlistColumns, ", ") + " FROM shortlist_items WHERE user_id = $1 ORDER BY created_at, id"
	if sql != want {
		t.Fatalf("unexpected sql:\n%s\nwant:\n%s", sql, want)
	}
	if len(args) != 1 || args[0] != "u-1" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInsertShortlistQuery(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	item := &domain.ShortlistItem{
		ID: "i-1", UserID: "u-1", LocationID: "CA|Irvine", State: "CA", Label: "Irvine, CA",
		TotalScore: 80, EducationScore: 90, FinancialScore: 80, STRViabilityScore: 70, LifestyleScore: 60,
		CreatedAt: created,
	}

	sql, args, err := insertShortlistQuery(item).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	placeholders := make([]string, len(shortlistColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	want := "INSERT INTO shortlist_items (" + strings.Join(shortlistColumns, ",") + ") VALUES (" +
		strings.Join(placeholders, ",") + ") on conflict (user_id, location_id) do nothing"
	if sql != want {
		t.Fatalf("unexpected sql:\n%s\nwant:\n%s", sql, want)
	}
	if len(args) != len(shortlistColumns) || args[2] != "CA|Irvine" || args[11] != created {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestDeleteShortlistQuery(t *testing.T) {
	sql, args, err := deleteShortlistQuery("u-1", "CA|Irvine").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if sql != "DELETE FROM shortlist_items WHERE location_id = $1 AND user_id = $2" {
		t.Fatalf("unexpected sql %s", sql)
	}
	if args[0] != "CA|Irvine" || args[1] != "u-1" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestWrapErr(t *testing.T) {
	if !errors.Is(wrapErr(fmt.Errorf("scan: %w", pgx.ErrNoRows)), constants.ErrDBNotFound) {
		t.Fatalf("no rows must map to ErrDBNotFound")
	}
	other := errors.New("boom")
	if wrapErr(other) != other {
		t.Fatalf("other errors must pass through")
	}
}
