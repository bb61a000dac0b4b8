package shortlist

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
)

type fakeStore struct {
	mu    sync.Mutex
	items map[string][]*domain.ShortlistItem
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string][]*domain.ShortlistItem{}}
}

func (f *fakeStore) EnsureSchema(context.Context) error { return nil }

func (f *fakeStore) ListShortlist(_ context.Context, userID string) ([]*domain.ShortlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]*domain.ShortlistItem(nil), f.items[userID]...), nil
}

func (f *fakeStore) InsertShortlistItem(_ context.Context, item *domain.ShortlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.UserID] = append(f.items[item.UserID], item)
	return nil
}

func (f *fakeStore) DeleteShortlistItem(_ context.Context, userID, locationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items[userID] {
		if item.LocationID == locationID {
			f.items[userID] = append(f.items[userID][:i], f.items[userID][i+1:]...)
			return nil
		}
	}
	return constants.ErrDBNotFound
}

func irvine() *domain.LocationScore {
	return &domain.LocationScore{
		ID: "CA|Irvine", State: "ca", Label: "Irvine, CA",
		TotalScore: 80.4, EducationScore: 90.5, FinancialScore: 79.6, STRViabilityScore: 70, LifestyleScore: 60.2,
	}
}

func boston() *domain.LocationScore {
	return &domain.LocationScore{
		ID: "MA|Boston", State: "MA", Label: "Greater Boston, MA",
		TotalScore: 90, EducationScore: 95, FinancialScore: 90, STRViabilityScore: 80, LifestyleScore: 85,
	}
}

func newTestService(st *fakeStore) *Service {
	svc := NewShortlistService(st)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestAddKeepsAtMostTwo(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	items, err := svc.Add(ctx, "u1", irvine())
	if err != nil || len(items) != 1 {
		t.Fatalf("first add: %v %v", items, err)
	}
	if items[0].State != "CA" || items[0].ID == "" || items[0].UserID != "u1" {
		t.Fatalf("unexpected item %+v", items[0])
	}

	// duplicate is a no-op
	if items, err = svc.Add(ctx, "u1", irvine()); err != nil || len(items) != 1 {
		t.Fatalf("duplicate add: %v %v", items, err)
	}

	if items, err = svc.Add(ctx, "u1", boston()); err != nil || len(items) != 2 {
		t.Fatalf("second add: %v %v", items, err)
	}

	third := &domain.LocationScore{ID: "TX|Austin", State: "TX", Label: "Austin, TX"}
	if _, err = svc.Add(ctx, "u1", third); !errors.Is(err, constants.ErrShortlistFull) {
		t.Fatalf("expected ErrShortlistFull, got %v", err)
	}

	// other sessions are independent
	if items, err = svc.Add(ctx, "u2", third); err != nil || len(items) != 1 {
		t.Fatalf("other user: %v %v", items, err)
	}
}

func TestAddValidatesLocation(t *testing.T) {
	svc := newTestService(newFakeStore())
	if _, err := svc.Add(context.Background(), "u1", &domain.LocationScore{ID: "x"}); !errors.Is(err, constants.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()
	_, _ = svc.Add(ctx, "u1", irvine())
	_, _ = svc.Add(ctx, "u1", boston())

	items, err := svc.Remove(ctx, "u1", "CA|Irvine")
	if err != nil || len(items) != 1 || items[0].LocationID != "MA|Boston" {
		t.Fatalf("unexpected result %v %v", items, err)
	}

	if _, err = svc.Remove(ctx, "u1", "CA|Irvine"); !errors.Is(err, constants.ErrDBNotFound) {
		t.Fatalf("expected ErrDBNotFound, got %v", err)
	}
	if _, err = svc.Remove(ctx, "u1", " "); !errors.Is(err, constants.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	items, err := newTestService(newFakeStore()).List(context.Background(), "nobody")
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("expected empty list, got %v %v", items, err)
	}
}

func TestStorageDisabled(t *testing.T) {
	svc := NewShortlistService(nil)
	ctx := context.Background()

	if _, err := svc.List(ctx, "u1"); !errors.Is(err, constants.ErrStorageDisabled) {
		t.Fatalf("List: expected ErrStorageDisabled, got %v", err)
	}
	if _, err := svc.Add(ctx, "u1", irvine()); !errors.Is(err, constants.ErrStorageDisabled) {
		t.Fatalf("Add: expected ErrStorageDisabled, got %v", err)
	}
	if _, err := svc.Export(ctx, "u1"); constants.CodeOf(err) != 503 {
		t.Fatalf("Export: expected 503, got %v", err)
	}
}

func TestExport(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()
	_, _ = svc.Add(ctx, "u1", irvine())

	if _, err := svc.Export(ctx, "u1"); !errors.Is(err, constants.ErrShortlistIncomplete) {
		t.Fatalf("expected ErrShortlistIncomplete, got %v", err)
	}

	_, _ = svc.Add(ctx, "u1", boston())
	data, err := svc.Export(ctx, "u1")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	want := [][]string{
		{"Category", "Irvine, CA", "Greater Boston, MA"},
		{"Total", "80", "90"},
		{"Education", "91", "95"},
		{"Financial", "80", "90"},
		{"STR", "70", "80"},
		{"Lifestyle", "60", "85"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %v", len(want), rows)
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Fatalf("cell %d,%d = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	st := newFakeStore()
	st.err = errors.New("connection refused")

	if _, err := newTestService(st).Add(context.Background(), "u1", irvine()); err == nil || constants.CodeOf(err) != 500 {
		t.Fatalf("expected a 500 error, got %v", err)
	}
}
