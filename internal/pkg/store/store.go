package store

import (
	"context"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	EnsureSchema(ctx context.Context) error
	ListShortlist(ctx context.Context, userID string) ([]*domain.ShortlistItem, error)
	InsertShortlistItem(ctx context.Context, item *domain.ShortlistItem) error
	DeleteShortlistItem(ctx context.Context, userID, locationID string) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
