package store

import (
	"context"
	"fmt"
)

const schema = `
create table if not exists shortlist_items (
	id                  uuid primary key,
	user_id             uuid not null,
	location_id         text not null,
	state               text not null,
	label               text not null,
	total_score         double precision not null,
	education_score     double precision not null,
	financial_score     double precision not null,
	str_viability_score double precision not null,
	lifestyle_score     double precision not null,
	overall_notes       text not null default '',
	created_at          timestamptz not null default now(),
	unique (user_id, location_id)
);
create index if not exists shortlist_items_user_id_idx on shortlist_items (user_id, created_at);
`

func (s *store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
