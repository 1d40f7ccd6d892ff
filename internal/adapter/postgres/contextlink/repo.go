// Package contextlink implements the ContextLink repository using PostgreSQL.
// Links tie an item's natural-language key to the lesson it appeared in and
// back "view in context" lookups only.
package contextlink

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kotobachat/kotoba-backend/internal/adapter/postgres"
	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// Repo provides context-link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new context-link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO context_links (id, owner_id, item_type, item_key, example_sentence, source_context_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const listByKeySQL = `
SELECT id, owner_id, item_type, item_key, example_sentence, source_context_id, created_at
FROM context_links
WHERE owner_id = $1 AND item_type = $2 AND item_key = $3
ORDER BY created_at DESC`

// Create inserts a new context link. ID and CreatedAt are assigned here.
func (r *Repo) Create(ctx context.Context, link *domain.ContextLink) (*domain.ContextLink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	link.ID = uuid.New()
	link.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, insertSQL,
		link.ID, link.OwnerID, link.ItemType, link.ItemKey,
		link.ExampleSentence, link.SourceContextID, link.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "context link", link.ID)
	}

	return link, nil
}

// ListByKey returns all context links for an item key, newest first.
func (r *Repo) ListByKey(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, key string) ([]*domain.ContextLink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByKeySQL, ownerID, itemType, key)
	if err != nil {
		return nil, fmt.Errorf("list context links: %w", err)
	}
	defer rows.Close()

	links := []*domain.ContextLink{}
	for rows.Next() {
		var l domain.ContextLink
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.ItemType, &l.ItemKey,
			&l.ExampleSentence, &l.SourceContextID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan context link: %w", err)
		}
		links = append(links, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate context links: %w", err)
	}

	return links, nil
}
