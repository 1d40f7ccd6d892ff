// Package reviewevent implements the ReviewEvent repository using PostgreSQL.
// Events are append-only history; the only delete is the cascade that runs
// when the reviewed item itself is deleted.
package reviewevent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kotobachat/kotoba-backend/internal/adapter/postgres"
	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// Repo provides review-event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review-event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO review_events (id, owner_id, item_type, item_id, outcome,
       old_stage, new_stage, old_next_review, new_next_review, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const listByItemSQL = `
SELECT id, owner_id, item_type, item_id, outcome,
       old_stage, new_stage, old_next_review, new_next_review, created_at
FROM review_events
WHERE owner_id = $1 AND item_type = $2 AND item_id = $3
ORDER BY created_at DESC
LIMIT $4`

const deleteByItemSQL = `
DELETE FROM review_events
WHERE owner_id = $1 AND item_type = $2 AND item_id = $3`

// Create appends a review event. ID and CreatedAt are assigned here.
func (r *Repo) Create(ctx context.Context, ev *domain.ReviewEvent) (*domain.ReviewEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ev.ID = uuid.New()
	ev.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, insertSQL,
		ev.ID, ev.OwnerID, ev.ItemType, ev.ItemID, ev.Outcome,
		ev.OldStage, ev.NewStage, ev.OldNextReview, ev.NewNextReview, ev.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "review event", ev.ID)
	}

	return ev, nil
}

// ListByItem returns an item's review history, newest first.
func (r *Repo) ListByItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID, limit int) ([]*domain.ReviewEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByItemSQL, ownerID, itemType, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list review events: %w", err)
	}
	defer rows.Close()

	events := []*domain.ReviewEvent{}
	for rows.Next() {
		var ev domain.ReviewEvent
		if err := rows.Scan(&ev.ID, &ev.OwnerID, &ev.ItemType, &ev.ItemID, &ev.Outcome,
			&ev.OldStage, &ev.NewStage, &ev.OldNextReview, &ev.NewNextReview, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review events: %w", err)
	}

	return events, nil
}

// DeleteByItem removes all events for an item. Called only from the item
// deletion transaction.
func (r *Repo) DeleteByItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByItemSQL, ownerID, itemType, itemID); err != nil {
		return postgres.MapError(err, "review event", itemID)
	}
	return nil
}
