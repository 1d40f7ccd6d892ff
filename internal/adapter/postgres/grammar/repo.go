// Package grammar implements the GrammarPoint repository using PostgreSQL.
package grammar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kotobachat/kotoba-backend/internal/adapter/postgres"
	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// Repo provides grammar-point persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new grammar-point repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const grammarColumns = `id, owner_id, grammar_point, label, explanation, story_usage,
       narrative_connection, example_sentence, srs_stage, next_review,
       source_context_id, created_at`

const listByPointSQL = `
SELECT ` + grammarColumns + `
FROM grammar_points
WHERE owner_id = $1 AND grammar_point = $2 AND lower(label) = lower($3)`

const getByIDSQL = `
SELECT ` + grammarColumns + `
FROM grammar_points
WHERE owner_id = $1 AND id = $2`

const getDueSQL = `
SELECT ` + grammarColumns + `
FROM grammar_points
WHERE owner_id = $1
  AND srs_stage < $2
  AND (next_review IS NULL OR next_review <= $3)
ORDER BY next_review ASC NULLS FIRST
LIMIT $4`

const insertSQL = `
INSERT INTO grammar_points (` + grammarColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const updateSRSSQL = `
UPDATE grammar_points
SET srs_stage = $3, next_review = $4
WHERE owner_id = $1 AND id = $2`

const deleteSQL = `
DELETE FROM grammar_points
WHERE owner_id = $1 AND id = $2`

// ListByPoint returns the owner's grammar rows matching the identity key
// (grammar_point + case-insensitive label). The gateway compares each
// explanation for near-duplicate suppression, so all matches are returned,
// not just one.
func (r *Repo) ListByPoint(ctx context.Context, ownerID uuid.UUID, point, label string) ([]*domain.GrammarPoint, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByPointSQL, ownerID, point, label)
	if err != nil {
		return nil, fmt.Errorf("list grammar by point: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// GetByID returns a grammar row by primary key filtered by owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.GrammarPoint, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, ownerID, id)
	g, err := scanGrammar(row)
	if err != nil {
		return nil, mapError(err, id)
	}
	return g, nil
}

// GetDue returns grammar points due for review at now.
func (r *Repo) GetDue(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.GrammarPoint, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getDueSQL, ownerID, terminalStage, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due grammar: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// Create inserts a new grammar row. ID and CreatedAt are assigned here.
func (r *Repo) Create(ctx context.Context, g *domain.GrammarPoint) (*domain.GrammarPoint, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g.ID = uuid.New()
	g.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, insertSQL,
		g.ID, g.OwnerID, g.GrammarPoint, g.Label, g.Explanation, g.StoryUsage,
		g.NarrativeConnection, g.ExampleSentence, g.SRSStage, g.NextReview,
		g.SourceContextID, g.CreatedAt)
	if err != nil {
		return nil, mapError(err, g.ID)
	}

	return g, nil
}

// UpdateSRS writes a new stage and next-review time.
func (r *Repo) UpdateSRS(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSRSSQL, ownerID, id, update.Stage, update.NextReview)
	if err != nil {
		return mapError(err, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grammar point %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a grammar row.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, ownerID, id)
	if err != nil {
		return mapError(err, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grammar point %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func collect(rows pgx.Rows) ([]*domain.GrammarPoint, error) {
	items := []*domain.GrammarPoint{}
	for rows.Next() {
		g, err := scanGrammar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan grammar: %w", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grammar: %w", err)
	}
	return items, nil
}

// scanGrammar scans one row in grammarColumns order from a Row or Rows.
func scanGrammar(row pgx.Row) (*domain.GrammarPoint, error) {
	var g domain.GrammarPoint
	err := row.Scan(&g.ID, &g.OwnerID, &g.GrammarPoint, &g.Label, &g.Explanation,
		&g.StoryUsage, &g.NarrativeConnection, &g.ExampleSentence, &g.SRSStage,
		&g.NextReview, &g.SourceContextID, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func mapError(err error, id uuid.UUID) error {
	return postgres.MapError(err, "grammar point", id)
}
