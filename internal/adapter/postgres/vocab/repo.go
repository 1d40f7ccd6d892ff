// Package vocab implements the Vocabulary repository using PostgreSQL.
package vocab

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

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const vocabColumns = `id, owner_id, word, reading, meaning, kanji_breakdown,
       context_sentence, srs_stage, next_review, source_context_id, created_at`

const getByWordSQL = `
SELECT ` + vocabColumns + `
FROM vocabulary
WHERE owner_id = $1 AND word = $2
LIMIT 1`

const getByIDSQL = `
SELECT ` + vocabColumns + `
FROM vocabulary
WHERE owner_id = $1 AND id = $2`

const getDueSQL = `
SELECT ` + vocabColumns + `
FROM vocabulary
WHERE owner_id = $1
  AND srs_stage < $2
  AND (next_review IS NULL OR next_review <= $3)
ORDER BY next_review ASC NULLS FIRST
LIMIT $4`

const insertSQL = `
INSERT INTO vocabulary (` + vocabColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const updateSRSSQL = `
UPDATE vocabulary
SET srs_stage = $3, next_review = $4
WHERE owner_id = $1 AND id = $2`

const deleteSQL = `
DELETE FROM vocabulary
WHERE owner_id = $1 AND id = $2`

// GetByWord returns the owner's vocabulary row for the given word.
// Returns domain.ErrNotFound when absent, which is the gateway's signal to
// insert.
func (r *Repo) GetByWord(ctx context.Context, ownerID uuid.UUID, word string) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByWordSQL, ownerID, word)
	v, err := scanVocab(row)
	if err != nil {
		return nil, mapError(err, uuid.Nil)
	}
	return v, nil
}

// GetByID returns a vocabulary row by primary key filtered by owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, ownerID, id)
	v, err := scanVocab(row)
	if err != nil {
		return nil, mapError(err, id)
	}
	return v, nil
}

// GetDue returns vocabulary due for review at now: below the terminal stage
// and scheduled at-or-before now (or never scheduled).
func (r *Repo) GetDue(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getDueSQL, ownerID, terminalStage, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due vocabulary: %w", err)
	}
	defer rows.Close()

	items := []*domain.Vocabulary{}
	for rows.Next() {
		v, err := scanVocab(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocabulary: %w", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabulary: %w", err)
	}

	return items, nil
}

// Create inserts a new vocabulary row. ID and CreatedAt are assigned here.
func (r *Repo) Create(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v.ID = uuid.New()
	v.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, insertSQL,
		v.ID, v.OwnerID, v.Word, v.Reading, v.Meaning, v.KanjiBreakdown,
		v.ContextSentence, v.SRSStage, v.NextReview, v.SourceContextID, v.CreatedAt)
	if err != nil {
		return nil, mapError(err, v.ID)
	}

	return v, nil
}

// UpdateSRS writes a new stage and next-review time.
// Returns domain.ErrNotFound if the row does not exist or belongs to another
// owner.
func (r *Repo) UpdateSRS(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSRSSQL, ownerID, id, update.Stage, update.NextReview)
	if err != nil {
		return mapError(err, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a vocabulary row.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, ownerID, id)
	if err != nil {
		return mapError(err, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanVocab scans one row in vocabColumns order from a Row or Rows.
func scanVocab(row pgx.Row) (*domain.Vocabulary, error) {
	var v domain.Vocabulary
	err := row.Scan(&v.ID, &v.OwnerID, &v.Word, &v.Reading, &v.Meaning,
		&v.KanjiBreakdown, &v.ContextSentence, &v.SRSStage, &v.NextReview,
		&v.SourceContextID, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mapError(err error, id uuid.UUID) error {
	return postgres.MapError(err, "vocabulary", id)
}
