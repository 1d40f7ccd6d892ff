// Package ingest is the persistence gateway: it takes extracted lesson
// bundles and turns them into durable learning items, deduplicating against
// the store and retrying transient failures. The batch is best-effort and
// never atomic: a candidate that cannot be written is logged and skipped so
// the rest of the lesson still lands.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/config"
	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabRepo interface {
	GetByWord(ctx context.Context, ownerID uuid.UUID, word string) (*domain.Vocabulary, error)
	Create(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type grammarRepo interface {
	ListByPoint(ctx context.Context, ownerID uuid.UUID, point, label string) ([]*domain.GrammarPoint, error)
	Create(ctx context.Context, g *domain.GrammarPoint) (*domain.GrammarPoint, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type contextLinkRepo interface {
	Create(ctx context.Context, link *domain.ContextLink) (*domain.ContextLink, error)
}

type reviewEventRepo interface {
	DeleteByItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the persistence gateway.
type Service struct {
	vocabs  vocabRepo
	grammar grammarRepo
	links   contextLinkRepo
	events  reviewEventRepo
	tx      txManager
	log     *slog.Logger
	cfg     config.IngestConfig

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new ingest service.
func NewService(
	log *slog.Logger,
	vocabs vocabRepo,
	grammar grammarRepo,
	links contextLinkRepo,
	events reviewEventRepo,
	tx txManager,
	cfg config.IngestConfig,
) *Service {
	return &Service{
		vocabs:  vocabs,
		grammar: grammar,
		links:   links,
		events:  events,
		tx:      tx,
		log:     log.With("service", "ingest"),
		cfg:     cfg,
		now:     time.Now,
	}
}
