// Package review owns the read/update path: the SRS stage machine, due-item
// queries, and in-memory review sessions that feed answers back through the
// scheduler into the store.
package review

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/config"
	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Vocabulary, error)
	GetDue(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.Vocabulary, error)
	UpdateSRS(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error
}

type grammarRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.GrammarPoint, error)
	GetDue(ctx context.Context, ownerID uuid.UUID, terminalStage int, now time.Time, limit int) ([]*domain.GrammarPoint, error)
	UpdateSRS(ctx context.Context, ownerID, id uuid.UUID, update domain.SRSUpdate) error
}

type reviewEventRepo interface {
	Create(ctx context.Context, ev *domain.ReviewEvent) (*domain.ReviewEvent, error)
	ListByItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID, limit int) ([]*domain.ReviewEvent, error)
}

type contextLinkRepo interface {
	ListByKey(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, key string) ([]*domain.ContextLink, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements review scheduling and session logic.
type Service struct {
	vocabs  vocabRepo
	grammar grammarRepo
	events  reviewEventRepo
	links   contextLinkRepo
	tx      txManager
	log     *slog.Logger
	cfg     config.ReviewConfig

	// now and rng are swappable in tests.
	now func() time.Time
	rng *rand.Rand
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	vocabs vocabRepo,
	grammar grammarRepo,
	events reviewEventRepo,
	links contextLinkRepo,
	tx txManager,
	cfg config.ReviewConfig,
) *Service {
	return &Service{
		vocabs:  vocabs,
		grammar: grammar,
		events:  events,
		links:   links,
		tx:      tx,
		log:     log.With("service", "review"),
		cfg:     cfg,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
