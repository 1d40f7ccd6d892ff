package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// DueItems returns the owner's items that are due for review in the given
// mode. Terminal-stage items never appear. In both mode, vocabulary and
// grammar are shuffled together rather than grouped, so a long session
// alternates kinds instead of front-loading one of them.
func (s *Service) DueItems(ctx context.Context, ownerID uuid.UUID, mode domain.ReviewMode) ([]domain.LearningItem, error) {
	if !mode.IsValid() {
		return nil, domain.NewValidationError("mode", "unknown review mode")
	}

	now := s.now().UTC()
	items := []domain.LearningItem{}

	if mode == domain.ReviewModeVocab || mode == domain.ReviewModeBoth {
		vocab, err := s.vocabs.GetDue(ctx, ownerID, TerminalStage, now, s.cfg.QueueLimit)
		if err != nil {
			return nil, fmt.Errorf("get due vocabulary: %w", err)
		}
		for _, v := range vocab {
			items = append(items, v)
		}
	}

	if mode == domain.ReviewModeGrammar || mode == domain.ReviewModeBoth {
		grammar, err := s.grammar.GetDue(ctx, ownerID, TerminalStage, now, s.cfg.QueueLimit)
		if err != nil {
			return nil, fmt.Errorf("get due grammar: %w", err)
		}
		for _, g := range grammar {
			items = append(items, g)
		}
	}

	if mode == domain.ReviewModeBoth {
		s.rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	s.log.InfoContext(ctx, "due items loaded",
		slog.String("owner_id", ownerID.String()),
		slog.String("mode", mode.String()),
		slog.Int("count", len(items)),
	)

	return items, nil
}
