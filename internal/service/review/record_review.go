package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// RecordReviewInput identifies the reviewed item and the answer.
type RecordReviewInput struct {
	ItemType domain.ItemType
	ItemID   uuid.UUID
	Outcome  domain.ReviewOutcome
}

// Validate checks the input fields.
func (in RecordReviewInput) Validate() error {
	if !in.ItemType.IsValid() {
		return domain.NewValidationError("itemType", "unknown item type")
	}
	if in.ItemID == uuid.Nil {
		return domain.NewValidationError("itemId", "must not be empty")
	}
	if !in.Outcome.IsValid() {
		return domain.NewValidationError("outcome", "unknown review outcome")
	}
	return nil
}

// RecordReview advances an item through the stage machine and persists the
// new schedule plus an append-only ReviewEvent in one transaction. On any
// failure nothing is written and the caller may retry the same item cleanly.
func (s *Service) RecordReview(ctx context.Context, ownerID uuid.UUID, input RecordReviewInput) (*domain.ReviewEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	item, err := s.loadItem(ctx, ownerID, input.ItemType, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}

	adv, err := Advance(item.Stage(), input.Outcome == domain.ReviewOutcomeCorrect, now)
	if err != nil {
		return nil, err
	}

	event := &domain.ReviewEvent{
		OwnerID:       ownerID,
		ItemType:      input.ItemType,
		ItemID:        input.ItemID,
		Outcome:       input.Outcome,
		OldStage:      item.Stage(),
		NewStage:      adv.NewStage,
		OldNextReview: item.NextReviewAt(),
		NewNextReview: adv.NextReview,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		update := domain.SRSUpdate{Stage: adv.NewStage, NextReview: adv.NextReview}

		switch input.ItemType {
		case domain.ItemTypeVocab:
			if err := s.vocabs.UpdateSRS(txCtx, ownerID, input.ItemID, update); err != nil {
				return fmt.Errorf("update vocabulary srs: %w", err)
			}
		case domain.ItemTypeGrammar:
			if err := s.grammar.UpdateSRS(txCtx, ownerID, input.ItemID, update); err != nil {
				return fmt.Errorf("update grammar srs: %w", err)
			}
		}

		if _, err := s.events.Create(txCtx, event); err != nil {
			return fmt.Errorf("create review event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_type", input.ItemType.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.String("outcome", input.Outcome.String()),
		slog.Int("old_stage", event.OldStage),
		slog.Int("new_stage", event.NewStage),
	)

	return event, nil
}

func (s *Service) loadItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID) (domain.LearningItem, error) {
	switch itemType {
	case domain.ItemTypeVocab:
		return s.vocabs.GetByID(ctx, ownerID, itemID)
	case domain.ItemTypeGrammar:
		return s.grammar.GetByID(ctx, ownerID, itemID)
	default:
		return nil, domain.NewValidationError("itemType", "unknown item type")
	}
}
