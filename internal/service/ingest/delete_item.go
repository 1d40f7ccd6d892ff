package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// DeleteItem removes a learning item and cascade-deletes its review events
// in one transaction. Context links are keyed by the natural-language key,
// not the item ID, and are kept on delete; they remain useful as "where
// was this used" history even after the item is gone.
func (s *Service) DeleteItem(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID) error {
	if !itemType.IsValid() {
		return domain.NewValidationError("itemType", "unknown item type")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.events.DeleteByItem(txCtx, ownerID, itemType, itemID); err != nil {
			return fmt.Errorf("delete review events: %w", err)
		}

		switch itemType {
		case domain.ItemTypeVocab:
			if err := s.vocabs.Delete(txCtx, ownerID, itemID); err != nil {
				return fmt.Errorf("delete vocabulary: %w", err)
			}
		case domain.ItemTypeGrammar:
			if err := s.grammar.Delete(txCtx, ownerID, itemID); err != nil {
				return fmt.Errorf("delete grammar point: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_type", itemType.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}
