package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

const defaultHistoryLimit = 20

// History returns the item's most recent review events, newest first.
// A non-positive limit falls back to defaultHistoryLimit.
func (s *Service) History(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, itemID uuid.UUID, limit int) ([]*domain.ReviewEvent, error) {
	if !itemType.IsValid() {
		return nil, domain.NewValidationError("item_type", "unknown item type")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	events, err := s.events.ListByItem(ctx, ownerID, itemType, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list review events: %w", err)
	}

	return events, nil
}
