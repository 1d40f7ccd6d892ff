package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// ItemContexts returns every story sentence the given item was seen in,
// newest first. The key is the item's dedup key: the word for vocabulary,
// the grammar point for grammar.
func (s *Service) ItemContexts(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, key string) ([]*domain.ContextLink, error) {
	if !itemType.IsValid() {
		return nil, domain.NewValidationError("item_type", "unknown item type")
	}
	if key == "" {
		return nil, domain.NewValidationError("key", "must not be empty")
	}

	links, err := s.links.ListByKey(ctx, ownerID, itemType, key)
	if err != nil {
		return nil, fmt.Errorf("list context links: %w", err)
	}

	return links, nil
}
