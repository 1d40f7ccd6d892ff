package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEvent is one append-only row of review history.
// Old/new pairs capture the item's (stage, next_review) around the review.
type ReviewEvent struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ItemType      ItemType
	ItemID        uuid.UUID
	Outcome       ReviewOutcome
	OldStage      int
	NewStage      int
	OldNextReview *time.Time
	NewNextReview *time.Time
	CreatedAt     time.Time
}

// SRSUpdate holds the scheduling fields written back to an item after a review.
type SRSUpdate struct {
	Stage      int
	NextReview *time.Time
}

// IsDue reports whether an item at the given stage/next-review is due at now.
// Terminal-stage items are retired and never due; a nil NextReview below the
// terminal stage means "not yet scheduled" and counts as due.
func IsDue(stage, terminalStage int, nextReview *time.Time, now time.Time) bool {
	if stage >= terminalStage {
		return false
	}
	if nextReview == nil {
		return true
	}
	return !nextReview.After(now)
}
