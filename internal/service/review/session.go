package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// ErrSessionFinished is returned by Answer after the queue has emptied.
// A finished session never transitions again; start a fresh one.
var ErrSessionFinished = errors.New("review: session already finished")

// itemRef identifies an item within a session.
type itemRef struct {
	Type domain.ItemType
	ID   uuid.UUID
}

// Session is one bounded run over a due-item queue. State lives entirely in
// the caller's process: abandoning a session loses only in-memory progress,
// the store's due items are untouched.
type Session struct {
	svc     *Service
	ownerID uuid.UUID
	mode    domain.ReviewMode

	state  domain.SessionState
	queue  []domain.LearningItem
	missed map[itemRef]bool

	// soonestNext tracks the earliest next_review scheduled during this
	// session, for "next item due in ..." display only.
	soonestNext *time.Time

	reviewed int
}

// StartSession builds an in-memory review session over the owner's due
// items. An empty queue produces a session that is already Done.
func (s *Service) StartSession(ctx context.Context, ownerID uuid.UUID, mode domain.ReviewMode) (*Session, error) {
	session := &Session{
		svc:     s,
		ownerID: ownerID,
		mode:    mode,
		state:   domain.SessionStateLoading,
		missed:  make(map[itemRef]bool),
	}

	items, err := s.DueItems(ctx, ownerID, mode)
	if err != nil {
		return nil, fmt.Errorf("load session queue: %w", err)
	}

	session.queue = items
	if len(items) == 0 {
		session.state = domain.SessionStateDone
	} else {
		session.state = domain.SessionStateActive
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("owner_id", ownerID.String()),
		slog.String("mode", mode.String()),
		slog.Int("queue", len(items)),
	)

	return session, nil
}

// State returns the session lifecycle state.
func (s *Session) State() domain.SessionState { return s.state }

// Remaining returns the number of queued items still to serve.
func (s *Session) Remaining() int { return len(s.queue) }

// Reviewed returns the number of answers recorded this session.
func (s *Session) Reviewed() int { return s.reviewed }

// Current returns the head of the queue, or nil when the session is not
// active.
func (s *Session) Current() domain.LearningItem {
	if s.state != domain.SessionStateActive {
		return nil
	}
	return s.queue[0]
}

// Answer records the outcome for the current item and advances the queue.
//
// An incorrect answer requeues the item at the tail, once per session;
// the second miss lets it go, so a single stubborn item cannot loop the
// session forever. The queue is only mutated after the review has been
// persisted; on error the same item stays current and the caller may retry.
func (s *Session) Answer(ctx context.Context, correct bool) (*domain.ReviewEvent, error) {
	if s.state != domain.SessionStateActive {
		return nil, ErrSessionFinished
	}

	current := s.queue[0]
	outcome := domain.ReviewOutcomeIncorrect
	if correct {
		outcome = domain.ReviewOutcomeCorrect
	}

	event, err := s.svc.RecordReview(ctx, s.ownerID, RecordReviewInput{
		ItemType: current.Type(),
		ItemID:   current.ItemID(),
		Outcome:  outcome,
	})
	if err != nil {
		return nil, err
	}

	s.reviewed++
	if event.NewNextReview != nil {
		if s.soonestNext == nil || event.NewNextReview.Before(*s.soonestNext) {
			t := *event.NewNextReview
			s.soonestNext = &t
		}
	}

	ref := itemRef{Type: current.Type(), ID: current.ItemID()}
	s.queue = s.queue[1:]

	if correct {
		delete(s.missed, ref)
	} else if !s.missed[ref] {
		s.missed[ref] = true
		s.queue = append(s.queue, current)
	}

	if len(s.queue) == 0 {
		s.state = domain.SessionStateDone
	}

	return event, nil
}

// TimeUntilNextDue returns how long until the soonest item rescheduled this
// session comes due again, or nil if nothing was rescheduled. Display only,
// it never affects scheduling.
func (s *Session) TimeUntilNextDue(now time.Time) *time.Duration {
	if s.soonestNext == nil {
		return nil
	}
	d := s.soonestNext.Sub(now)
	if d < 0 {
		d = 0
	}
	return &d
}
