package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kotobachat/kotoba-backend/internal/domain"
	"github.com/kotobachat/kotoba-backend/internal/extractor"
)

// Report summarizes one ingest call. Skips cover duplicates and candidates
// failing required-field validation. Observable, never fatal.
type Report struct {
	VocabAdded     int
	GrammarAdded   int
	VocabSkipped   int
	GrammarSkipped int
}

// Ingest persists a lesson bundle's candidates for the given owner.
//
// The duplicate check is check-then-insert, not transactional: two
// concurrent ingests of the same word can both pass the check and both
// insert. That race is accepted: nothing correctness-critical depends on
// single-row uniqueness, and the store offers no insert-if-absent primitive
// here.
func (s *Service) Ingest(ctx context.Context, bundle extractor.Bundle, ownerID, sourceContextID uuid.UUID) (Report, error) {
	var report Report
	now := s.now().UTC()

	for _, c := range bundle.Vocabulary {
		added, err := s.ingestVocab(ctx, c, ownerID, sourceContextID, now)
		if err != nil {
			s.log.ErrorContext(ctx, "vocabulary candidate failed",
				slog.String("word", c.Word),
				slog.String("error", err.Error()),
			)
			report.VocabSkipped++
			continue
		}
		if added {
			report.VocabAdded++
		} else {
			report.VocabSkipped++
		}
	}

	for _, c := range bundle.Grammar {
		added, err := s.ingestGrammar(ctx, c, ownerID, sourceContextID, now)
		if err != nil {
			s.log.ErrorContext(ctx, "grammar candidate failed",
				slog.String("grammar_point", c.GrammarPoint),
				slog.String("error", err.Error()),
			)
			report.GrammarSkipped++
			continue
		}
		if added {
			report.GrammarAdded++
		} else {
			report.GrammarSkipped++
		}
	}

	s.log.InfoContext(ctx, "lesson ingested",
		slog.String("owner_id", ownerID.String()),
		slog.String("source_context_id", sourceContextID.String()),
		slog.Int("vocab_added", report.VocabAdded),
		slog.Int("vocab_skipped", report.VocabSkipped),
		slog.Int("grammar_added", report.GrammarAdded),
		slog.Int("grammar_skipped", report.GrammarSkipped),
	)

	return report, nil
}

// ingestVocab writes one vocabulary candidate. Returns added=false for
// validation failures and duplicates; err only when the store kept failing
// after retries.
func (s *Service) ingestVocab(ctx context.Context, c extractor.VocabCandidate, ownerID, sourceContextID uuid.UUID, now time.Time) (bool, error) {
	word := domain.NormalizeKey(c.Word)
	if word == "" || strings.TrimSpace(c.Reading) == "" || strings.TrimSpace(c.Meaning) == "" {
		s.log.WarnContext(ctx, "vocabulary candidate missing required field",
			slog.String("word", c.Word))
		return false, nil
	}

	added := false
	err := s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.vocabs.GetByWord(ctx, ownerID, word)
		if err == nil {
			// Duplicate: no merge, no overwrite.
			added = false
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check duplicate: %w", err)
		}

		v := &domain.Vocabulary{
			OwnerID:         ownerID,
			Word:            word,
			Reading:         strings.TrimSpace(c.Reading),
			Meaning:         strings.TrimSpace(c.Meaning),
			KanjiBreakdown:  optional(c.KanjiBreakdown),
			ContextSentence: optional(c.ContextSentence),
			SRSStage:        0,
			NextReview:      &now, // immediately due
			SourceContextID: sourceContextID,
		}
		if _, err := s.vocabs.Create(ctx, v); err != nil {
			return fmt.Errorf("create vocabulary: %w", err)
		}
		added = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if added && strings.TrimSpace(c.ContextSentence) != "" {
		s.createLink(ctx, ownerID, domain.ItemTypeVocab, word, c.ContextSentence, sourceContextID)
	}

	return added, nil
}

// ingestGrammar writes one grammar candidate with near-duplicate
// suppression: an existing row with the same key only blocks the insert if
// one explanation contains the other (case-insensitively).
func (s *Service) ingestGrammar(ctx context.Context, c extractor.GrammarCandidate, ownerID, sourceContextID uuid.UUID, now time.Time) (bool, error) {
	point := domain.NormalizeKey(c.GrammarPoint)
	explanation := strings.TrimSpace(c.Explanation)
	if point == "" || explanation == "" {
		s.log.WarnContext(ctx, "grammar candidate missing required field",
			slog.String("grammar_point", c.GrammarPoint))
		return false, nil
	}
	label := domain.NormalizeLabel(c.Label)

	added := false
	err := s.withRetry(ctx, func(ctx context.Context) error {
		existing, err := s.grammar.ListByPoint(ctx, ownerID, point, label)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		for _, g := range existing {
			if explanationsOverlap(g.Explanation, explanation) {
				added = false
				return nil
			}
		}

		g := &domain.GrammarPoint{
			OwnerID:             ownerID,
			GrammarPoint:        point,
			Label:               label,
			Explanation:         explanation,
			StoryUsage:          optional(c.StoryUsage),
			NarrativeConnection: optional(c.NarrativeConnection),
			ExampleSentence:     optional(c.ExampleSentence),
			SRSStage:            0,
			NextReview:          &now,
			SourceContextID:     sourceContextID,
		}
		if _, err := s.grammar.Create(ctx, g); err != nil {
			return fmt.Errorf("create grammar point: %w", err)
		}
		added = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if added && strings.TrimSpace(c.ExampleSentence) != "" {
		s.createLink(ctx, ownerID, domain.ItemTypeGrammar, point, c.ExampleSentence, sourceContextID)
	}

	return added, nil
}

// createLink best-effort inserts a context link. A failed link never undoes
// the item insert; it is logged and forgotten.
func (s *Service) createLink(ctx context.Context, ownerID uuid.UUID, itemType domain.ItemType, key, sentence string, sourceContextID uuid.UUID) {
	_, err := s.links.Create(ctx, &domain.ContextLink{
		OwnerID:         ownerID,
		ItemType:        itemType,
		ItemKey:         key,
		ExampleSentence: strings.TrimSpace(sentence),
		SourceContextID: sourceContextID,
	})
	if err != nil {
		s.log.WarnContext(ctx, "context link insert failed",
			slog.String("item_key", key),
			slog.String("error", err.Error()),
		)
	}
}

// withRetry runs fn, retrying transient store failures up to the configured
// budget with a fixed delay. Validation and duplicate-key errors are not
// transient and abort immediately. Not exponential backoff, since ingest is
// a short bulk path, not a serving path.
func (s *Service) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.cfg.RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}

		s.log.WarnContext(ctx, "store call failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
	}
	return err
}

// explanationsOverlap reports whether either explanation is a
// case-insensitive substring of the other.
func explanationsOverlap(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// optional converts a possibly-empty string to a nullable column value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
