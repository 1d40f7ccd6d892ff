package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningItem is the common surface of Vocabulary and GrammarPoint.
// Review scheduling only ever needs this view of an item.
type LearningItem interface {
	ItemID() uuid.UUID
	Owner() uuid.UUID
	Type() ItemType
	Stage() int
	NextReviewAt() *time.Time
	// Key is the natural-language dedup key (word or grammar point name).
	Key() string
}

// Vocabulary is a single word extracted from a lesson.
// (OwnerID, Word) is the dedup key, best-effort and not enforced by the store.
type Vocabulary struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Word            string
	Reading         string
	Meaning         string
	KanjiBreakdown  *string
	ContextSentence *string
	SRSStage        int
	NextReview      *time.Time
	SourceContextID uuid.UUID
	CreatedAt       time.Time
}

func (v *Vocabulary) ItemID() uuid.UUID        { return v.ID }
func (v *Vocabulary) Owner() uuid.UUID         { return v.OwnerID }
func (v *Vocabulary) Type() ItemType           { return ItemTypeVocab }
func (v *Vocabulary) Stage() int               { return v.SRSStage }
func (v *Vocabulary) NextReviewAt() *time.Time { return v.NextReview }
func (v *Vocabulary) Key() string              { return v.Word }

// GrammarPoint is a grammar construction extracted from a lesson.
// (OwnerID, GrammarPoint, Label) is the dedup key.
type GrammarPoint struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	GrammarPoint        string
	Label               string
	Explanation         string
	StoryUsage          *string
	NarrativeConnection *string
	ExampleSentence     *string
	SRSStage            int
	NextReview          *time.Time
	SourceContextID     uuid.UUID
	CreatedAt           time.Time
}

func (g *GrammarPoint) ItemID() uuid.UUID        { return g.ID }
func (g *GrammarPoint) Owner() uuid.UUID         { return g.OwnerID }
func (g *GrammarPoint) Type() ItemType           { return ItemTypeGrammar }
func (g *GrammarPoint) Stage() int               { return g.SRSStage }
func (g *GrammarPoint) NextReviewAt() *time.Time { return g.NextReview }
func (g *GrammarPoint) Key() string              { return g.GrammarPoint }

// ContextLink ties an item's natural-language key to the lesson it was seen
// in. Used only for "view in context" lookups, never for scheduling.
type ContextLink struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	ItemType        ItemType
	ItemKey         string
	ExampleSentence string
	SourceContextID uuid.UUID
	CreatedAt       time.Time
}
