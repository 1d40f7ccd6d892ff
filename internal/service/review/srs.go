package review

import (
	"errors"
	"fmt"
	"time"

	"github.com/kotobachat/kotoba-backend/internal/domain"
)

// ErrInvalidStage reports an out-of-range stage passed by the caller. This
// is a programming error and fails loudly, unlike the clamping Advance
// applies to valid transitions.
var ErrInvalidStage = errors.New("review: invalid srs stage")

// StageInfo describes one spaced-repetition stage. A Terminal stage has no
// interval: items that reach it are retired from active review.
type StageInfo struct {
	Label    string
	Interval time.Duration
	Terminal bool
}

// stageTable is the single source of truth for interval semantics. No other
// code encodes interval numbers.
var stageTable = [...]StageInfo{
	{Label: "Apprentice I", Interval: 4 * time.Hour},
	{Label: "Apprentice II", Interval: 8 * time.Hour},
	{Label: "Apprentice III", Interval: 24 * time.Hour},
	{Label: "Apprentice IV", Interval: 48 * time.Hour},
	{Label: "Guru I", Interval: 7 * 24 * time.Hour},
	{Label: "Guru II", Interval: 14 * 24 * time.Hour},
	{Label: "Master", Interval: 30 * 24 * time.Hour},
	{Label: "Enlightened", Interval: 120 * 24 * time.Hour},
	{Label: "Burned", Terminal: true},
}

// TerminalStage is the index of the retired stage.
const TerminalStage = len(stageTable) - 1

// consolidatedStage is the first stage treated as long-term memory: an
// incorrect answer from here drops two stages instead of one.
const consolidatedStage = 4

// Advancement is the result of an Advance call. NextReview is nil iff the
// new stage is terminal.
type Advancement struct {
	NewStage   int
	NextReview *time.Time
}

// Advance maps (stage, outcome) to the item's next scheduling state. Pure
// and deterministic; the only place stage arithmetic lives.
//
// Correct answers move one stage up, capped at the terminal stage.
// Incorrect answers drop two stages from consolidatedStage and above, one
// stage below it, and never go under zero.
func Advance(stage int, correct bool, now time.Time) (Advancement, error) {
	if stage < 0 || stage >= len(stageTable) {
		return Advancement{}, fmt.Errorf("%w: %d (valid range 0..%d)", ErrInvalidStage, stage, TerminalStage)
	}

	var newStage int
	if correct {
		newStage = stage + 1
		if newStage > TerminalStage {
			newStage = TerminalStage
		}
	} else {
		drop := 1
		if stage >= consolidatedStage {
			drop = 2
		}
		newStage = stage - drop
		if newStage < 0 {
			newStage = 0
		}
	}

	info := stageTable[newStage]
	if info.Terminal {
		return Advancement{NewStage: newStage}, nil
	}

	next := now.Add(info.Interval)
	return Advancement{NewStage: newStage, NextReview: &next}, nil
}

// Stage returns the descriptor for a stage index.
func Stage(stage int) (StageInfo, error) {
	if stage < 0 || stage >= len(stageTable) {
		return StageInfo{}, fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}
	return stageTable[stage], nil
}

// StageCount returns the number of stages, terminal included.
func StageCount() int { return len(stageTable) }

// IsDue reports whether an item is due at now under this stage table.
func IsDue(item domain.LearningItem, now time.Time) bool {
	return domain.IsDue(item.Stage(), TerminalStage, item.NextReviewAt(), now)
}
