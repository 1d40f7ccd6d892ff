package domain

// ItemType distinguishes the two kinds of learning items.
type ItemType string

const (
	ItemTypeVocab   ItemType = "VOCAB"
	ItemTypeGrammar ItemType = "GRAMMAR"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeVocab, ItemTypeGrammar:
		return true
	}
	return false
}

// ReviewOutcome is the user's self-assessed answer to a review prompt.
type ReviewOutcome string

const (
	ReviewOutcomeCorrect   ReviewOutcome = "CORRECT"
	ReviewOutcomeIncorrect ReviewOutcome = "INCORRECT"
)

func (o ReviewOutcome) String() string { return string(o) }

func (o ReviewOutcome) IsValid() bool {
	switch o {
	case ReviewOutcomeCorrect, ReviewOutcomeIncorrect:
		return true
	}
	return false
}

// ReviewMode selects which item kinds a review session serves.
type ReviewMode string

const (
	ReviewModeVocab   ReviewMode = "vocab"
	ReviewModeGrammar ReviewMode = "grammar"
	ReviewModeBoth    ReviewMode = "both"
)

func (m ReviewMode) String() string { return string(m) }

func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeVocab, ReviewModeGrammar, ReviewModeBoth:
		return true
	}
	return false
}

// SessionState is the lifecycle state of an in-memory review session.
type SessionState string

const (
	SessionStateLoading SessionState = "LOADING"
	SessionStateActive  SessionState = "ACTIVE"
	SessionStateDone    SessionState = "DONE"
)

func (s SessionState) String() string { return string(s) }
