// Package extractor turns raw model-generated lesson text into typed
// candidate learning items. Two input shapes are accepted: the sectioned
// markdown a chat model produces, and a single JSON object with the same
// fields. Extraction never fails on malformed input: unparsable pieces are
// dropped and reported as warnings.
package extractor

// VocabCandidate is a parsed-but-not-yet-persisted vocabulary item.
// Word, Reading and Meaning are required for ingestion; a candidate missing
// one of them is dropped at validation, not here.
type VocabCandidate struct {
	Word            string `json:"word"`
	Reading         string `json:"reading"`
	Meaning         string `json:"meaning"`
	KanjiBreakdown  string `json:"kanji_breakdown,omitempty"`
	ContextSentence string `json:"context_sentence,omitempty"`
}

// GrammarCandidate is a parsed-but-not-yet-persisted grammar point.
type GrammarCandidate struct {
	GrammarPoint        string `json:"grammar_point"`
	Label               string `json:"label"`
	Explanation         string `json:"explanation"`
	StoryUsage          string `json:"story_usage,omitempty"`
	NarrativeConnection string `json:"narrative_connection,omitempty"`
	ExampleSentence     string `json:"example_sentence,omitempty"`
}

// Bundle is the full extraction result for one lesson.
type Bundle struct {
	Title        string             `json:"title"`
	JapaneseText string             `json:"japanese_text"`
	EnglishText  string             `json:"english_text"`
	Vocabulary   []VocabCandidate   `json:"vocab_notes"`
	Grammar      []GrammarCandidate `json:"grammar_notes"`
}

// Warning reports a line or block that could not be parsed. Warnings are
// diagnostics only, they never abort extraction.
type Warning struct {
	Line   string
	Reason string
}

func (w Warning) String() string { return w.Reason + ": " + w.Line }
