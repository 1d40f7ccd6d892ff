package extractor

import (
	"encoding/json"
	"strings"
)

// jsonLesson is the single-object payload shape some model versions emit
// instead of markdown. Field names match the Bundle JSON tags; values are
// taken as-is with presence checks only, no pattern matching.
type jsonLesson struct {
	Title        string             `json:"title"`
	JapaneseText string             `json:"japanese_text"`
	EnglishText  string             `json:"english_text"`
	VocabNotes   []VocabCandidate   `json:"vocab_notes"`
	GrammarNotes []GrammarCandidate `json:"grammar_notes"`
}

// extractJSON parses a single JSON object. If decoding fails the input is
// handed to the markdown path, so a lesson wrapped in stray braces is still a
// lesson.
func (e *Extractor) extractJSON(raw string) (Bundle, []Warning) {
	var lesson jsonLesson
	if err := json.Unmarshal([]byte(raw), &lesson); err != nil {
		warnings := []Warning{{Line: firstLine(raw), Reason: "invalid JSON payload: " + err.Error()}}
		bundle, mdWarnings := e.extractMarkdown(raw)
		return bundle, append(warnings, mdWarnings...)
	}

	return Bundle{
		Title:        strings.TrimSpace(lesson.Title),
		JapaneseText: strings.TrimSpace(lesson.JapaneseText),
		EnglishText:  strings.TrimSpace(lesson.EnglishText),
		Vocabulary:   lesson.VocabNotes,
		Grammar:      lesson.GrammarNotes,
	}, nil
}
