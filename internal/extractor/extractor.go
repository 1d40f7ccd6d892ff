package extractor

import (
	"log/slog"
	"strings"
)

// ReadingAnnotator supplies a kana reading for a word when the lesson text
// did not include one. Implementations may fail per-word; ok=false leaves
// the candidate without a reading (it is then dropped at validation).
type ReadingAnnotator interface {
	Reading(word string) (string, bool)
}

// Extractor parses raw lesson text into a Bundle of candidate items.
type Extractor struct {
	log      *slog.Logger
	readings ReadingAnnotator
}

// New creates an Extractor. readings may be nil; then no fallback readings
// are generated and vocabulary lines without one are dropped.
func New(log *slog.Logger, readings ReadingAnnotator) *Extractor {
	return &Extractor{
		log:      log.With("component", "extractor"),
		readings: readings,
	}
}

// Extract parses raw model output. It accepts either sectioned markdown or a
// single JSON object and never returns an error: malformed pieces are
// omitted and reported in the warning list.
func (e *Extractor) Extract(raw string) (Bundle, []Warning) {
	trimmed := strings.TrimSpace(raw)

	var (
		bundle   Bundle
		warnings []Warning
	)

	if looksLikeJSON(trimmed) {
		bundle, warnings = e.extractJSON(trimmed)
	} else {
		bundle, warnings = e.extractMarkdown(trimmed)
	}

	bundle.Vocabulary, warnings = e.validateVocab(bundle.Vocabulary, warnings)
	bundle.Grammar, warnings = validateGrammar(bundle.Grammar, warnings)

	if len(warnings) > 0 {
		e.log.Debug("extraction finished with warnings",
			slog.Int("vocab", len(bundle.Vocabulary)),
			slog.Int("grammar", len(bundle.Grammar)),
			slog.Int("warnings", len(warnings)),
		)
	}

	return bundle, warnings
}

func looksLikeJSON(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// validateVocab drops candidates missing a required field. A missing reading
// is first given to the annotator; only if it cannot supply one is the
// candidate dropped.
func (e *Extractor) validateVocab(in []VocabCandidate, warnings []Warning) ([]VocabCandidate, []Warning) {
	out := in[:0]
	for _, c := range in {
		c.Word = strings.TrimSpace(c.Word)
		c.Reading = strings.TrimSpace(c.Reading)
		c.Meaning = strings.TrimSpace(c.Meaning)

		if c.Reading == "" && e.readings != nil && c.Word != "" {
			if r, ok := e.readings.Reading(c.Word); ok {
				c.Reading = r
			}
		}

		switch {
		case c.Word == "":
			warnings = append(warnings, Warning{Line: c.Meaning, Reason: "vocabulary candidate missing word"})
		case c.Reading == "":
			warnings = append(warnings, Warning{Line: c.Word, Reason: "vocabulary candidate missing reading"})
		case c.Meaning == "":
			warnings = append(warnings, Warning{Line: c.Word, Reason: "vocabulary candidate missing meaning"})
		default:
			out = append(out, c)
		}
	}
	return out, warnings
}

// validateGrammar drops blocks that lack both a grammar-point name and an
// explanation.
func validateGrammar(in []GrammarCandidate, warnings []Warning) ([]GrammarCandidate, []Warning) {
	out := in[:0]
	for _, c := range in {
		c.GrammarPoint = strings.TrimSpace(c.GrammarPoint)
		c.Explanation = strings.TrimSpace(c.Explanation)

		if c.GrammarPoint == "" && c.Explanation == "" {
			warnings = append(warnings, Warning{Line: c.Label, Reason: "grammar block missing name and explanation"})
			continue
		}
		out = append(out, c)
	}
	return out, warnings
}
