package extractor

import (
	"regexp"
	"strings"
)

// Canonical section names. The model is prompted to emit these headers, but
// real output drifts: heading level varies, a trailing colon appears and
// disappears, bold labels replace headings. The matcher tolerates all of it.
const (
	sectionTitle    = "title"
	sectionJapanese = "japanese text"
	sectionEnglish  = "english translation"
	sectionVocab    = "vocabulary notes"
	sectionGrammar  = "grammar discussion"
	sectionPractice = "practice questions"
	sectionTips     = "usage tips"
)

var sectionAliases = map[string]string{
	"title":               sectionTitle,
	"japanese text":       sectionJapanese,
	"japanese":            sectionJapanese,
	"english translation": sectionEnglish,
	"english text":        sectionEnglish,
	"english":             sectionEnglish,
	"vocabulary notes":    sectionVocab,
	"vocabulary":          sectionVocab,
	"vocab notes":         sectionVocab,
	"grammar discussion":  sectionGrammar,
	"grammar notes":       sectionGrammar,
	"grammar":             sectionGrammar,
	"practice questions":  sectionPractice,
	"usage tips":          sectionTips,
}

// sectionHeaderRe matches "## Vocabulary Notes", "### Title: ..." and
// "**Grammar Discussion:**" style headers. Group 1 is the header text,
// group 2 any inline content after the colon.
var sectionHeaderRe = regexp.MustCompile(`^\s{0,3}(?:#{1,4}\s+|\*\*)\s*([A-Za-z][A-Za-z ]*)\s*:?\s*(?:\*\*)?\s*:?\s*(.*)$`)

// extractMarkdown splits the text into sections and parses the vocabulary
// and grammar ones. Lines before the first recognized header are prose and
// ignored.
func (e *Extractor) extractMarkdown(raw string) (Bundle, []Warning) {
	var (
		bundle   Bundle
		warnings []Warning
	)

	sections := splitSections(raw)
	if len(sections) == 0 {
		warnings = append(warnings, Warning{Line: firstLine(raw), Reason: "no recognized sections"})
		return bundle, warnings
	}

	bundle.Title = strings.TrimSpace(sections[sectionTitle])
	bundle.JapaneseText = strings.TrimSpace(sections[sectionJapanese])
	bundle.EnglishText = strings.TrimSpace(sections[sectionEnglish])

	bundle.Vocabulary, warnings = parseVocabSection(sections[sectionVocab], warnings)
	bundle.Grammar, warnings = parseGrammarSection(sections[sectionGrammar], warnings)

	return bundle, warnings
}

// splitSections returns the body of each recognized section, keyed by its
// canonical name. Repeated headers append to the same section.
func splitSections(raw string) map[string]string {
	sections := make(map[string]string)
	var bodies map[string]*strings.Builder

	current := ""
	for _, line := range strings.Split(raw, "\n") {
		if name, inline, ok := matchSectionHeader(line); ok {
			if bodies == nil {
				bodies = make(map[string]*strings.Builder)
			}
			if bodies[name] == nil {
				bodies[name] = &strings.Builder{}
			}
			current = name
			if inline != "" {
				bodies[name].WriteString(inline)
				bodies[name].WriteString("\n")
			}
			continue
		}
		if current == "" {
			continue
		}
		bodies[current].WriteString(line)
		bodies[current].WriteString("\n")
	}

	for name, b := range bodies {
		sections[name] = b.String()
	}
	return sections
}

// matchSectionHeader reports whether a line is one of the fixed section
// headers, returning the canonical name and any inline content.
func matchSectionHeader(line string) (name, inline string, ok bool) {
	m := sectionHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	canonical, known := sectionAliases[strings.ToLower(strings.TrimSpace(m[1]))]
	if !known {
		return "", "", false
	}
	return canonical, strings.TrimSpace(strings.TrimSuffix(m[2], "**")), true
}

func firstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		return raw[:i]
	}
	return raw
}

// ---------------------------------------------------------------------------
// Vocabulary lines
// ---------------------------------------------------------------------------

// Vocabulary line patterns in decreasing specificity. The first match wins,
// so a line carrying a kanji breakdown is never parsed by a looser fallback.
//
//	空港 (くうこう) - Airport - Kanji: 空 (sky) + 港 (port) - Context: 空港に行きます
//	空港 (くうこう) - Airport - Context: 空港に行きます
//	空港 (くうこう) - Airport
//	くうこう - Airport
var vocabPatterns = []struct {
	name  string
	re    *regexp.Regexp
	build func(m []string) VocabCandidate
}{
	{
		name: "full",
		re:   regexp.MustCompile(`^(.+?)\s*[（(]([^（）()]+)[）)]\s*[-–—:：]\s*(.+?)\s*[-–—]\s*(?i:kanji)\s*[:：]\s*(.+?)\s*[-–—]\s*(?i:context)\s*[:：]\s*(.+)$`),
		build: func(m []string) VocabCandidate {
			return VocabCandidate{Word: m[1], Reading: m[2], Meaning: m[3], KanjiBreakdown: m[4], ContextSentence: m[5]}
		},
	},
	{
		name: "no-kanji",
		re:   regexp.MustCompile(`^(.+?)\s*[（(]([^（）()]+)[）)]\s*[-–—:：]\s*(.+?)\s*[-–—]\s*(?i:context)\s*[:：]\s*(.+)$`),
		build: func(m []string) VocabCandidate {
			return VocabCandidate{Word: m[1], Reading: m[2], Meaning: m[3], ContextSentence: m[4]}
		},
	},
	{
		name: "no-context",
		re:   regexp.MustCompile(`^(.+?)\s*[（(]([^（）()]+)[）)]\s*[-–—:：]\s*(.+)$`),
		build: func(m []string) VocabCandidate {
			return VocabCandidate{Word: m[1], Reading: m[2], Meaning: m[3]}
		},
	},
	{
		name: "word-only",
		re:   regexp.MustCompile(`^([^\s（()）:：]+)\s*[-–—:：]\s*(.+)$`),
		build: func(m []string) VocabCandidate {
			return VocabCandidate{Word: m[1], Meaning: m[2]}
		},
	},
}

func parseVocabSection(body string, warnings []Warning) ([]VocabCandidate, []Warning) {
	var out []VocabCandidate

	for _, line := range strings.Split(body, "\n") {
		line = stripBullet(line)
		if line == "" {
			continue
		}

		matched := false
		for _, p := range vocabPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			out = append(out, p.build(m))
			matched = true
			break
		}
		if !matched {
			warnings = append(warnings, Warning{Line: line, Reason: "unmatched vocabulary line"})
		}
	}
	return out, warnings
}

// stripBullet removes a leading list marker and surrounding whitespace.
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}
	return line
}

// ---------------------------------------------------------------------------
// Grammar blocks
// ---------------------------------------------------------------------------

// grammarHeaderRe matches block delimiters inside the grammar section:
// "### ～てしまう", "### 1. ～てしまう" or "**1. ～てしまう**".
var grammarHeaderRe = regexp.MustCompile(`^\s*(?:#{3,6}\s*(?:\d+[.)]\s*)?(.+?)|\*\*\s*(?:\d+[.)]\s*)?(.+?)\s*\*\*)\s*$`)

// grammarFields maps line prefixes to candidate field setters. Everything
// after the prefix is the field value.
var grammarFields = []struct {
	prefix string
	set    func(c *GrammarCandidate, v string)
}{
	{"grammar point", func(c *GrammarCandidate, v string) { c.GrammarPoint = v }},
	{"label", func(c *GrammarCandidate, v string) { c.Label = v }},
	{"explanation", func(c *GrammarCandidate, v string) { c.Explanation = v }},
	{"story usage", func(c *GrammarCandidate, v string) { c.StoryUsage = v }},
	{"narrative connection", func(c *GrammarCandidate, v string) { c.NarrativeConnection = v }},
	{"example", func(c *GrammarCandidate, v string) { c.ExampleSentence = v }},
}

func parseGrammarSection(body string, warnings []Warning) ([]GrammarCandidate, []Warning) {
	var (
		out     []GrammarCandidate
		current *GrammarCandidate
		// lastAppend extends the most recent field with continuation lines.
		lastAppend func(v string)
	)

	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
			lastAppend = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if setter, value, ok := matchGrammarField(trimmed); ok {
			if current == nil {
				current = &GrammarCandidate{}
			}
			setter(current, value)
			prev := value
			lastAppend = func(v string) {
				prev = prev + " " + v
				setter(current, prev)
			}
			continue
		}

		if header, ok := matchGrammarHeader(trimmed); ok {
			flush()
			// The header names the block until a Grammar Point field
			// overrides it.
			current = &GrammarCandidate{GrammarPoint: header}
			lastAppend = nil
			continue
		}

		if lastAppend != nil {
			lastAppend(trimmed)
			continue
		}
		warnings = append(warnings, Warning{Line: trimmed, Reason: "unmatched grammar line"})
	}
	flush()

	return out, warnings
}

func matchGrammarField(line string) (set func(*GrammarCandidate, string), value string, ok bool) {
	l := stripBullet(line)
	l = strings.Trim(l, "*")
	lower := strings.ToLower(l)

	for _, f := range grammarFields {
		if !strings.HasPrefix(lower, f.prefix) {
			continue
		}
		rest := l[len(f.prefix):]
		rest = strings.TrimLeft(rest, "*")
		if !strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, "：") {
			continue
		}
		rest = strings.TrimLeft(rest, ":：")
		return f.set, strings.TrimSpace(strings.Trim(rest, "*")), true
	}
	return nil, "", false
}

func matchGrammarHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "**") {
		return "", false
	}
	m := grammarHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	header := m[1]
	if header == "" {
		header = m[2]
	}
	return strings.TrimSpace(header), header != ""
}
