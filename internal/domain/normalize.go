package domain

import "strings"

// NormalizeKey prepares a natural-language dedup key for storage and
// comparison: trims surrounding whitespace and compresses internal runs of
// spaces into one. Case is preserved: Japanese keys have no case, and
// English labels are compared case-insensitively at lookup time instead.
func NormalizeKey(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '　' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLabel lowercases a grammar label on top of NormalizeKey, since
// labels are short English glosses and part of the identity key.
func NormalizeLabel(text string) string {
	return strings.ToLower(NormalizeKey(text))
}
