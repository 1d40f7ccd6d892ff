// Package furigana derives kana readings for Japanese words using the
// kagome morphological tokenizer with the IPA dictionary. It backs the
// extractor's reading fallback for vocabulary lines that arrive without one.
package furigana

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Annotator produces hiragana readings for surface forms.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// New creates an Annotator backed by the IPA dictionary.
func New() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	return &Annotator{t: t}, nil
}

// Reading returns the hiragana reading of word, concatenated across tokens.
// ok is false when the dictionary has no reading for any part of the word,
// the caller then treats the reading as missing.
func (a *Annotator) Reading(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}

	var b strings.Builder
	for _, token := range a.t.Tokenize(word) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		// IPA feature 7 is the katakana reading; "*" means unknown.
		features := token.Features()
		if len(features) <= 7 || features[7] == "*" {
			return "", false
		}
		b.WriteString(KatakanaToHiragana(features[7]))
	}

	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// KatakanaToHiragana converts katakana runes to their hiragana counterparts.
// The prolonged sound mark and non-katakana runes pass through unchanged.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 'ァ' - 'ぁ'
		}
		b.WriteRune(r)
	}
	return b.String()
}
