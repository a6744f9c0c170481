package parser

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"chatlens/errors"
)

// phraseSet matches a fixed dictionary of phrases inside arbitrary text
// in a single pass. Exports sprinkle invisible direction marks around
// service messages, so both the dictionary and the probed text are
// normalized (lowercased, control runes removed) before matching.
type phraseSet struct {
	matcher *goahocorasick.Machine
}

func newPhraseSet(phrases []string) (phraseSet, error) {
	if len(phrases) == 0 {
		return phraseSet{}, errors.ErrEmptyDictionary
	}
	patterns := make([][]rune, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = normalizeRunes([]rune(phrase))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return phraseSet{}, err
	}
	return phraseSet{matcher: m}, nil
}

// Contains reports whether any dictionary phrase occurs in the text.
func (p phraseSet) Contains(text string) bool {
	norm := normalizeRunes([]rune(text))
	if len(norm) == 0 {
		return false
	}
	return len(p.matcher.MultiPatternSearch(norm, true)) > 0
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// stripInvisible removes control and format runes (LTR marks, zero-width
// spaces) that exporters embed around authors and bodies.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}

// Service events either have no "author: body" shape at all, or carry a
// membership/security phrase in the author position ("Alice added Bob",
// "Alice changed the subject to: trips").
var systemPhrases = []string{
	" added ",
	" left",
	" removed ",
	" joined using this group's invite link",
	" changed the subject",
	" changed this group's icon",
	" changed the group icon",
	" created group",
	" changed their phone number",
	" security code changed",
	"end-to-end encrypted",
	"started a video call",
	"missed voice call",
}

// Some service notices keep the "author: body" shape ("Alice: Messages
// and calls are end-to-end encrypted..."). These phrases are unambiguous
// enough to probe the body itself.
var systemBodyPhrases = []string{
	"end-to-end encrypted",
	"security code changed",
	"joined using this group's invite link",
}

// Attachment and deletion placeholders: real messages for counting
// purposes, but their bodies carry no analyzable text.
var mediaPhrases = []string{
	"<media omitted>",
	"image omitted",
	"video omitted",
	"gif omitted",
	"sticker omitted",
	"audio omitted",
	"document omitted",
	"<attached:",
	"this message was deleted",
	"you deleted this message",
}
