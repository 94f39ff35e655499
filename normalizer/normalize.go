package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// fullWidth matches the full-width digits, Latin letters and the
// ideographic space. Other full-width punctuation ('＃', '－') is left
// untouched so it never turns into a token separator.
var fullWidth = runes.Predicate(func(r rune) bool {
	return (r >= '０' && r <= '９') ||
		(r >= 'ａ' && r <= 'ｚ') ||
		(r >= 'Ａ' && r <= 'Ｚ') ||
		r == '　'
})

// Normalize maps full-width digits, letters and spaces to ASCII and then
// removes every whitespace rune from s. Bytes that are not valid UTF-8
// are copied through unchanged.
//
//	Normalize("　　no　　　rm　　al　iz　ed　　　") // "normalized"
//	Normalize("ｎormalized")                       // "normalized"
func Normalize(s string) string {
	// Transformers carry state, so the chain is built per call.
	t := transform.Chain(
		runes.If(fullWidth, width.Narrow, nil),
		runes.Remove(runes.Predicate(unicode.IsSpace)),
	)
	out, _, _ := transform.String(t, s)
	return out
}
