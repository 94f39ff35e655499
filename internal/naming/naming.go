// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter of s and lower-cases the rest.
// Example: "index" -> "Index"
// Example: "HTTP" -> "Http"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// Camelize converts a lower_case_and_underscored path to CamelCase.
// Underscores are dropped and the word after each underscore or slash is
// capitalized. Slashes become "::". A leading word that already starts
// with an upper-case letter is left alone.
// Example: "names_controller" -> "NamesController"
// Example: "controller_names/index_responder" -> "ControllerNames::IndexResponder"
func Camelize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	lead := leadingWord(s)
	b.WriteString(Capitalize(lead))

	rest := s[len(lead):]
	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
		switch r {
		case '_', '/':
			if r == '/' {
				b.WriteString("::")
			}
			word := alnumWord(rest)
			b.WriteString(Capitalize(word))
			rest = rest[len(word):]
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Underscore converts a CamelCase name to lower_case_and_underscored form.
// "::" becomes '/', hyphens become underscores, and acronym runs are kept
// together.
// Example: "NamesController" -> "names_controller"
// Example: "ControllerNames::IndexResponder" -> "controller_names/index_responder"
// Example: "APIClient" -> "api_client"
func Underscore(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "-") && !strings.Contains(s, "::") && !hasUpper(s) {
		return s
	}

	runes := []rune(strings.ReplaceAll(s, "::", "/"))

	var b strings.Builder
	b.Grow(len(runes) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		if r == '-' {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// leadingWord returns the run of lower-case ASCII letters and digits at the
// start of s.
func leadingWord(s string) string {
	i := 0
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= '0' && s[i] <= '9') {
		i++
	}
	return s[:i]
}

// alnumWord returns the run of ASCII letters and digits at the start of s.
func alnumWord(s string) string {
	i := 0
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z' || s[i] >= '0' && s[i] <= '9') {
		i++
	}
	return s[:i]
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
