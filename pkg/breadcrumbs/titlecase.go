package breadcrumbs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minorWords stay lower case in a title.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "for": true, "if": true, "in": true, "is": true, "nor": true,
	"of": true, "on": true, "or": true, "the": true, "to": true, "with": true,
}

// titleCase turns a path segment such as "getting-started" or "userProfile"
// into "Getting Started" or "User Profile".
func titleCase(s string) string {
	// Casers are stateful; one per call.
	upper := cases.Title(language.Und, cases.NoLower)
	words := splitByCase(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if minorWords[strings.ToLower(w)] {
			out = append(out, strings.ToLower(w))
			continue
		}
		out = append(out, upperFirst(upper, w))
	}
	return strings.Join(out, " ")
}

// upperFirst upper-cases the first letter of w and leaves the rest as is.
func upperFirst(c cases.Caser, w string) string {
	_, size := utf8.DecodeRuneInString(w)
	return c.String(w[:size]) + w[size:]
}

// letter case classes for splitByCase; digits and symbols have none.
const (
	caseNone = iota
	caseLower
	caseUpper
)

func caseOf(r rune) int {
	switch {
	case unicode.IsDigit(r):
		return caseNone
	case unicode.ToLower(r) != r:
		return caseUpper
	default:
		return caseLower
	}
}

func isSplitter(r rune) bool {
	return r == '-' || r == '_' || r == '/' || r == '.'
}

// splitByCase splits s on '-', '_', '/' and '.', and at lower-to-upper
// transitions. A run of upper case letters followed by a lower case letter
// keeps its last capital with the next word ("HTMLParser" -> HTML, Parser).
func splitByCase(s string) []string {
	var parts []string
	var buf []rune
	prev := caseNone
	started := false
	for _, r := range s {
		if isSplitter(r) {
			parts = append(parts, string(buf))
			buf = buf[:0]
			prev = caseNone
			continue
		}
		cur := caseOf(r)
		if started {
			if prev == caseLower && cur == caseUpper {
				parts = append(parts, string(buf))
				buf = append(buf[:0], r)
				prev = cur
				continue
			}
			if prev == caseUpper && cur == caseLower && len(buf) > 1 {
				last := buf[len(buf)-1]
				parts = append(parts, string(buf[:len(buf)-1]))
				buf = append(buf[:0], last, r)
				prev = cur
				continue
			}
		}
		buf = append(buf, r)
		prev = cur
		started = true
	}
	return append(parts, string(buf))
}
