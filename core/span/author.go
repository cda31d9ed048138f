package span

import (
	"strings"

	"github.com/vysti/marker/core/nlp"
)

// author.go - Author full-name matching.

// authorLookback is how many word tokens before a surname may hold the
// given names or initials.
const authorLookback = 4

// AuthorMatch is the result of searching text for an author's name.
type AuthorMatch struct {
	// Span covers from the earliest matched given-name token through
	// the surname, half open.
	Span nlp.Span
	// Full is true when every given-name token (or its initial) was
	// found in the lookback window; false when only the surname matched.
	Full bool
}

// FindAuthor searches for the configured author's full name. The
// surname must appear as a word; each given-name token then has to
// appear, as itself or as an initial ("F." for "Francis"), within the
// lookback window before the surname. The best surname occurrence
// (full match preferred, earliest otherwise) wins.
func FindAuthor(text string, tokens []nlp.Token, author string) (AuthorMatch, bool) {
	parts := strings.Fields(author)
	if len(parts) == 0 {
		return AuthorMatch{}, false
	}
	surname := strings.ToLower(parts[len(parts)-1])
	given := parts[:len(parts)-1]

	var words []nlp.Token
	for _, t := range tokens {
		if t.POS != nlp.POSPunct {
			words = append(words, t)
		}
	}

	var partial *AuthorMatch
	for i, w := range words {
		if strings.ToLower(strings.TrimSuffix(w.Text, ".")) != surname {
			continue
		}
		start := w.Start
		matched := 0
		lo := i - authorLookback
		if lo < 0 {
			lo = 0
		}
		for _, g := range given {
			for j := lo; j < i; j++ {
				if matchesGiven(words[j].Text, g) {
					matched++
					if words[j].Start < start {
						start = words[j].Start
					}
					break
				}
			}
		}
		m := AuthorMatch{Span: nlp.Span{Start: start, End: w.End}, Full: matched == len(given)}
		if m.Full {
			return m, true
		}
		if partial == nil {
			partial = &m
		}
	}
	if partial != nil {
		return *partial, true
	}
	return AuthorMatch{}, false
}

// matchesGiven reports whether token text matches a given name exactly
// or as an initial.
func matchesGiven(tok, given string) bool {
	t := strings.ToLower(strings.TrimSuffix(tok, "."))
	g := strings.ToLower(strings.TrimSuffix(given, "."))
	if t == g {
		return true
	}
	// "F" matches "Francis"; "F." tokens arrive without the period.
	return len(t) == 1 && len(g) > 0 && t[0] == g[0]
}
