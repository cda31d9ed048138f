package span

import (
	"strings"

	"github.com/vysti/marker/core/nlp"
)

// title.go - Fuzzy title search and title-case checks.

// TitleMatch is the result of searching a sentence for a work title.
type TitleMatch struct {
	// Span is the matched byte range, half open.
	Span nlp.Span
	// Exact is true when the normalized candidate equals the
	// normalized title, false for a fuzzy best match.
	Exact bool
}

// FindTitle searches sentence text for a configured work title.
// Candidates are substrings aligned to word-token boundaries; a
// candidate shorter than half the title's normalized length, or
// without letters, is rejected. An exact normalized match wins
// immediately; otherwise the best-scoring candidate at or above the
// similarity threshold wins, provided it looks title-case-like.
// Returns ok=false when nothing qualifies.
func FindTitle(text string, tokens []nlp.Token, title string) (TitleMatch, bool) {
	normTitle := Normalize(title)
	if normTitle == "" {
		return TitleMatch{}, false
	}
	minLen := len(normTitle) / 2

	var words []nlp.Token
	for _, t := range tokens {
		if t.POS != nlp.POSPunct {
			words = append(words, t)
		}
	}

	best := TitleMatch{}
	bestScore := 0.0
	for i := 0; i < len(words); i++ {
		for j := i; j < len(words); j++ {
			if words[j].End-words[i].Start > 3*len(title) {
				break
			}
			cand := text[words[i].Start:words[j].End]
			norm := Normalize(cand)
			if len(norm) < minLen || !hasLetter(norm) {
				continue
			}
			if norm == normTitle {
				return TitleMatch{Span: nlp.Span{Start: words[i].Start, End: words[j].End}, Exact: true}, true
			}
			score := Ratio(norm, normTitle)
			if score >= SimilarityThreshold && score > bestScore && TitleCaseLike(cand) {
				best = TitleMatch{Span: nlp.Span{Start: words[i].Start, End: words[j].End}}
				bestScore = score
			}
		}
	}
	if bestScore > 0 {
		return best, true
	}
	return TitleMatch{}, false
}

// TitleCaseLike reports whether s plausibly renders a title: its first
// word is capitalized and at least half of its words are.
func TitleCaseLike(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	if !startsUpper(fields[0]) {
		return false
	}
	upper := 0
	for _, f := range fields {
		if startsUpper(f) {
			upper++
		}
	}
	return upper*2 >= len(fields)
}

func startsUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLetterByte(c) {
			return c >= 'A' && c <= 'Z'
		}
	}
	return false
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if isLetterByte(s[i]) {
			return true
		}
	}
	return false
}
