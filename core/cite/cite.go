// Package cite recognizes MLA-style parenthetical citations such as
// "(Jackson 23)", "(23)", or "(Fitzgerald 12-14)". The detectors use
// it to exempt citation internals from prose rules (numerals inside a
// citation are fine) and to notice cited evidence.
package cite

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/vysti/marker/core/nlp"
)

// Citation is one parsed parenthetical citation.
type Citation struct {
	// Author holds the author name tokens, possibly empty for
	// page-only citations.
	Author []string `parser:"'(' @Ident*"`

	// Page is the cited page (or the start of a range).
	Page int `parser:"@Int"`

	// PageEnd is the end of a page range, nil for single pages.
	PageEnd *int `parser:"('-' @Int)? ')'"`
}

var parser = participle.MustBuild[Citation]()

// Parse parses a single parenthetical citation, parentheses included.
func Parse(s string) (*Citation, error) {
	return parser.ParseString("", strings.TrimSpace(s))
}

// Is reports whether s is a well-formed parenthetical citation.
func Is(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Spans returns the byte ranges of every parenthetical citation in
// text, half open and including the parentheses.
func Spans(text string) []nlp.Span {
	var spans []nlp.Span
	for i := 0; i < len(text); i++ {
		if text[i] != '(' {
			continue
		}
		close := strings.IndexByte(text[i:], ')')
		if close < 0 {
			break
		}
		end := i + close + 1
		if Is(text[i:end]) {
			spans = append(spans, nlp.Span{Start: i, End: end})
		}
		i = end - 1
	}
	return spans
}

// Covers reports whether byte position pos falls inside any citation
// span of text.
func Covers(text string, pos int) bool {
	for _, s := range Spans(text) {
		if pos >= s.Start && pos < s.End {
			return true
		}
	}
	return false
}
