// Package render rebuilds annotated paragraphs and the summary report.
// It turns a paragraph's flattened text, its original italic spans, and
// the merged mark list into formatted fragments: highlighted spans,
// inserted label callouts linking to the summary table, and the
// end-of-paragraph rewrite marker. All inserted fragments are tagged
// Generated, which is what keeps a second annotation pass from seeing
// them as student text.
package render

import (
	"strings"

	"github.com/vysti/marker/core/doc"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
)

// highlightFor maps a mark color to a fragment highlight.
func highlightFor(c mark.Color) doc.Highlight {
	switch c {
	case mark.ColorSoft:
		return doc.HighlightGray
	case mark.ColorDelete:
		return doc.HighlightRed
	case mark.ColorSuggestion:
		return doc.HighlightTurquoise
	case mark.ColorStructural:
		return doc.HighlightBlue
	case mark.ColorPraise:
		return doc.HighlightGreen
	}
	return doc.HighlightNone
}

// closingQuote and trailing punctuation that quotation-rule labels are
// repositioned past, so the callout never lands inside the quote.
func isClosingQuote(c byte) bool { return c == '"' }
func isTrailingPunct(c byte) bool {
	return c == '.' || c == ',' || c == ';' || c == ':' || c == '!' || c == '?'
}

// isQuoteLabel reports whether a label belongs to the quotation rule
// family, whose callouts move past the closing quote.
func isQuoteLabel(note string) bool {
	return strings.Contains(strings.ToLower(note), "quotation")
}

// Paragraph rebuilds fragments for one paragraph from its flattened
// text, the italic spans of the source, and the merged marks. Marks
// must be merged and sorted (mark.Merge output).
func Paragraph(text string, emphasis []nlp.Span, marks []*mark.Mark, anchors *Anchors) []*doc.Fragment {
	var frags []*doc.Fragment
	if len(marks) == 0 {
		appendStyled(&frags, text, 0, len(text), emphasis, doc.HighlightNone, false)
		return frags
	}

	cursor := 0
	for _, m := range marks {
		start := clamp(m.Start, len(text))
		end := clamp(m.End, len(text))

		if cursor < start {
			appendStyled(&frags, text, cursor, start, emphasis, doc.HighlightNone, false)
		}
		cursor = start

		if start < end {
			// Strikethrough renders only on delete-colored spans.
			strike := m.Strike && m.Color == mark.ColorDelete
			appendStyled(&frags, text, start, end, emphasis, highlightFor(m.Color), strike)
			cursor = end
		}

		if m.Note == "" || !m.Label {
			continue
		}
		if isQuoteLabel(m.Note) {
			// Step past a closing quote and its trailing punctuation so
			// the callout sits outside the quotation.
			if cursor < len(text) && isClosingQuote(text[cursor]) {
				appendStyled(&frags, text, cursor, cursor+1, emphasis, doc.HighlightNone, false)
				cursor++
				for cursor < len(text) && isTrailingPunct(text[cursor]) {
					appendStyled(&frags, text, cursor, cursor+1, emphasis, doc.HighlightNone, false)
					cursor++
				}
			}
		}
		frags = append(frags, labelFragment(m, anchors))
	}
	if cursor < len(text) {
		appendStyled(&frags, text, cursor, len(text), emphasis, doc.HighlightNone, false)
	}
	return frags
}

// labelFragment builds the inserted callout run for a labeled mark.
func labelFragment(m *mark.Mark, anchors *Anchors) *doc.Fragment {
	f := &doc.Fragment{
		Text:      " → " + m.Note,
		Bold:      true,
		Highlight: doc.HighlightYellow,
		Generated: true,
	}
	if m.Praise {
		// Praise stays green and does not link into the issue table.
		f.Highlight = doc.HighlightGreen
		return f
	}
	f.LinkAnchor = anchors.For(m.Note)
	return f
}

// appendStyled appends fragments for text[start:end], splitting at
// italic boundaries so source emphasis survives exactly. Highlighted or
// struck fragments are engine output and marked Generated-free: they
// still carry the student's characters, so flattening keeps them.
func appendStyled(frags *[]*doc.Fragment, text string, start, end int, emphasis []nlp.Span, hl doc.Highlight, strike bool) {
	pos := start
	for pos < end {
		italic := italicAt(emphasis, pos)
		next := end
		for _, e := range emphasis {
			if italic {
				if pos < e.End && e.End < next {
					next = e.End
				}
			} else if pos < e.Start && e.Start < next {
				next = e.Start
			}
		}
		*frags = append(*frags, &doc.Fragment{
			Text:      text[pos:next],
			Italic:    italic,
			Strike:    strike,
			Highlight: hl,
		})
		pos = next
	}
}

func italicAt(emphasis []nlp.Span, pos int) bool {
	for _, e := range emphasis {
		if pos >= e.Start && pos < e.End {
			return true
		}
	}
	return false
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// rewriteThreshold is the per-paragraph rule-break count at which the
// rewrite-for-practice marker appears.
const rewriteThreshold = 5

// NeedsRewrite reports whether a paragraph's marks warrant the
// rewrite-for-practice marker. Turquoise nudges and praise do not
// count against the student.
func NeedsRewrite(marks []*mark.Mark) bool {
	n := 0
	for _, m := range marks {
		if m.Color == mark.ColorSuggestion || m.Praise {
			continue
		}
		n++
	}
	return n >= rewriteThreshold
}

// RewriteMarker returns the end-of-paragraph rewrite-for-practice run.
func RewriteMarker() *doc.Fragment {
	return &doc.Fragment{
		Text:      " * Rewrite this paragraph for practice *",
		Highlight: doc.HighlightRed,
		Underline: true,
		Generated: true,
	}
}
