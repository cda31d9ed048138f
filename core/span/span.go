// Package span provides the pure span arithmetic the detectors share:
// quotation-interior ranges, sentence boundary fixups on top of the
// annotation provider, normalized string similarity, fuzzy title
// search, and author name matching. Everything here is a deterministic
// function of its inputs.
package span

// Range is a byte range over paragraph text. Unlike sentence spans,
// Range is END-INCLUSIVE: Contains reports true for pos == End. Quote
// interiors use this convention so a terminator sitting just before a
// closing quote still counts as quoted.
type Range struct {
	Start int
	End   int
}

// Contains reports whether pos falls inside the range, end inclusive.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos <= r.End
}

// InAny reports whether pos falls inside any of the ranges.
func InAny(pos int, ranges []Range) bool {
	for _, r := range ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// QuoteSpans returns the interior ranges of straight double-quoted
// regions of text. Quotes pair up left to right; an unmatched trailing
// opener yields no span. The interior excludes the quote characters
// themselves.
func QuoteSpans(text string) []Range {
	var ranges []Range
	open := -1
	for i := 0; i < len(text); i++ {
		if text[i] != '"' {
			continue
		}
		if open < 0 {
			open = i
			continue
		}
		if i > open+1 {
			ranges = append(ranges, Range{Start: open + 1, End: i - 1})
		}
		open = -1
	}
	return ranges
}

// QuotedText returns the text of each quoted region, in order.
func QuotedText(text string) []string {
	spans := QuoteSpans(text)
	out := make([]string, 0, len(spans))
	for _, r := range spans {
		out = append(out, text[r.Start:r.End+1])
	}
	return out
}
