package span

import "github.com/vysti/marker/core/nlp"

// sentences.go - Post-processing of provider sentence boundaries.
//
// Student essays defeat naive segmentation in two recurring ways:
// terminators inside quotations (`"What is Love?", she asked.`) and
// missing spaces after a period ("...the end.The next point..."). Both
// fixups below are single forward scans and deterministic.

// FixSentences applies the merge and split passes to the provider's
// sentence spans and returns the corrected list.
func FixSentences(text string, sents []nlp.Span) []nlp.Span {
	return splitRunOns(text, mergeFalseSplits(text, sents))
}

// mergeFalseSplits merges sentence i+1 back into sentence i when the
// terminator that caused the split lies inside a quoted span or is
// immediately followed by a lowercase letter, digit, or closing
// punctuation.
func mergeFalseSplits(text string, sents []nlp.Span) []nlp.Span {
	if len(sents) < 2 {
		return sents
	}
	quotes := QuoteSpans(text)
	out := make([]nlp.Span, 0, len(sents))
	cur := sents[0]
	for i := 1; i < len(sents); i++ {
		next := sents[i]
		if shouldMerge(text, quotes, cur.End) {
			cur.End = next.End
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

// shouldMerge inspects the terminator closing the sentence that ends at
// end (exclusive).
func shouldMerge(text string, quotes []Range, end int) bool {
	term := end - 1
	// Step back over closing quotes/parens to the terminator itself.
	for term > 0 && !isTerminator(text[term]) {
		term--
	}
	if term < 0 || !isTerminator(text[term]) {
		return false
	}
	// First byte past the terminator run and any closing quote.
	next := term + 1
	for next < len(text) && (isTerminator(text[next]) || text[next] == '"') {
		next++
	}
	if InAny(term, quotes) {
		// A quoted terminator splits falsely unless what follows reads
		// like a fresh sentence.
		for next < len(text) && (text[next] == ' ' || text[next] == '\t') {
			next++
		}
		if next >= len(text) {
			return false
		}
		return text[next] < 'A' || text[next] > 'Z'
	}
	if next >= len(text) {
		return false
	}
	c := text[next]
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == ',' || c == ';' || c == ':' || c == ')' || c == ']':
		return true
	}
	return false
}

// splitRunOns splits a sentence wherever a terminator is immediately
// followed, with no space, by an uppercase letter outside any quoted
// span.
func splitRunOns(text string, sents []nlp.Span) []nlp.Span {
	quotes := QuoteSpans(text)
	var out []nlp.Span
	for _, s := range sents {
		start := s.Start
		for i := s.Start; i < s.End-1; i++ {
			if !isTerminator(text[i]) || InAny(i, quotes) {
				continue
			}
			c := text[i+1]
			if c < 'A' || c > 'Z' {
				continue
			}
			// A single capital initial ("F.Scott") is not a run-on.
			if i >= 1 && isUpperByte(text[i-1]) && (i < 2 || !isLetterByte(text[i-2])) {
				continue
			}
			out = append(out, nlp.Span{Start: start, End: i + 1})
			start = i + 1
		}
		if start < s.End {
			out = append(out, nlp.Span{Start: start, End: s.End})
		}
	}
	return out
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isUpperByte(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLetterByte(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// TopicSentenceSpan computes the span of a body paragraph's topic
// sentence: from the first non-space byte to the first terminator that
// lies outside any quotation, inclusive of the terminator. Students
// embed colons and quotes mid-sentence often enough that this scan,
// not the provider's first sentence, is authoritative. Falls back to
// the provider's first sentence when no terminator qualifies.
func TopicSentenceSpan(text string, sents []nlp.Span) nlp.Span {
	start := 0
	for start < len(text) && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	quotes := QuoteSpans(text)
	for i := start; i < len(text); i++ {
		if isTerminator(text[i]) && !InAny(i, quotes) {
			return nlp.Span{Start: start, End: i + 1}
		}
	}
	if len(sents) > 0 {
		return sents[0]
	}
	return nlp.Span{Start: start, End: len(text)}
}
