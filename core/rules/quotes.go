package rules

import (
	"strings"

	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/span"
)

// quotes.go - Quotation placement and integration detectors.
//
// Placement rules depend on where the quotation sits: introductions and
// conclusions should carry none, and within a body paragraph the topic
// and final sentences must stay in the student's own words. Quoted work
// titles are exempt everywhere.

func quoteDetectors() []Detector {
	return []Detector{
		{ID: "quote_rules", Run: runQuotePlacement},
		{ID: "floating_quote", Run: runFloatingQuote},
		{ID: "quote_first", Run: runQuoteFirst},
		{ID: "long_quote", Run: runLongQuote},
	}
}

// quoteMarkSpan widens a quote interior to include the quotation marks
// themselves, clamped to the text.
func quoteMarkSpan(text string, q span.Range) (int, int) {
	start := q.Start - 1
	if start < 0 {
		start = 0
	}
	end := q.End + 2
	if end > len(text) {
		end = len(text)
	}
	return start, end
}

// isTitleQuote reports whether a quote interior is a configured work
// title, exactly or fuzzily.
func isTitleQuote(c *Context, q span.Range) bool {
	inner := c.Text[q.Start : q.End+1]
	for _, w := range c.Config.Works {
		if w.Title == "" {
			continue
		}
		if span.Normalize(inner) == span.Normalize(w.Title) {
			return true
		}
		if span.TitleSimilarity(inner, w.Title) >= span.SimilarityThreshold {
			return true
		}
	}
	return false
}

func runQuotePlacement(c *Context) []*mark.Mark {
	if len(c.Quotes) == 0 {
		return nil
	}
	var out []*mark.Mark
	nSents := len(c.Ann.Sentences)
	topic := span.TopicSentenceSpan(c.Text, c.Ann.Sentences)
	for _, q := range c.Quotes {
		if isTitleQuote(c, q) {
			continue
		}
		ms, me := quoteMarkSpan(c.Text, q)
		sent, ok := c.Ann.SentenceAt(q.Start)
		inFinal := ok && nSents > 0 && sent == c.Ann.Sentences[nSents-1]
		switch c.Role {
		case RoleIntro:
			if inFinal {
				out = append(out, c.Flag(ms, me, rulebook.LabelNoQuoteThesis, mark.ColorSoft))
			} else {
				out = append(out, c.Flag(ms, me, rulebook.LabelNoQuoteIntro, mark.ColorSoft))
			}
		case RoleBody:
			if q.Start < topic.End && q.End+1 > topic.Start {
				out = append(out, c.Flag(ms, me, rulebook.LabelNoQuoteTopic, mark.ColorSoft))
			} else if inFinal && nSents > 1 {
				out = append(out, c.Flag(ms, me, rulebook.LabelNoQuoteFinal, mark.ColorSoft))
			}
		case RoleConclusion:
			out = append(out, c.Flag(ms, me, rulebook.LabelNoQuoteConclusion, mark.ColorSoft))
		}
	}
	return out
}

// sentenceShape trims a sentence and reports whether it opens with a
// quotation mark and whether it is quoted end to end.
func sentenceShape(text string) (opens, floating bool) {
	t := strings.TrimSpace(text)
	if len(t) < 2 || t[0] != '"' {
		return false, false
	}
	// Strip a trailing terminator run outside the closing quote.
	end := len(t) - 1
	for end > 0 && (t[end] == '.' || t[end] == '!' || t[end] == '?' || t[end] == ',') {
		end--
	}
	return true, t[end] == '"'
}

// runFloatingQuote flags sentences that are nothing but a quotation.
func runFloatingQuote(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, s := range c.Ann.Sentences {
		_, floating := sentenceShape(c.Text[s.Start:s.End])
		if floating {
			out = append(out, c.Flag(s.Start, s.End, rulebook.LabelFloatingQuote, mark.ColorSoft))
		}
	}
	return out
}

// runQuoteFirst flags sentences that open with a quotation but carry
// their own words after it. Fully quoted sentences belong to the
// floating-quote rule.
func runQuoteFirst(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, s := range c.Ann.Sentences {
		opens, floating := sentenceShape(c.Text[s.Start:s.End])
		if opens && !floating {
			out = append(out, c.FlagAnchor(s.Start, rulebook.LabelQuoteFirst))
		}
	}
	return out
}

// longQuoteWords is the word count above which a quotation should be
// shortened or set off as a block.
const longQuoteWords = 25

func runLongQuote(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, q := range c.Quotes {
		inner := c.Text[q.Start : q.End+1]
		if len(strings.Fields(inner)) <= longQuoteWords {
			continue
		}
		ms, me := quoteMarkSpan(c.Text, q)
		out = append(out, c.Flag(ms, me, rulebook.LabelLongQuote, mark.ColorSuggestion))
	}
	return out
}
