package rules

import (
	"strings"

	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/span"
)

// titleline.go - Checks on the essay's own title line: capitalization,
// reuse of the work's title verbatim, and formatting of embedded work
// titles (quotation marks for minor works, italics for major works).

func titleLineDetectors() []Detector {
	return []Detector{
		{ID: "title_line", Roles: []Role{RoleTitle}, Run: runTitleLine},
		{ID: "title_works", Roles: []Role{RoleTitle}, Run: runTitleWorks},
	}
}

// titleSmallWords stay lowercase in titles unless first or last.
var titleSmallWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true,
	"or": true, "nor": true, "for": true, "of": true, "in": true,
	"on": true, "at": true, "to": true, "by": true, "with": true,
	"from": true, "as": true, "up": true,
}

func runTitleLine(c *Context) []*mark.Mark {
	var out []*mark.Mark

	var words []int
	for i, t := range c.Ann.Tokens {
		if t.IsWord() {
			words = append(words, i)
		}
	}
	for n, i := range words {
		t := c.Ann.Tokens[i]
		low := strings.ToLower(t.Text)
		principal := n == 0 || n == len(words)-1 || !titleSmallWords[low]
		if principal && startsLower(t.Text) {
			out = append(out, c.Flag(t.Start, t.End, rulebook.LabelTitleCapitalize, mark.ColorSoft))
		}
	}

	// An essay titled exactly after the work under discussion needs its
	// own title.
	line := strings.TrimSpace(c.Text)
	for _, w := range c.Config.Works {
		if w.Title != "" && span.Normalize(line) == span.Normalize(w.Title) {
			out = append(out, c.Flag(0, len(c.Text), rulebook.LabelTitleFormat, mark.ColorSoft))
			break
		}
	}
	return out
}

func runTitleWorks(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, w := range c.Config.Works {
		if w.Title == "" {
			continue
		}
		m, ok := span.FindTitle(c.Text, c.Ann.Tokens, w.Title)
		if !ok {
			continue
		}
		// Skip when the whole line is the work title; that case is the
		// title-format rule's.
		if span.Normalize(strings.TrimSpace(c.Text)) == span.Normalize(w.Title) {
			continue
		}
		if w.Major {
			if !emphasisCovers(c.Emphasis, m.Span) {
				out = append(out, c.Flag(m.Span.Start, m.Span.End, rulebook.LabelMajorWorkItalic, mark.ColorSoft))
			}
		} else if !quotedAround(c.Text, m.Span) {
			out = append(out, c.Flag(m.Span.Start, m.Span.End, rulebook.LabelMinorWorkQuotes, mark.ColorSoft))
		}
	}
	return out
}

func emphasisCovers(emph []nlp.Span, s nlp.Span) bool {
	for _, e := range emph {
		if e.Start <= s.Start && e.End >= s.End {
			return true
		}
	}
	return false
}

func quotedAround(text string, s nlp.Span) bool {
	return s.Start > 0 && text[s.Start-1] == '"' &&
		s.End < len(text) && text[s.End] == '"'
}

func startsLower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return c >= 'a' && c <= 'z'
		}
	}
	return false
}
