package rules

import (
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/span"
)

// titleauthor.go - First-sentence author and title identification.
//
// The opening sentence of the introduction must name each configured
// work's author in full and its title close to exactly. A missing
// author or title gets the full first-sentence callout; a surname-only
// author or a fuzzy title gets a narrower question on the matched span.

func titleAuthorDetector() Detector {
	return Detector{ID: "title_author", Roles: []Role{RoleIntro}, Run: runTitleAuthor}
}

func runTitleAuthor(c *Context) []*mark.Mark {
	if len(c.Ann.Sentences) == 0 || len(c.Config.Works) == 0 {
		return nil
	}
	first := c.Ann.Sentences[0]
	text := c.Text[:first.End]
	var toks []nlp.Token
	for _, t := range c.Ann.Tokens {
		if t.End <= first.End {
			toks = append(toks, t)
		}
	}

	var out []*mark.Mark
	missing := false
	for _, w := range c.Config.Works {
		if w.Title != "" {
			if m, ok := span.FindTitle(text, toks, w.Title); ok {
				if !m.Exact {
					out = append(out, c.Flag(m.Span.Start, m.Span.End, rulebook.LabelTitleCorrect, mark.ColorSoft))
				}
			} else {
				missing = true
			}
		}
		if w.Author != "" {
			if m, ok := span.FindAuthor(text, toks, w.Author); ok {
				if !m.Full {
					out = append(out, c.Flag(m.Span.Start, m.Span.End, rulebook.LabelAuthorName, mark.ColorSoft))
				}
			} else {
				missing = true
			}
		}
	}
	if missing {
		out = append(out, c.FlagAnchor(first.End, rulebook.LabelFirstSentence))
	}
	return out
}
