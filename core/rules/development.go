package rules

import (
	"strings"

	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/rulebook"
)

// development.go - Paragraph length and evidence presence checks.

func developmentDetectors() []Detector {
	return []Detector{
		{ID: "development", Roles: []Role{RoleBody}, Run: runDevelopment},
		{ID: "body_evidence", Roles: []Role{RoleBody}, Run: runBodyEvidence},
		{ID: "intro_length", Roles: []Role{RoleIntro}, Run: runIntroLength},
		{ID: "conclusion_length", Roles: []Role{RoleConclusion}, Run: runConclusionLength},
	}
}

// paraEnd returns the anchor position for end-of-paragraph callouts.
func paraEnd(c *Context) int {
	return len(strings.TrimRight(c.Text, " \t\n\r"))
}

func runDevelopment(c *Context) []*mark.Mark {
	if c.Bridge {
		return nil
	}
	if len(c.Ann.Sentences) > 4 {
		return nil
	}
	return []*mark.Mark{c.FlagAnchor(paraEnd(c), rulebook.LabelUndeveloped)}
}

// runBodyEvidence requires a quotation in an interior sentence. Quotes
// in the topic or final sentence have their own placement rules and do
// not count as evidence.
func runBodyEvidence(c *Context) []*mark.Mark {
	if c.Bridge {
		return nil
	}
	if len(c.Ann.Sentences) < 3 || hasInteriorQuote(c) {
		return nil
	}
	// Anchored at the topic sentence end, where evidence should begin.
	return []*mark.Mark{c.FlagAnchor(c.Ann.Sentences[0].End, rulebook.LabelNeedsEvidence)}
}

// hasInteriorQuote reports whether any quotation starts in a sentence
// that is neither the first nor the last of the paragraph.
func hasInteriorQuote(c *Context) bool {
	n := len(c.Ann.Sentences)
	for _, q := range c.Quotes {
		for i, s := range c.Ann.Sentences {
			if q.Start >= s.Start && q.Start < s.End {
				if i > 0 && i < n-1 {
					return true
				}
				break
			}
		}
	}
	return false
}

func runIntroLength(c *Context) []*mark.Mark {
	if len(c.Ann.Sentences) >= c.Config.IntroSentences() {
		return nil
	}
	return []*mark.Mark{c.FlagAnchor(paraEnd(c), rulebook.LabelShortSummary)}
}

func runConclusionLength(c *Context) []*mark.Mark {
	if len(c.Ann.Sentences) >= 3 {
		return nil
	}
	return []*mark.Mark{c.FlagAnchor(paraEnd(c), rulebook.LabelIncompleteConcl)}
}
