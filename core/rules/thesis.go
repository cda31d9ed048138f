package rules

import (
	"strings"

	"github.com/vysti/marker/core/devices"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
)

// thesis.go - Thesis statement analysis.
//
// The thesis is the final sentence of the introduction. It must be
// closed (no question, at least one named device), list devices that
// are specific enough to organize body paragraphs, and name its
// devices before the thesis verb. The ordered non-embedded device list
// recorded here drives body paragraph alignment.

// thesisVerbs are the analytic verbs a thesis pivots on.
var thesisVerbs = map[string]bool{
	"show": true, "reveal": true, "demonstrate": true, "suggest": true,
	"argue": true, "critique": true, "use": true, "employ": true,
	"convey": true, "create": true, "explore": true, "depict": true,
	"portray": true, "illustrate": true, "examine": true, "develop": true,
	"present": true, "highlight": true, "emphasize": true,
}

// topicConnectors join listed topics without a comma.
var topicConnectors = [][]string{
	{"as", "well", "as"}, {"along", "with"}, {"coupled", "with"},
	{"in", "addition", "to"}, {"together", "with"}, {"paired", "with"},
	{"combined", "with"},
}

func thesisDetector() Detector {
	return Detector{ID: "thesis", Roles: []Role{RoleIntro}, Run: runThesis}
}

// thesisTopic is one device occurrence within the thesis sentence.
type thesisTopic struct {
	hit      devices.Hit
	embedded bool
	specific bool
}

func runThesis(c *Context) []*mark.Mark {
	if len(c.Ann.Sentences) == 0 {
		return nil
	}
	ts := c.Ann.Sentences[len(c.Ann.Sentences)-1]
	text := c.Text[ts.Start:ts.End]

	var out []*mark.Mark

	hits := hitsWithin(c, ts)
	open := len(hits) == 0 || questionOutsideQuotes(c, ts)
	if open {
		out = append(out, c.Flag(ts.Start, ts.End, rulebook.LabelClosedThesis, mark.ColorStructural))
	}
	if len(hits) == 0 {
		c.State.SetThesis(nil, nil, text)
		return out
	}

	topics := segmentTopics(c, ts, hits)

	if c.Config.Enabled("thesis_devices") {
		specific := 0
		nonEmbedded := 0
		for _, t := range topics {
			if t.embedded {
				continue
			}
			nonEmbedded++
			if t.specific {
				specific++
			}
		}
		need := nonEmbedded - 1
		if need < 1 {
			need = 1
		}
		if specific < need {
			for _, t := range topics {
				if !t.embedded && !t.specific {
					out = append(out, c.Flag(t.hit.Start, t.hit.End, rulebook.LabelSpecificTopics, mark.ColorStructural))
				}
			}
		}
		// At least one device should precede the argumentative verb.
		if vi, ok := firstThesisVerb(c, ts); ok && hits[0].Start > c.Ann.Tokens[vi].End {
			out = append(out, c.FlagAnchor(ts.End, rulebook.LabelThesisOrg))
		}
	}

	var ordered, all []string
	for _, t := range topics {
		all = append(all, t.hit.Canonical)
		if !t.embedded {
			ordered = append(ordered, t.hit.Canonical)
		}
	}
	c.State.SetThesis(ordered, all, text)
	return out
}

// hitsWithin returns device hits whose span lies inside the sentence.
func hitsWithin(c *Context, s nlp.Span) []devices.Hit {
	var out []devices.Hit
	for _, h := range c.Devices.Find(c.Text, c.Ann.Tokens) {
		if h.Start >= s.Start && h.End <= s.End {
			out = append(out, h)
		}
	}
	return out
}

func questionOutsideQuotes(c *Context, s nlp.Span) bool {
	for i := s.Start; i < s.End; i++ {
		if c.Text[i] == '?' && !c.InQuote(i) {
			return true
		}
	}
	return false
}

// segmentTopics walks the device hits in order and decides, for each,
// whether it starts a new listed topic or is embedded in the previous
// one. Commas and semicolons are hard separators; "and", "or", and the
// connector phrases separate when they fall between two devices.
func segmentTopics(c *Context, ts nlp.Span, hits []devices.Hit) []thesisTopic {
	topics := make([]thesisTopic, 0, len(hits))
	prevEnd := -1
	for _, h := range hits {
		t := thesisTopic{hit: h}
		if prevEnd >= 0 {
			t.embedded = !separatorBetween(c, prevEnd, h.Start)
		}
		if !t.embedded {
			t.specific = topicIsSpecific(c, ts, h)
			prevEnd = h.End
		}
		topics = append(topics, t)
	}
	return topics
}

// separatorBetween reports whether a topic separator occurs in the
// byte gap (from, to).
func separatorBetween(c *Context, from, to int) bool {
	if strings.ContainsAny(c.Text[from:to], ",;") {
		return true
	}
	for _, t := range c.Ann.Tokens {
		if t.Start < from || t.End > to {
			continue
		}
		low := strings.ToLower(t.Text)
		if low == "and" || low == "or" {
			return true
		}
	}
	for _, conn := range topicConnectors {
		for i, t := range c.Ann.Tokens {
			if t.Start < from || t.End > to {
				continue
			}
			if n := matchPhraseAt(c.Ann, i, conn); n > 0 && phraseEnd(c.Ann, i, n) <= to {
				return true
			}
		}
	}
	return false
}

// topicIsSpecific reports whether a device hit carries a qualifier: an
// adjective immediately before it, or a preposition plus a content
// word after it within its list segment.
func topicIsSpecific(c *Context, ts nlp.Span, h devices.Hit) bool {
	if prev, ok := prevWord(c.Ann, h.TokenIndex); ok && prev.POS == nlp.POSAdj && prev.Start >= ts.Start {
		return true
	}
	// "imagery of decay": preposition then a content word, stopping at
	// the next separator.
	j := nextWordIndex(c.Ann, afterHit(c.Ann, h))
	if j < 0 {
		return false
	}
	tok := c.Ann.Tokens[j]
	if tok.End > ts.End || tok.POS != nlp.POSAdp {
		return false
	}
	for k := j + 1; k < len(c.Ann.Tokens); k++ {
		t := &c.Ann.Tokens[k]
		if t.End > ts.End || strings.ContainsAny(t.Text, ",;") {
			break
		}
		low := strings.ToLower(t.Text)
		if low == "and" || low == "or" {
			break
		}
		if t.IsContent() {
			return true
		}
	}
	return false
}

// afterHit returns the token index just past a hit's matched tokens.
func afterHit(a *nlp.Annotation, h devices.Hit) int {
	i := h.TokenIndex
	for i < len(a.Tokens) && a.Tokens[i].Start < h.End {
		i++
	}
	return i
}

// firstThesisVerb finds the first thesis verb token in the sentence.
func firstThesisVerb(c *Context, s nlp.Span) (int, bool) {
	for i, t := range c.Ann.Tokens {
		if t.Start < s.Start || t.End > s.End {
			continue
		}
		if thesisVerbs[t.Lemma] && !c.Suppressed(t.Start) {
			return i, true
		}
	}
	return 0, false
}
