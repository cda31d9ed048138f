package rules

import (
	"strings"

	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/span"
)

// evidence.go - Evidence handling inside body paragraphs: repeated
// citations and the lead-in pattern before a quotation.

func evidenceDetectors() []Detector {
	return []Detector{
		{ID: "cite_once", Roles: []Role{RoleBody}, Run: runCiteOnce},
		{ID: "evidence_process", Roles: []Role{RoleBody}, Run: runEvidenceProcess},
	}
}

// interiorQuotes returns the first quotation of each interior sentence,
// in order. Quotes in the topic or final sentence carry their own
// placement rules and are not treated as evidence here.
func interiorQuotes(c *Context) []span.Range {
	n := len(c.Ann.Sentences)
	var out []span.Range
	for i, s := range c.Ann.Sentences {
		if i == 0 || i == n-1 {
			continue
		}
		for _, q := range c.Quotes {
			if q.Start >= s.Start && q.Start < s.End {
				if !isTitleQuote(c, q) {
					out = append(out, q)
				}
				break
			}
		}
	}
	return out
}

// runCiteOnce flags an evidence quotation that repeats an earlier one in
// the same paragraph, exactly or near enough to read as the same
// evidence.
func runCiteOnce(c *Context) []*mark.Mark {
	qs := interiorQuotes(c)
	if len(qs) < 2 {
		return nil
	}
	var out []*mark.Mark
	for i := 1; i < len(qs); i++ {
		for j := 0; j < i; j++ {
			if !sameEvidence(c, qs[j], qs[i]) {
				continue
			}
			ms, me := quoteMarkSpan(c.Text, qs[i])
			out = append(out, c.Flag(ms, me, rulebook.LabelCiteOnce, mark.ColorSoft))
			break
		}
	}
	return out
}

// sameEvidence reports whether two quote interiors carry the same
// material: identical normalized text, or any shared content lemma.
// A single repeated word is enough ("giggly black ghosts" followed by
// "ghosts" reads as the same evidence).
func sameEvidence(c *Context, a, b span.Range) bool {
	at := c.Text[a.Start : a.End+1]
	bt := c.Text[b.Start : b.End+1]
	if span.Normalize(at) == span.Normalize(bt) {
		return true
	}
	seen := make(map[string]bool)
	for _, t := range c.Ann.Tokens {
		if t.Start >= a.Start && t.End <= a.End+1 && t.IsContent() {
			seen[t.Lemma] = true
		}
	}
	for _, t := range c.Ann.Tokens {
		if t.Start >= b.Start && t.End <= b.End+1 && t.IsContent() && seen[t.Lemma] {
			return true
		}
	}
	return false
}

// runEvidenceProcess flags quotations introduced by a bare lead-in
// clause: a short comma-terminated opener with too few content words.
// Gerund openers ("Describing the scene, ...") are accepted.
func runEvidenceProcess(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, q := range interiorQuotes(c) {
		sent, ok := c.Ann.SentenceAt(q.Start)
		if !ok {
			continue
		}
		open := q.Start - 1
		if open <= sent.Start {
			continue
		}
		lead := strings.TrimRight(c.Text[sent.Start:open], " ")
		if !strings.HasSuffix(lead, ",") {
			continue
		}
		words := 0
		content := 0
		gerund := false
		for _, t := range c.Ann.Tokens {
			if t.Start < sent.Start || t.End > open {
				continue
			}
			if !t.IsWord() {
				continue
			}
			words++
			if words == 1 && strings.HasSuffix(strings.ToLower(t.Text), "ing") {
				gerund = true
			}
			if t.IsContent() {
				content++
			}
		}
		if gerund || words < 1 || words > 5 || content >= 4 {
			continue
		}
		out = append(out, c.Flag(sent.Start, open, rulebook.LabelEvidenceProcess, mark.ColorSuggestion))
	}
	return out
}
