package rules

import (
	"strings"

	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
)

// lexical.go - Word and phrase ban detectors.
//
// Every ban follows the same policy: case-insensitive word-boundary
// matching (tokens, so boundaries come free), suppression inside
// quotations and configured work titles, per-rule idiomatic
// exceptions, and first-occurrence-gets-a-callout labeling.

// wordBan describes one lexical rule.
type wordBan struct {
	id    string
	label string
	// words are banned literal forms, lowercased.
	words []string
	// lemmas are banned dictionary forms.
	lemmas []string
	// phrases are banned multi-word sequences, lowercased.
	phrases [][]string
	// allow suppresses a word match given its neighborhood.
	allow func(c *Context, i int) bool
	color mark.Color
}

// prepositionsBeforeWhich lists the heads of relative constructions in
// which "which" is fine.
var prepositionsBeforeWhich = map[string]bool{
	"in": true, "of": true, "by": true, "for": true, "with": true,
	"to": true, "at": true, "on": true, "upon": true, "through": true,
	"during": true, "within": true, "from": true, "under": true,
	"after": true, "before": true,
}

func lexicalBans() []wordBan {
	return []wordBan{
		{
			id:    "first_person",
			label: rulebook.LabelFirstPerson,
			words: []string{
				"i", "me", "my", "mine", "myself",
				"we", "us", "our", "ours", "ourselves",
				"you", "your", "yours", "yourself", "yourselves",
			},
			color: mark.ColorSoft,
		},
		{
			id:    "ethos_pathos",
			label: rulebook.LabelEthosPathos,
			words: []string{"ethos", "pathos", "logos"},
			color: mark.ColorSoft,
		},
		{
			id:      "very_a_lot",
			label:   rulebook.LabelVeryALot,
			words:   []string{"very"},
			phrases: [][]string{{"a", "lot"}},
			color:   mark.ColorDelete,
		},
		{
			id:    "which",
			label: rulebook.LabelWhich,
			words: []string{"which"},
			allow: func(c *Context, i int) bool {
				// "in which", "of which": fine after a preposition.
				if prev, ok := prevWord(c.Ann, i); ok {
					return prepositionsBeforeWhich[strings.ToLower(prev.Text)]
				}
				return false
			},
			color: mark.ColorSoft,
		},
		{
			id:    "human_people",
			label: rulebook.LabelHumanPeople,
			words: []string{"human", "humans", "people", "everyone", "individual", "individuals"},
			color: mark.ColorSoft,
		},
		{
			id:     "fact_proof",
			label:  rulebook.LabelFactProof,
			words:  []string{"fact", "facts", "proof", "proofs"},
			lemmas: []string{"prove"},
			color:  mark.ColorSoft,
		},
		{
			id:     "overly_general",
			label:  rulebook.LabelOverlyGeneral,
			lemmas: []string{"society", "universe", "reality", "life", "truth"},
			allow: func(c *Context, i int) bool {
				// "way of life" is idiomatic.
				if c.Ann.Tokens[i].Lemma != "life" {
					return false
				}
				if prev, ok := prevWord(c.Ann, i); ok && strings.EqualFold(prev.Text, "of") {
					if prev2, ok := prevWordBefore(c.Ann, i, 2); ok && strings.EqualFold(prev2.Text, "way") {
						return true
					}
				}
				return false
			},
			color: mark.ColorSoft,
		},
		{
			id:    "etc",
			label: rulebook.LabelEtc,
			words: []string{"etc"},
			color: mark.ColorDelete,
		},
		{
			id:    "reader",
			label: rulebook.LabelReader,
			words: []string{"reader", "readers", "audience", "audiences"},
			color: mark.ColorSoft,
		},
		{
			id:    "therefore",
			label: rulebook.LabelTherefore,
			words: []string{"therefore", "thereby", "hence", "thus"},
			color: mark.ColorSoft,
		},
		{
			id:    "text_as_text",
			label: rulebook.LabelTextAsText,
			phrases: [][]string{
				{"the", "text"}, {"this", "text"}, {"a", "text"},
				{"the", "quote"}, {"this", "quote"}, {"the", "quotation"},
			},
			color: mark.ColorSoft,
		},
	}
}

// lexicalDetectors materializes the bans as registry detectors.
func lexicalDetectors() []Detector {
	bans := lexicalBans()
	dets := make([]Detector, 0, len(bans))
	for _, b := range bans {
		dets = append(dets, Detector{ID: b.id, Run: b.run})
	}
	return dets
}

// run scans the paragraph tokens for the ban's words and phrases.
func (b wordBan) run(c *Context) []*mark.Mark {
	var out []*mark.Mark
	toks := c.Ann.Tokens
	for i := 0; i < len(toks); i++ {
		t := &toks[i]
		if t.POS == nlp.POSPunct {
			continue
		}
		if c.Suppressed(t.Start) {
			continue
		}
		if n := b.phraseAt(c, i); n > 0 {
			end := phraseEnd(c.Ann, i, n)
			out = append(out, c.Flag(t.Start, end, b.label, b.color))
			i = skipWords(c.Ann, i, n) - 1
			continue
		}
		if !b.wordMatch(t) {
			continue
		}
		if b.allow != nil && b.allow(c, i) {
			continue
		}
		end := t.End
		// "etc" drags its period into the marked span.
		if strings.EqualFold(t.Text, "etc") && end < len(c.Text) && c.Text[end] == '.' {
			end++
		}
		out = append(out, c.Flag(t.Start, end, b.label, b.color))
	}
	return out
}

func (b wordBan) wordMatch(t *nlp.Token) bool {
	low := strings.ToLower(t.Text)
	for _, w := range b.words {
		if low == w {
			return true
		}
	}
	for _, l := range b.lemmas {
		if t.Lemma == l {
			return true
		}
	}
	return false
}

// phraseAt reports the word length of a banned phrase starting at
// token i, or 0.
func (b wordBan) phraseAt(c *Context, i int) int {
	for _, p := range b.phrases {
		j := i
		ok := true
		for _, w := range p {
			j = nextWordIndex(c.Ann, j)
			if j < 0 || !strings.EqualFold(c.Ann.Tokens[j].Text, w) {
				ok = false
				break
			}
			j++
		}
		if ok {
			return len(p)
		}
	}
	return 0
}

// Token walking helpers. Word positions skip punctuation tokens.

func nextWordIndex(a *nlp.Annotation, from int) int {
	for i := from; i < len(a.Tokens); i++ {
		if a.Tokens[i].POS != nlp.POSPunct {
			return i
		}
	}
	return -1
}

func prevWord(a *nlp.Annotation, i int) (*nlp.Token, bool) {
	return prevWordBefore(a, i, 1)
}

func prevWordBefore(a *nlp.Annotation, i, back int) (*nlp.Token, bool) {
	seen := 0
	for j := i - 1; j >= 0; j-- {
		if a.Tokens[j].POS == nlp.POSPunct {
			continue
		}
		seen++
		if seen == back {
			return &a.Tokens[j], true
		}
	}
	return nil, false
}

// skipWords returns the token index just past n word tokens starting
// at i.
func skipWords(a *nlp.Annotation, i, n int) int {
	seen := 0
	for j := i; j < len(a.Tokens); j++ {
		if a.Tokens[j].POS == nlp.POSPunct {
			continue
		}
		seen++
		if seen == n {
			return j + 1
		}
	}
	return len(a.Tokens)
}

// phraseEnd returns the byte end of the nth word token from i.
func phraseEnd(a *nlp.Annotation, i, n int) int {
	j := skipWords(a, i, n) - 1
	return a.Tokens[j].End
}
