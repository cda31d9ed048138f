package rules

import (
	"strconv"
	"strings"

	"github.com/vysti/marker/core/cite"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/span"
)

// mechanics.go - Sentence-mechanics detectors: contractions, articles,
// numerals, uncountable nouns, conjunction overuse, vague pronouns,
// weak verbs, and weak paragraph transitions.

func mechanicsDetectors() []Detector {
	return []Detector{
		{ID: "contractions", Run: runContractions},
		{ID: "article", Run: runArticle},
		{ID: "numbers", Run: runNumbers},
		{ID: "uncountable", Run: runUncountable},
		{ID: "and_overuse", Run: runAndOveruse},
		{ID: "this_start", Run: runThisStart},
		{ID: "pronoun_clarity", Roles: []Role{RoleBody}, Run: runPronounClarity},
		{ID: "weak_verbs", Run: runWeakVerbs},
		{ID: "weak_transitions", Roles: []Role{RoleBody}, Run: runWeakTransitions},
	}
}

// contractionSuffixes end a contracted token unambiguously.
var contractionSuffixes = []string{"n't", "'re", "'ll", "'ve", "'m", "'d"}

// contractionWhole covers 's contractions that are not possessives.
var contractionWhole = map[string]bool{
	"it's": true, "that's": true, "there's": true, "here's": true,
	"he's": true, "she's": true, "what's": true, "who's": true,
	"let's": true, "where's": true, "how's": true,
}

func runContractions(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, t := range c.Ann.Tokens {
		if t.POS == nlp.POSPunct || !strings.Contains(t.Text, "'") {
			continue
		}
		if c.Suppressed(t.Start) {
			continue
		}
		low := strings.ToLower(t.Text)
		hit := contractionWhole[low]
		if !hit {
			for _, suf := range contractionSuffixes {
				if strings.HasSuffix(low, suf) {
					hit = true
					break
				}
			}
		}
		if hit {
			out = append(out, c.Flag(t.Start, t.End, rulebook.LabelContractions, mark.ColorSoft))
		}
	}
	return out
}

// vowelSoundExceptions start with a vowel letter but a consonant
// sound, or the reverse.
var consonantSoundPrefixes = []string{"uni", "use", "usu", "eu", "one", "once"}
var vowelSoundHWords = []string{"hour", "honest", "heir", "honor", "honour"}

func vowelSound(w string) bool {
	low := strings.ToLower(w)
	for _, p := range vowelSoundHWords {
		if strings.HasPrefix(low, p) {
			return true
		}
	}
	for _, p := range consonantSoundPrefixes {
		if strings.HasPrefix(low, p) {
			return false
		}
	}
	if low == "" {
		return false
	}
	switch low[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func runArticle(c *Context) []*mark.Mark {
	var out []*mark.Mark
	toks := c.Ann.Tokens
	for i, t := range toks {
		low := strings.ToLower(t.Text)
		if low != "a" && low != "an" {
			continue
		}
		if c.Suppressed(t.Start) {
			continue
		}
		j := nextWordIndex(c.Ann, i+1)
		if j < 0 {
			continue
		}
		next := toks[j]
		wrong := (low == "a" && vowelSound(next.Text)) ||
			(low == "an" && !vowelSound(next.Text))
		if wrong {
			out = append(out, c.Flag(t.Start, next.End, rulebook.LabelArticle, mark.ColorSoft))
		}
	}
	return out
}

func runNumbers(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, t := range c.Ann.Tokens {
		if t.POS != nlp.POSNum {
			continue
		}
		n, err := strconv.Atoi(t.Text)
		if err != nil || n < 1 || n > 10 {
			continue
		}
		if c.Suppressed(t.Start) || cite.Covers(c.Text, t.Start) {
			continue
		}
		out = append(out, c.Flag(t.Start, t.End, rulebook.LabelNumbers, mark.ColorSoft))
	}
	return out
}

// uncountablePlurals are pluralized mass nouns.
var uncountablePlurals = map[string]bool{
	"evidences": true, "informations": true, "imageries": true,
	"researches": true, "knowledges": true, "advices": true,
	"feedbacks": true, "homeworks": true, "symbolisms": true,
	"dictions": true, "vocabularies": true,
}

func runUncountable(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, t := range c.Ann.Tokens {
		if c.Suppressed(t.Start) {
			continue
		}
		if uncountablePlurals[strings.ToLower(t.Text)] {
			out = append(out, c.Flag(t.Start, t.End, rulebook.LabelUncountable, mark.ColorSoft))
		}
	}
	return out
}

func runAndOveruse(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, s := range c.Ann.Sentences {
		seen := 0
		for _, t := range c.Ann.Tokens {
			if t.Start < s.Start || t.End > s.End {
				continue
			}
			if !strings.EqualFold(t.Text, "and") {
				continue
			}
			seen++
			if seen >= 2 && !c.Suppressed(t.Start) {
				out = append(out, c.Flag(t.Start, t.End, rulebook.LabelAndOveruse, mark.ColorSuggestion))
			}
		}
	}
	return out
}

// runThisStart highlights sentences that open "This <verb>", a vague
// pronoun pattern. Highlight-only: the occurrence counts, the callout
// comes from the paragraph-initial pronoun detector.
func runThisStart(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, s := range c.Ann.Sentences {
		i := firstWordIn(c.Ann, s)
		if i < 0 || !strings.EqualFold(c.Ann.Tokens[i].Text, "this") {
			continue
		}
		j := nextWordIndex(c.Ann, i+1)
		if j < 0 {
			continue
		}
		pos := c.Ann.Tokens[j].POS
		if pos == nlp.POSVerb || pos == nlp.POSAux {
			t := c.Ann.Tokens[i]
			out = append(out, c.Highlight(t.Start, t.End, rulebook.LabelPronounClear, mark.ColorSuggestion))
		}
	}
	return out
}

// vagueOpeners are pronouns that cannot open a paragraph clearly.
var vagueOpeners = map[string]bool{
	"he": true, "she": true, "they": true, "it": true,
	"this": true, "these": true, "those": true,
}

func runPronounClarity(c *Context) []*mark.Mark {
	if c.Bridge || len(c.Ann.Sentences) == 0 {
		return nil
	}
	s := c.Ann.Sentences[0]
	i := firstWordIn(c.Ann, s)
	if i < 0 {
		return nil
	}
	if !vagueOpeners[strings.ToLower(c.Ann.Tokens[i].Text)] {
		return nil
	}
	return []*mark.Mark{c.FlagAnchor(s.Start, rulebook.LabelPronounClear)}
}

// weakVerbLemmas are placeholder verbs that flatten analysis.
var weakVerbLemmas = map[string]bool{
	"be": true, "have": true, "do": true, "get": true, "go": true,
}

func runWeakVerbs(c *Context) []*mark.Mark {
	var out []*mark.Mark
	for _, t := range c.Ann.Tokens {
		if t.POS != nlp.POSVerb && t.POS != nlp.POSAux {
			continue
		}
		if !weakVerbLemmas[t.Lemma] || strings.Contains(t.Text, "'") {
			continue
		}
		if c.Suppressed(t.Start) {
			continue
		}
		out = append(out, c.Flag(t.Start, t.End, rulebook.LabelWeakVerbs, mark.ColorSuggestion))
	}
	return out
}

// weakTransitions are list-like paragraph openers that substitute for
// a boundary statement.
var weakTransitions = [][]string{
	{"secondly"}, {"thirdly"}, {"firstly"}, {"lastly"}, {"also"},
	{"another"}, {"next"}, {"furthermore"}, {"moreover"}, {"additionally"},
	{"in", "addition"}, {"to", "begin", "with"}, {"first", "of", "all"},
	{"on", "the", "other", "hand"},
}

// runWeakTransitions checks that a body paragraph opens by connecting
// to the previous body paragraph: either the opener is not a listed
// weak transition, and the topic sentence shares at least one content
// lemma with the previous body paragraph's final sentence.
func runWeakTransitions(c *Context) []*mark.Mark {
	if c.Bridge || c.BodyIndex <= 1 {
		return nil
	}
	topic := span.TopicSentenceSpan(c.Text, c.Ann.Sentences)

	// Listed weak opener: mark the phrase itself.
	i := firstWordIn(c.Ann, topic)
	if i >= 0 {
		for _, phrase := range weakTransitions {
			if n := matchPhraseAt(c.Ann, i, phrase); n > 0 {
				end := phraseEnd(c.Ann, i, n)
				return []*mark.Mark{c.Flag(c.Ann.Tokens[i].Start, end, rulebook.LabelBoundary, mark.ColorStructural)}
			}
		}
	}

	if !c.State.HasPrevBodyFinal() {
		return nil
	}
	var lemmas []string
	for _, t := range c.Ann.Tokens {
		if t.Start >= topic.Start && t.End <= topic.End && t.IsContent() {
			lemmas = append(lemmas, t.Lemma)
		}
	}
	if c.State.PrevBodyFinalShares(lemmas) {
		return nil
	}
	return []*mark.Mark{c.FlagAnchor(topic.Start, rulebook.LabelBoundary)}
}

// firstWordIn returns the index of the first word token inside a
// sentence span, or -1.
func firstWordIn(a *nlp.Annotation, s nlp.Span) int {
	for i, t := range a.Tokens {
		if t.Start >= s.Start && t.End <= s.End && t.POS != nlp.POSPunct {
			return i
		}
	}
	return -1
}

// matchPhraseAt reports the word length of phrase if it starts at
// token i, or 0.
func matchPhraseAt(a *nlp.Annotation, i int, phrase []string) int {
	j := i
	for _, w := range phrase {
		j = nextWordIndex(a, j)
		if j < 0 || !strings.EqualFold(a.Tokens[j].Text, w) {
			return 0
		}
		j++
	}
	return len(phrase)
}
