// Package devices provides the canonical device/synonym table: the
// vocabulary of rhetorical techniques a thesis statement may be built
// on. Terms map to canonical topic keys; lookup tries the lemma first,
// then the literal word, and multi-word phrases win longest-first.
package devices

import (
	"bufio"
	_ "embed"
	"io"
	"sort"
	"strings"

	"github.com/vysti/marker/core/errors"
	"github.com/vysti/marker/core/nlp"
)

//go:embed devices.csv
var defaultCSV string

// Hit is one recognized device occurrence in a text.
type Hit struct {
	// Canonical is the canonical topic key.
	Canonical string

	// Raw is the matched surface text.
	Raw string

	// Start and End are byte offsets of the match, half open.
	Start int
	End   int

	// TokenIndex is the index of the first matched token.
	TokenIndex int
}

// Table maps device terms and synonyms to canonical topic keys.
type Table struct {
	words   map[string]string
	phrases []phrase
}

type phrase struct {
	words     []string
	canonical string
}

// Default returns the built-in device table.
func Default() *Table {
	t, err := Parse(strings.NewReader(defaultCSV))
	if err != nil {
		// The embedded table is validated by tests; a parse failure
		// here is a build defect.
		panic(err)
	}
	return t
}

// Parse reads a term,canonical table. Lines starting with '#' and
// blank lines are skipped. Multi-word terms become phrases matched
// longest-first.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{words: make(map[string]string)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		term, canonical, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, errors.NewParse("device table", "", "missing comma on line "+itoa(line))
		}
		term = strings.ToLower(strings.TrimSpace(term))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if term == "" || canonical == "" {
			return nil, errors.NewParse("device table", "", "empty term or key on line "+itoa(line))
		}
		if fields := strings.Fields(term); len(fields) > 1 {
			t.phrases = append(t.phrases, phrase{words: fields, canonical: canonical})
		} else {
			t.words[term] = canonical
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read device table")
	}
	// Longest phrases first so "rhetorical question" beats "question".
	for i := 1; i < len(t.phrases); i++ {
		for j := i; j > 0 && len(t.phrases[j].words) > len(t.phrases[j-1].words); j-- {
			t.phrases[j], t.phrases[j-1] = t.phrases[j-1], t.phrases[j]
		}
	}
	return t, nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

// Canonical resolves a single word to its canonical key, trying the
// lemma before the literal form.
func (t *Table) Canonical(word, lemma string) (string, bool) {
	if k, ok := t.words[strings.ToLower(lemma)]; ok && lemma != "" {
		return k, true
	}
	k, ok := t.words[strings.ToLower(word)]
	return k, ok
}

// Canonicals returns the sorted distinct canonical keys in the table.
func (t *Table) Canonicals() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, k := range t.words {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, p := range t.phrases {
		if !seen[p.canonical] {
			seen[p.canonical] = true
			keys = append(keys, p.canonical)
		}
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a canonical key exists in the table's value set.
func (t *Table) Has(key string) bool {
	for _, v := range t.words {
		if v == key {
			return true
		}
	}
	for _, p := range t.phrases {
		if p.canonical == key {
			return true
		}
	}
	return false
}

// Find scans annotated text for device occurrences. At each word
// token, multi-word phrases are tried longest-first; otherwise the
// single word resolves via lemma then literal. Matches do not overlap;
// the scan resumes after each hit.
func (t *Table) Find(text string, tokens []nlp.Token) []Hit {
	var hits []Hit
	// Word tokens only, preserving original indices.
	type wt struct {
		tok nlp.Token
		idx int
	}
	var words []wt
	for i, tok := range tokens {
		if tok.POS != nlp.POSPunct {
			words = append(words, wt{tok, i})
		}
	}
	for i := 0; i < len(words); i++ {
		matched := false
		for _, p := range t.phrases {
			n := len(p.words)
			if i+n > len(words) {
				continue
			}
			ok := true
			for j, w := range p.words {
				cand := words[i+j].tok
				if strings.ToLower(cand.Text) != w && cand.Lemma != w {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			start := words[i].tok.Start
			end := words[i+n-1].tok.End
			hits = append(hits, Hit{
				Canonical:  p.canonical,
				Raw:        text[start:end],
				Start:      start,
				End:        end,
				TokenIndex: words[i].idx,
			})
			i += n - 1
			matched = true
			break
		}
		if matched {
			continue
		}
		tok := words[i].tok
		if k, ok := t.Canonical(tok.Text, tok.Lemma); ok {
			hits = append(hits, Hit{
				Canonical:  k,
				Raw:        tok.Text,
				Start:      tok.Start,
				End:        tok.End,
				TokenIndex: words[i].idx,
			})
		}
	}
	return hits
}
