// Package nlp defines the linguistic annotation surface the engine
// consumes: tokens with character-exact offsets, lemmas, coarse
// part-of-speech tags, and sentence boundaries. The engine treats the
// provider as a black box behind the Annotator interface; the package
// also ships a heuristic English provider good enough for rule
// detection when no external tagger is wired in.
package nlp

// POS tags use the coarse universal tag set.
const (
	POSNoun  = "NOUN"
	POSVerb  = "VERB"
	POSAux   = "AUX"
	POSAdj   = "ADJ"
	POSAdv   = "ADV"
	POSPron  = "PRON"
	POSDet   = "DET"
	POSAdp   = "ADP"
	POSCconj = "CCONJ"
	POSSconj = "SCONJ"
	POSNum   = "NUM"
	POSPunct = "PUNCT"
	POSPart  = "PART"
)

// Token is a word, number, or punctuation unit with byte offsets into
// the annotated text.
type Token struct {
	// Text is the token text as it appears in the input.
	Text string `json:"text"`

	// Start is the UTF-8 byte offset where the token starts.
	Start int `json:"start"`

	// End is the UTF-8 byte offset where the token ends (exclusive).
	End int `json:"end"`

	// Lemma is the dictionary form, lowercased.
	Lemma string `json:"lemma,omitempty"`

	// POS is the coarse part-of-speech tag.
	POS string `json:"pos,omitempty"`

	// DepHead is the index of this token's dependency head, or -1.
	DepHead int `json:"dep_head,omitempty"`
}

// IsWord returns true if this token is not punctuation.
func (t *Token) IsWord() bool {
	return t.POS != POSPunct
}

// IsContent returns true for open-class tokens that carry meaning
// (nouns, verbs, adjectives, adverbs).
func (t *Token) IsContent() bool {
	switch t.POS {
	case POSNoun, POSVerb, POSAdj, POSAdv:
		return true
	}
	return false
}

// Span is a half-open byte range [Start, End) into the annotated text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Annotation is the provider output for one paragraph of text.
type Annotation struct {
	// Text is the input text the offsets refer to.
	Text string `json:"text"`

	// Tokens contains the token sequence in document order.
	Tokens []Token `json:"tokens"`

	// Sentences contains sentence spans in document order.
	Sentences []Span `json:"sentences"`
}

// TokensIn returns the indices of tokens whose span lies inside [start, end).
func (a *Annotation) TokensIn(start, end int) []int {
	var idx []int
	for i, t := range a.Tokens {
		if t.Start >= start && t.End <= end {
			idx = append(idx, i)
		}
	}
	return idx
}

// SentenceAt returns the sentence span containing byte position pos,
// and false if pos falls outside every sentence.
func (a *Annotation) SentenceAt(pos int) (Span, bool) {
	for _, s := range a.Sentences {
		if pos >= s.Start && pos < s.End {
			return s, true
		}
	}
	// A zero-width anchor at end of text belongs to the last sentence.
	if n := len(a.Sentences); n > 0 && pos == a.Sentences[n-1].End {
		return a.Sentences[n-1], true
	}
	return Span{}, false
}

// Annotator produces linguistic annotations for paragraph text.
// Implementations must return character-exact offsets into the input.
type Annotator interface {
	Annotate(text string) (*Annotation, error)
}
