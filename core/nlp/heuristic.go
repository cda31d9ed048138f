package nlp

// heuristic.go - Built-in rule-based English annotator
// Note: Types and the Annotator interface are in nlp.go

// Heuristic is a dependency-free English annotator. Tokenization and
// sentence segmentation are exact; lemmas and POS tags come from word
// lists and suffix rules, which is sufficient for the detectors' word
// and phrase matching.
type Heuristic struct{}

// NewHeuristic returns the built-in annotator.
func NewHeuristic() *Heuristic { return &Heuristic{} }

// Annotate implements Annotator.
func (h *Heuristic) Annotate(text string) (*Annotation, error) {
	ann := &Annotation{Text: text}
	ann.Tokens = tokenize(text)
	for i := range ann.Tokens {
		t := &ann.Tokens[i]
		t.Lemma = Lemma(t.Text)
		t.POS = tagPOS(t)
		t.DepHead = -1
	}
	ann.Sentences = sentences(text)
	return ann, nil
}

// tokenize breaks text into word, number, and punctuation tokens.
// Apostrophes stay inside words so contractions survive as one token.
func tokenize(text string) []Token {
	var tokens []Token
	var tokenStart int
	var tokenText []byte
	var wordToken bool

	finishToken := func(end int) {
		if len(tokenText) > 0 {
			tok := Token{
				Start: tokenStart,
				End:   end,
				Text:  string(tokenText),
			}
			if !wordToken {
				tok.POS = POSPunct
			}
			tokens = append(tokens, tok)
			tokenText = nil
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			finishToken(i)
		case isWordByte(c):
			if len(tokenText) > 0 && !wordToken {
				finishToken(i)
			}
			if len(tokenText) == 0 {
				tokenStart = i
				wordToken = true
			}
			tokenText = append(tokenText, c)
		default:
			// Punctuation: one token per byte, except apostrophes
			// glued into a surrounding word.
			if c == '\'' && len(tokenText) > 0 && wordToken && i+1 < len(text) && isWordByte(text[i+1]) {
				tokenText = append(tokenText, c)
				continue
			}
			finishToken(i)
			tokenStart = i
			wordToken = false
			tokenText = append(tokenText, c)
			finishToken(i + 1)
		}
	}
	finishToken(len(text))
	return tokens
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c >= 0x80
}

// abbreviations that end with a period but do not end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "st": true,
	"vs": true, "etc": true, "e.g": true, "i.e": true, "jr": true,
	"sr": true, "prof": true,
}

// sentences segments text into sentence spans. A sentence ends at
// `.`, `!`, or `?` followed by whitespace or end of text, unless the
// period closes a known abbreviation. Quote-aware fixups happen later
// in the span package.
func sentences(text string) []Span {
	var spans []Span
	start := 0
	// Skip leading whitespace of each sentence.
	skipSpace := func(i int) int {
		for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n' || text[i] == '\r') {
			i++
		}
		return i
	}
	start = skipSpace(0)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if c == '.' && isAbbreviation(text, i) {
			continue
		}
		// Swallow a run of terminators ("?!", "...").
		end := i + 1
		for end < len(text) && (text[end] == '.' || text[end] == '!' || text[end] == '?') {
			end++
		}
		// A closing quote directly after the terminator stays with the
		// sentence ("...itself." ends after the quote character).
		if end < len(text) && text[end] == '"' && (end+1 >= len(text) || isSpaceByte(text[end+1])) {
			end++
		}
		if end < len(text) && !isSpaceByte(text[end]) {
			i = end - 1
			continue
		}
		if start < end {
			spans = append(spans, Span{Start: start, End: end})
		}
		start = skipSpace(end)
		i = end - 1
	}
	if start < len(text) {
		end := len(text)
		for end > start && isSpaceByte(text[end-1]) {
			end--
		}
		if start < end {
			spans = append(spans, Span{Start: start, End: end})
		}
	}
	return spans
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isAbbreviation reports whether the period at index i closes a known
// abbreviation or a single capital initial ("F. Scott").
func isAbbreviation(text string, i int) bool {
	j := i
	for j > 0 && isWordByte(text[j-1]) {
		j--
	}
	word := text[j:i]
	if len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z' {
		return true
	}
	return abbreviations[lowerASCII(word)]
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
