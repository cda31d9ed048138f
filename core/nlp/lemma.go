package nlp

import "strings"

// lemma.go - Rule-based English lemmatizer.

// irregularLemmas maps inflected forms that suffix stripping gets wrong.
var irregularLemmas = map[string]string{
	"is": "be", "are": "be", "was": "be", "were": "be", "been": "be",
	"being": "be", "am": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"goes": "go", "went": "go", "gone": "go",
	"says": "say", "said": "say",
	"makes": "make", "made": "make",
	"gets": "get", "got": "get", "gotten": "get",
	"saw": "see", "seen": "see", "sees": "see",
	"wrote": "write", "written": "write", "writes": "write",
	"took": "take", "taken": "take", "takes": "take",
	"gave": "give", "given": "give", "gives": "give",
	"came": "come", "comes": "come",
	"became": "become", "becomes": "become",
	"felt": "feel", "feels": "feel",
	"thought": "think", "thinks": "think",
	"knew": "know", "known": "know", "knows": "know",
	"found": "find", "finds": "find",
	"showed": "show", "shown": "show", "shows": "show",
	"uses": "use", "used": "use", "using": "use",
	"children": "child", "men": "man", "women": "woman",
	"people": "person", "lives": "life", "leaves": "leaf",
	"themes": "theme", "analyses": "analysis", "theses": "thesis",
	"metaphors": "metaphor", "similes": "simile", "images": "image",
	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
}

// Lemma returns the lowercased dictionary form of a word using an
// irregular table plus conservative suffix rules. Unknown forms fall
// back to the lowercased input, which the detectors treat as a literal.
func Lemma(word string) string {
	w := lowerASCII(word)
	if l, ok := irregularLemmas[w]; ok {
		return l
	}
	if len(w) < 4 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "xes") || strings.HasSuffix(w, "ches") || strings.HasSuffix(w, "shes") || strings.HasSuffix(w, "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss") || strings.HasSuffix(w, "us") || strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		stem := w[:len(w)-3]
		return undouble(stem)
	case strings.HasSuffix(w, "ied"):
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		stem := w[:len(w)-2]
		return undouble(stem)
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// undouble collapses a doubled final consonant left by -ed/-ing
// stripping ("running" -> "run") while leaving legitimate doubles
// ("fall", "miss") alone via a short whitelist of endings.
func undouble(stem string) string {
	n := len(stem)
	if n < 3 {
		return stem
	}
	last := stem[n-1]
	if last != stem[n-2] {
		return stem
	}
	switch last {
	case 'l', 's', 'z', 'f':
		return stem
	}
	return stem[:n-1]
}
