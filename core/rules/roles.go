package rules

import (
	"strings"

	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/internal/config"
)

// roles.go - Paragraph role classification.
//
// Role assignment is a pure function of (index, intro index, total
// count, assignment mode). Title-like and header-like paragraphs are
// detected separately by text shape; everything from the introduction
// down classifies positionally.

// Role is a paragraph's structural role within the essay.
type Role string

// Paragraph role constants.
const (
	RoleTitle      Role = "title"
	RoleHeader     Role = "header"
	RoleIntro      Role = "intro"
	RoleBody       Role = "body"
	RoleConclusion Role = "conclusion"
	RoleOther      Role = "other"
)

// Classify assigns a role from position. introIdx is the index of the
// detected introduction; total is the paragraph count. Paragraphs
// before the introduction classify as other (the engine tags title and
// header paragraphs by shape before calling this). In the
// single-paragraph mode only the intro-index paragraph is a body.
func Classify(index, introIdx, total int, cfg *config.Config) Role {
	if cfg.SingleParagraph() {
		if index == introIdx {
			return RoleBody
		}
		return RoleOther
	}
	switch {
	case index < introIdx:
		return RoleOther
	case index == introIdx:
		return RoleIntro
	case index == total-1:
		if cfg.NoConclusion() {
			return RoleBody
		}
		// A two-paragraph essay has no conclusion to find.
		if total <= introIdx+2 {
			return RoleBody
		}
		return RoleConclusion
	default:
		return RoleBody
	}
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

// IsHeader reports whether paragraph text looks like an MLA-style
// heading block: a few short lines carrying names, a course, or a
// date, with no sentence structure.
func IsHeader(text string) bool {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return false
	}
	headerish := 0
	for _, l := range lines {
		if headerLine(l) {
			headerish++
		}
	}
	if len(lines) >= 2 {
		return headerish*2 >= len(lines)
	}
	// A single line must look strongly like a date or course label.
	return hasMonth(lines[0]) && hasDigit(lines[0])
}

func headerLine(l string) bool {
	words := strings.Fields(l)
	if len(words) == 0 || len(words) > 6 {
		return false
	}
	if strings.ContainsAny(l, ".!?") && !hasMonth(l) {
		return false
	}
	return true
}

func hasMonth(l string) bool {
	low := strings.ToLower(l)
	for _, m := range monthNames {
		if strings.Contains(low, m) {
			return true
		}
	}
	return false
}

func hasDigit(l string) bool {
	for i := 0; i < len(l); i++ {
		if l[i] >= '0' && l[i] <= '9' {
			return true
		}
	}
	return false
}

// IsTitleLine reports whether paragraph text looks like an essay
// title: a single short line, mostly capitalized, without sentence
// punctuation.
func IsTitleLine(text string) bool {
	lines := nonEmptyLines(text)
	if len(lines) != 1 {
		return false
	}
	l := lines[0]
	words := strings.Fields(l)
	if len(words) == 0 || len(words) > 12 {
		return false
	}
	if strings.HasSuffix(l, ".") || strings.Contains(l, ". ") {
		return false
	}
	upper := 0
	for _, w := range words {
		if w[0] >= 'A' && w[0] <= 'Z' {
			upper++
		}
	}
	return upper*2 >= len(words)
}

// IsBridge reports whether a paragraph is a one-line transitional
// bridge: a single sentence whose text ends in a comma or colon.
func IsBridge(text string, sents []nlp.Span) bool {
	if len(sents) > 1 {
		return false
	}
	t := strings.TrimRight(text, " \t\n\r")
	if t == "" {
		return false
	}
	c := t[len(t)-1]
	return c == ',' || c == ':'
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(l); s != "" {
			out = append(out, s)
		}
	}
	return out
}
