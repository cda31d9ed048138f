// Package mark defines the atomic annotation unit and the
// deterministic merge algebra that folds the detectors' candidate
// marks into a non-overlapping, ordered list.
package mark

import (
	"github.com/vysti/marker/core/errors"
)

// Color represents a highlight category. The zero value means no
// highlight (label or anchor only).
type Color string

// Highlight category constants.
const (
	// ColorNone is the absence of a highlight.
	ColorNone Color = ""
	// ColorSoft flags wording the student should reconsider.
	ColorSoft Color = "soft"
	// ColorDelete flags text that should be removed; the only color
	// that pairs with strikethrough.
	ColorDelete Color = "delete"
	// ColorSuggestion flags optional improvements.
	ColorSuggestion Color = "suggestion"
	// ColorStructural flags structural problems (thesis, topic
	// sentences, paragraph organization).
	ColorStructural Color = "structural"
	// ColorPraise flags writing worth keeping.
	ColorPraise Color = "praise"
)

// validColors is the set of valid highlight categories.
var validColors = map[Color]bool{
	ColorNone:       true,
	ColorSoft:       true,
	ColorDelete:     true,
	ColorSuggestion: true,
	ColorStructural: true,
	ColorPraise:     true,
}

// IsValid returns true if the color is a known highlight category.
func (c Color) IsValid() bool {
	return validColors[c]
}

// Mark is a candidate or finalized annotation over paragraph text.
// Offsets are bytes into the paragraph's flattened text. Start == End
// denotes a zero-width anchor used to attach a label at a point
// without highlighting anything.
type Mark struct {
	// Start is the byte offset where the marked span begins.
	Start int `json:"start"`

	// End is the byte offset where the marked span ends (exclusive).
	End int `json:"end"`

	// Note is the rule message. Empty means visual-only: no label and
	// no summary entry.
	Note string `json:"note,omitempty"`

	// Label requests a visible comment callout for this occurrence.
	Label bool `json:"label,omitempty"`

	// Color is the highlight category.
	Color Color `json:"color,omitempty"`

	// Strike requests strikethrough; only honored with ColorDelete.
	Strike bool `json:"strike,omitempty"`

	// Praise renders the label in the affirmative color instead of the
	// default alert color.
	Praise bool `json:"praise,omitempty"`
}

// New constructs a mark, rejecting negative-length spans so they can
// never reach the merge step.
func New(start, end int) (*Mark, error) {
	if start < 0 {
		return nil, errors.NewValidation("start", "offset must not be negative")
	}
	if start > end {
		return nil, errors.NewValidation("span", "start must not exceed end")
	}
	return &Mark{Start: start, End: end}, nil
}

// IsAnchor reports whether the mark is zero width.
func (m *Mark) IsAnchor() bool {
	return m.Start == m.End
}

// Len returns the marked span length in bytes.
func (m *Mark) Len() int {
	return m.End - m.Start
}
