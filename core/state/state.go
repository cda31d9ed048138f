// Package state holds the document-scoped coordination state shared by
// the rule detectors across paragraphs of one run: thesis topics, body
// paragraph counting, bridge tracking, and the label-usage set that
// drives the first-occurrence-gets-a-callout policy. A DocState is
// created fresh per document run and never shared between runs, which
// keeps batch grading of many documents trivially parallel.
package state

import (
	"strings"

	"github.com/vysti/marker/core/summary"
)

// DocState is the per-document-run coordination state. Not safe for
// concurrent use; one run owns one DocState on one goroutine.
type DocState struct {
	// Summary collects per-label counts and example sentences.
	Summary *summary.Collector

	labelsUsed  []string
	labelsSet   map[string]bool
	thesisOrder []string
	thesisAll   map[string]bool
	thesisText  string
	bodyCount   int
	bridges     map[int]bool
	bridgeKeys  map[string]bool
	prevFinal   map[string]bool
}

// New returns a fresh DocState for one document run.
func New() *DocState {
	return &DocState{
		Summary:    summary.NewCollector(),
		labelsSet:  make(map[string]bool),
		thesisAll:  make(map[string]bool),
		bridges:    make(map[int]bool),
		bridgeKeys: make(map[string]bool),
	}
}

// UseLabel records that a label is being shown and reports whether
// this is its first visible occurrence in the document. The first
// occurrence gets the callout; later occurrences get highlight only.
func (s *DocState) UseLabel(label string) bool {
	if label == "" {
		return false
	}
	if s.labelsSet[label] {
		return false
	}
	s.labelsSet[label] = true
	s.labelsUsed = append(s.labelsUsed, label)
	return true
}

// LabelUsed reports whether a label has already received a callout.
func (s *DocState) LabelUsed(label string) bool {
	return s.labelsSet[label]
}

// LabelsUsed returns all labels shown so far, in first-use order.
func (s *DocState) LabelsUsed() []string {
	out := make([]string, len(s.labelsUsed))
	copy(out, s.labelsUsed)
	return out
}

// SetThesis stores the thesis analysis results: the ordered
// non-embedded device keys, the full device key set, and the thesis
// sentence text (lowercased for substring checks). Written once by the
// intro detector.
func (s *DocState) SetThesis(ordered []string, all []string, text string) {
	s.thesisOrder = append([]string(nil), ordered...)
	for _, k := range all {
		s.thesisAll[k] = true
	}
	s.thesisText = strings.ToLower(text)
}

// ThesisTopics returns the ordered non-embedded thesis device keys.
func (s *DocState) ThesisTopics() []string {
	out := make([]string, len(s.thesisOrder))
	copy(out, s.thesisOrder)
	return out
}

// ThesisTopicAt returns the expected device key for the 1-based body
// paragraph index, and false when the thesis has no topic at that
// position.
func (s *DocState) ThesisTopicAt(bodyIndex int) (string, bool) {
	i := bodyIndex - 1
	if i < 0 || i >= len(s.thesisOrder) {
		return "", false
	}
	return s.thesisOrder[i], true
}

// ThesisHas reports whether a device key appears anywhere in the
// thesis, embedded devices included.
func (s *DocState) ThesisHas(key string) bool {
	return s.thesisAll[key]
}

// ThesisMentions reports whether a raw word appears as a substring of
// the thesis sentence text.
func (s *DocState) ThesisMentions(word string) bool {
	if s.thesisText == "" || word == "" {
		return false
	}
	return strings.Contains(s.thesisText, strings.ToLower(word))
}

// HasThesis reports whether a thesis was recorded.
func (s *DocState) HasThesis() bool {
	return s.thesisText != ""
}

// NextBody increments the body paragraph counter and returns the new
// 1-based index. Bridge paragraphs and the conclusion do not call this.
func (s *DocState) NextBody() int {
	s.bodyCount++
	return s.bodyCount
}

// BodyCount returns the number of body paragraphs counted so far.
func (s *DocState) BodyCount() int {
	return s.bodyCount
}

// AddBridge records a one-line transitional paragraph by index, along
// with any device keys it introduces.
func (s *DocState) AddBridge(index int, keys []string) {
	s.bridges[index] = true
	for _, k := range keys {
		s.bridgeKeys[k] = true
	}
}

// IsBridge reports whether the paragraph at index was recorded as a
// bridge.
func (s *DocState) IsBridge(index int) bool {
	return s.bridges[index]
}

// BridgeIntroduced reports whether a device key was introduced by any
// bridge paragraph seen so far.
func (s *DocState) BridgeIntroduced(key string) bool {
	return s.bridgeKeys[key]
}

// SetPrevBodyFinal stores the content lemmas of the final sentence of
// the body paragraph just processed. The next body paragraph's opener
// is checked for overlap against this set.
func (s *DocState) SetPrevBodyFinal(lemmas []string) {
	s.prevFinal = make(map[string]bool, len(lemmas))
	for _, l := range lemmas {
		s.prevFinal[l] = true
	}
}

// HasPrevBodyFinal reports whether a previous body final sentence was
// recorded.
func (s *DocState) HasPrevBodyFinal() bool {
	return len(s.prevFinal) > 0
}

// PrevBodyFinalShares reports whether any of the given lemmas appears
// in the previous body paragraph's final sentence.
func (s *DocState) PrevBodyFinalShares(lemmas []string) bool {
	for _, l := range lemmas {
		if s.prevFinal[l] {
			return true
		}
	}
	return false
}
