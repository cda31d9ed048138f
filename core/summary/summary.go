// Package summary aggregates labeled marks into the end-of-document
// report: an occurrence count per rule label plus a capped,
// deduplicated set of example sentences.
package summary

import (
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

const (
	// MaxExamplesPerLabel caps stored example sentences per rule label.
	MaxExamplesPerLabel = 10

	// maxExampleLen caps the stored length of one example sentence.
	maxExampleLen = 240
)

// Collector accumulates per-label counts and examples over one
// document run.
type Collector struct {
	order    []string
	counts   map[string]int
	examples map[string][]string
	seen     map[[32]byte]bool

	// paraSeen dedupes occurrences within the current paragraph by
	// (note, start, end); reset by StartParagraph.
	paraSeen map[string]bool
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		counts:   make(map[string]int),
		examples: make(map[string][]string),
		seen:     make(map[[32]byte]bool),
		paraSeen: make(map[string]bool),
	}
}

// StartParagraph resets the per-paragraph occurrence dedup set.
func (c *Collector) StartParagraph() {
	c.paraSeen = make(map[string]bool)
}

// Record counts one occurrence of a label at (start, end) within the
// current paragraph. Duplicate (label, start, end) triples inside one
// paragraph count once. Returns true when the occurrence was counted.
func (c *Collector) Record(label string, start, end int) bool {
	if label == "" {
		return false
	}
	key := fmt.Sprintf("%s\x00%d\x00%d", label, start, end)
	if c.paraSeen[key] {
		return false
	}
	c.paraSeen[key] = true
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
	return true
}

// AddExample stores an example sentence for a label. The sentence is
// whitespace-normalized and length-capped; a (label, sentence) pair is
// stored at most once, and each label keeps at most
// MaxExamplesPerLabel examples.
func (c *Collector) AddExample(label, sentence string) {
	if label == "" {
		return
	}
	s := strings.Join(strings.Fields(sentence), " ")
	if s == "" {
		return
	}
	if len(s) > maxExampleLen {
		s = s[:maxExampleLen]
	}
	if len(c.examples[label]) >= MaxExamplesPerLabel {
		return
	}
	key := blake3.Sum256([]byte(label + "\x00" + s))
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.examples[label] = append(c.examples[label], s)
}

// Labels returns the labels in first-recorded order.
func (c *Collector) Labels() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Count returns the occurrence count for a label.
func (c *Collector) Count(label string) int {
	return c.counts[label]
}

// Examples returns the stored example sentences for a label.
func (c *Collector) Examples(label string) []string {
	ex := c.examples[label]
	out := make([]string, len(ex))
	copy(out, ex)
	return out
}

// Total returns the total recorded occurrence count.
func (c *Collector) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Report is the immutable result of a document run.
type Report struct {
	// Rows contains one row per rule label, in first-recorded order.
	Rows []Row `json:"rows"`
}

// Row is one report line.
type Row struct {
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	Examples []string `json:"examples,omitempty"`
}

// Report snapshots the collector into a Report.
func (c *Collector) Report() *Report {
	r := &Report{}
	for _, label := range c.order {
		r.Rows = append(r.Rows, Row{
			Label:    label,
			Count:    c.counts[label],
			Examples: c.Examples(label),
		})
	}
	return r
}
