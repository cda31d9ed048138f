package render

import (
	"strings"

	"github.com/google/uuid"
)

// anchors.go - Bookmark names for issue labels. Word bookmark names
// must start with a letter, carry no spaces or punctuation, and stay
// within 40 characters, so long labels truncate. Two distinct labels
// can truncate to the same name; the second one gets a short random
// suffix so every issue row stays individually addressable.

const (
	anchorPrefix = "vysti_issue_"
	anchorMaxLen = 40
)

// Anchors allocates one stable bookmark name per label for a document
// run.
type Anchors struct {
	byLabel map[string]string
	taken   map[string]bool
}

// NewAnchors returns an empty allocator.
func NewAnchors() *Anchors {
	return &Anchors{
		byLabel: make(map[string]string),
		taken:   make(map[string]bool),
	}
}

// For returns the bookmark name for a label, allocating it on first
// use. The same label always maps to the same name within a run.
func (a *Anchors) For(label string) string {
	if name, ok := a.byLabel[label]; ok {
		return name
	}
	name := sanitize(label)
	if a.taken[name] {
		// Truncation collision with a different label.
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
		name = name[:len(name)-len(suffix)-1] + "_" + suffix
	}
	a.byLabel[label] = name
	a.taken[name] = true
	return name
}

// sanitize turns a label into a candidate bookmark name.
func sanitize(label string) string {
	var b strings.Builder
	lastUnderscore := true
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			b.WriteByte(c)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	base := strings.Trim(b.String(), "_")
	if base == "" {
		base = "generic"
	}
	if max := anchorMaxLen - len(anchorPrefix); len(base) > max {
		base = base[:max]
	}
	return anchorPrefix + base
}
