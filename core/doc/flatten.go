package doc

// flatten.go - Paragraph flattening utilities
// Note: Type definitions are in types.go

// EmphasisSpan is a byte range of flattened text that was italic in the source.
type EmphasisSpan struct {
	Start int
	End   int
}

// Flatten concatenates the paragraph's original (non-generated) fragment text
// and returns it together with the italic ranges, expressed as byte offsets
// into the flattened text. Fragments inserted by an earlier annotation pass
// are skipped, so flattening an annotated paragraph recovers the student's
// original text.
func (p *Paragraph) Flatten() (string, []EmphasisSpan) {
	var out []byte
	var spans []EmphasisSpan
	for _, f := range p.Fragments {
		if f.Generated {
			continue
		}
		start := len(out)
		out = append(out, f.Text...)
		if f.Italic && len(f.Text) > 0 {
			if n := len(spans); n > 0 && spans[n-1].End == start {
				// Adjacent italic fragments collapse into one span.
				spans[n-1].End = len(out)
			} else {
				spans = append(spans, EmphasisSpan{Start: start, End: len(out)})
			}
		}
	}
	return string(out), spans
}

// Text concatenates all fragment text, generated runs included.
func (p *Paragraph) Text() string {
	var out []byte
	for _, f := range p.Fragments {
		out = append(out, f.Text...)
	}
	return string(out)
}

// SetFragments replaces the paragraph's fragment sequence.
func (p *Paragraph) SetFragments(frags []*Fragment) {
	p.Fragments = frags
}

// ItalicAt reports whether the byte at pos falls inside any emphasis span.
func ItalicAt(pos int, spans []EmphasisSpan) bool {
	for _, s := range spans {
		if pos >= s.Start && pos < s.End {
			return true
		}
	}
	return false
}
