package doc

import "testing"

func TestFlattenPlain(t *testing.T) {
	p := &Paragraph{
		Fragments: []*Fragment{
			{Text: "The story "},
			{Text: "critiques gender roles."},
		},
	}

	text, spans := p.Flatten()
	if text != "The story critiques gender roles." {
		t.Errorf("text = %q", text)
	}
	if len(spans) != 0 {
		t.Errorf("spans = %v, want none", spans)
	}
}

func TestFlattenItalicRanges(t *testing.T) {
	p := &Paragraph{
		Fragments: []*Fragment{
			{Text: "In "},
			{Text: "The Lottery", Italic: true},
			{Text: ", Jackson builds dread."},
		},
	}

	text, spans := p.Flatten()
	if text != "In The Lottery, Jackson builds dread." {
		t.Errorf("text = %q", text)
	}
	if len(spans) != 1 {
		t.Fatalf("spans = %v, want 1", spans)
	}
	if spans[0].Start != 3 || spans[0].End != 14 {
		t.Errorf("span = %+v, want [3,14)", spans[0])
	}
	if !ItalicAt(3, spans) || !ItalicAt(13, spans) {
		t.Error("interior positions should be italic")
	}
	if ItalicAt(2, spans) || ItalicAt(14, spans) {
		t.Error("boundary positions outside the range should not be italic")
	}
}

func TestFlattenMergesAdjacentItalic(t *testing.T) {
	p := &Paragraph{
		Fragments: []*Fragment{
			{Text: "The ", Italic: true},
			{Text: "Great Gatsby", Italic: true},
		},
	}

	_, spans := p.Flatten()
	if len(spans) != 1 {
		t.Fatalf("spans = %v, want 1 merged span", spans)
	}
	if spans[0].Start != 0 || spans[0].End != 16 {
		t.Errorf("span = %+v, want [0,16)", spans[0])
	}
}

func TestFlattenSkipsGenerated(t *testing.T) {
	p := &Paragraph{
		Fragments: []*Fragment{
			{Text: "Original text."},
			{Text: " → No contractions in academic writing", Bold: true, Generated: true},
		},
	}

	text, _ := p.Flatten()
	if text != "Original text." {
		t.Errorf("text = %q, generated fragments must be excluded", text)
	}
	if p.Text() == text {
		t.Error("Text should include generated fragments")
	}
}
