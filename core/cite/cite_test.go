package cite

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		author int
		page   int
		ranged bool
	}{
		{"(Jackson 23)", 1, 23, false},
		{"(23)", 0, 23, false},
		{"(Fitzgerald 12-14)", 1, 12, true},
		{"(Le Guin 7)", 2, 7, false},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if len(c.Author) != tt.author || c.Page != tt.page {
			t.Errorf("Parse(%q) = %+v", tt.in, c)
		}
		if (c.PageEnd != nil) != tt.ranged {
			t.Errorf("Parse(%q) range = %v", tt.in, c.PageEnd)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{
		"(Jackson)",
		"(see above)",
		"no parens 23",
		"()",
	} {
		if Is(in) {
			t.Errorf("Is(%q) = true, want false", in)
		}
	}
}

func TestSpansAndCovers(t *testing.T) {
	text := `The crowd turns on her at the end (Jackson 28). Nobody objects (29).`
	spans := Spans(text)
	if len(spans) != 2 {
		t.Fatalf("spans = %v, want 2", spans)
	}
	if text[spans[0].Start:spans[0].End] != "(Jackson 28)" {
		t.Errorf("span 0 = %q", text[spans[0].Start:spans[0].End])
	}
	if !Covers(text, spans[0].Start+1) {
		t.Error("position inside citation should be covered")
	}
	if Covers(text, 0) {
		t.Error("position outside citation must not be covered")
	}
}

func TestSpansSkipNonCitations(t *testing.T) {
	text := "An aside (not a citation) and a real one (12)."
	spans := Spans(text)
	if len(spans) != 1 {
		t.Fatalf("spans = %v, want only the page citation", spans)
	}
}
