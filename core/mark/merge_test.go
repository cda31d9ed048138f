package mark

import "testing"

func TestNewRejectsNegativeLength(t *testing.T) {
	if _, err := New(5, 3); err == nil {
		t.Error("start > end must be rejected")
	}
	if _, err := New(-1, 3); err == nil {
		t.Error("negative start must be rejected")
	}
	m, err := New(3, 3)
	if err != nil {
		t.Fatalf("zero-width mark rejected: %v", err)
	}
	if !m.IsAnchor() {
		t.Error("zero-width mark should report IsAnchor")
	}
}

func TestMergeOverlapping(t *testing.T) {
	a := &Mark{Start: 0, End: 10, Note: "first", Label: true, Color: ColorSoft}
	b := &Mark{Start: 5, End: 15, Color: ColorDelete, Strike: true}

	got := Merge([]*Mark{a, b})
	if len(got) != 1 {
		t.Fatalf("merged = %d marks, want 1", len(got))
	}
	m := got[0]
	if m.Start != 0 || m.End != 15 {
		t.Errorf("span = [%d,%d), want [0,15)", m.Start, m.End)
	}
	if m.Note != "first" || !m.Label {
		t.Errorf("note/label = %q/%v, want labeling side preserved", m.Note, m.Label)
	}
	if !m.Strike {
		t.Error("strike must be OR'd")
	}
	if m.Color != ColorSoft {
		t.Errorf("color = %q, color fills only when unset", m.Color)
	}
}

func TestMergeTouchingSpansDoNotCombine(t *testing.T) {
	a := &Mark{Start: 0, End: 5, Note: "a"}
	b := &Mark{Start: 5, End: 10, Note: "b"}

	got := Merge([]*Mark{a, b})
	if len(got) != 2 {
		t.Fatalf("merged = %d marks, want 2 (touching spans must stay apart)", len(got))
	}
}

func TestMergeAnchorAtSpanStartDoesNotCombine(t *testing.T) {
	anchor := &Mark{Start: 5, End: 5, Note: "anchor"}
	body := &Mark{Start: 5, End: 9, Note: "body"}

	got := Merge([]*Mark{anchor, body})
	if len(got) != 2 {
		t.Fatalf("merged = %d marks, want 2 (anchor at span start must stay apart)", len(got))
	}
}

func TestMergeAnchorAtSpanEndDoesNotCombine(t *testing.T) {
	body := &Mark{Start: 0, End: 5, Note: "body"}
	anchor := &Mark{Start: 5, End: 5, Note: "anchor"}

	got := Merge([]*Mark{body, anchor})
	if len(got) != 2 {
		t.Fatalf("merged = %d marks, want 2 (anchor at span end must stay apart)", len(got))
	}
}

func TestMergeAnchorInsideSpanCombines(t *testing.T) {
	anchor := &Mark{Start: 5, End: 5, Note: "anchor", Label: true}
	body := &Mark{Start: 4, End: 6, Color: ColorSoft}

	got := Merge([]*Mark{anchor, body})
	if len(got) != 1 {
		t.Fatalf("merged = %d marks, want 1 (interior anchor must combine)", len(got))
	}
	m := got[0]
	if m.Start != 4 || m.End != 6 {
		t.Errorf("span = [%d,%d), want [4,6)", m.Start, m.End)
	}
	if m.Note != "anchor" || !m.Label {
		t.Error("labeling anchor must contribute its note")
	}
}

func TestMergeCoincidentAnchorsCombine(t *testing.T) {
	a := &Mark{Start: 7, End: 7, Note: "one", Label: true}
	b := &Mark{Start: 7, End: 7, Note: "two"}

	got := Merge([]*Mark{a, b})
	if len(got) != 1 {
		t.Fatalf("merged = %d marks, want 1", len(got))
	}
	if got[0].Note != "one" {
		t.Errorf("note = %q, want the labeling side's note", got[0].Note)
	}
}

func TestMergeDistinctAnchorsStayApart(t *testing.T) {
	got := Merge([]*Mark{
		{Start: 3, End: 3, Note: "a"},
		{Start: 8, End: 8, Note: "b"},
	})
	if len(got) != 2 {
		t.Fatalf("merged = %d marks, want 2", len(got))
	}
}

func TestMergeStableOrder(t *testing.T) {
	got := Merge([]*Mark{
		{Start: 20, End: 25, Note: "late"},
		{Start: 0, End: 5, Note: "early"},
		{Start: 10, End: 12, Note: "middle"},
	})
	if len(got) != 3 {
		t.Fatalf("merged = %d marks, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].Start {
			t.Errorf("output not ordered: %v before %v", got[i-1], got[i])
		}
	}
}

func TestMergeChainOfOverlaps(t *testing.T) {
	got := Merge([]*Mark{
		{Start: 0, End: 4, Note: "a", Label: true},
		{Start: 3, End: 8},
		{Start: 7, End: 12, Strike: true, Color: ColorDelete},
	})
	if len(got) != 1 {
		t.Fatalf("merged = %d marks, want 1", len(got))
	}
	m := got[0]
	if m.Start != 0 || m.End != 12 || m.Note != "a" || !m.Strike || m.Color != ColorDelete {
		t.Errorf("merged mark = %+v", m)
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
}
