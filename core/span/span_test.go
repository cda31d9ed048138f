package span

import (
	"testing"

	"github.com/vysti/marker/core/nlp"
)

func TestQuoteSpans(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Range
	}{
		{
			"single quotation",
			`She said "hello there" and left.`,
			[]Range{{10, 20}},
		},
		{
			"two quotations",
			`"first" and "second"`,
			[]Range{{1, 5}, {13, 18}},
		},
		{
			"unmatched trailing opener ignored",
			`He began "and never closed`,
			nil,
		},
		{
			"no quotes",
			"plain text",
			nil,
		},
		{
			"empty quotation yields no span",
			`a "" b`,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuoteSpans(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("QuoteSpans = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRangeContainsEndInclusive(t *testing.T) {
	r := Range{Start: 3, End: 7}
	if !r.Contains(3) || !r.Contains(7) {
		t.Error("range must include both endpoints")
	}
	if r.Contains(2) || r.Contains(8) {
		t.Error("range must exclude positions outside endpoints")
	}
}

func TestFixSentencesMergesQuoteSplit(t *testing.T) {
	text := `"What is love?", she asked. Nobody answered.`
	ann, err := nlp.NewHeuristic().Annotate(text)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	fixed := FixSentences(text, ann.Sentences)
	if len(fixed) != 2 {
		t.Fatalf("sentences = %d (%v), want 2", len(fixed), fixed)
	}
	if fixed[0].Start != 0 || text[fixed[0].End-1] != '.' {
		t.Errorf("first sentence = %v", fixed[0])
	}
}

func TestFixSentencesMergesLowercaseContinuation(t *testing.T) {
	// A terminator glued to a lowercase continuation is a false split.
	text := "He paused...then spoke. Done."
	sents := []nlp.Span{{Start: 0, End: 12}, {Start: 12, End: 23}, {Start: 24, End: 29}}
	fixed := FixSentences(text, sents)
	if len(fixed) != 2 {
		t.Fatalf("sentences = %v, want 2", fixed)
	}
	if fixed[0].End != 23 {
		t.Errorf("merged sentence = %v, want end 23", fixed[0])
	}
}

func TestFixSentencesSplitsRunOn(t *testing.T) {
	text := "The story ends badly.The town moves on."
	sents := []nlp.Span{{Start: 0, End: len(text)}}
	fixed := FixSentences(text, sents)
	if len(fixed) != 2 {
		t.Fatalf("sentences = %v, want 2", fixed)
	}
	if fixed[0].End != 21 || fixed[1].Start != 21 {
		t.Errorf("split = %v, want boundary at 21", fixed)
	}
}

func TestTopicSentenceSpan(t *testing.T) {
	text := `Through satire, as in "Why not?", the author mocks the town. More follows.`
	ann, _ := nlp.NewHeuristic().Annotate(text)
	got := TopicSentenceSpan(text, ann.Sentences)
	// The "?" inside the quotation must not end the topic sentence.
	if text[got.End-1] != '.' || got.End != 60 {
		t.Errorf("topic sentence = %q", text[got.Start:got.End])
	}
}

func TestTopicSentenceSpanFallback(t *testing.T) {
	text := "a bridge line with no terminator"
	got := TopicSentenceSpan(text, []nlp.Span{{Start: 0, End: len(text)}})
	if got.Start != 0 || got.End != len(text) {
		t.Errorf("fallback span = %v", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("The Lottery!"); got != "thelottery" {
		t.Errorf("Normalize = %q", got)
	}
	if got := Normalize("  A&P  "); got != "ap" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio("abc", "abc"); got != 1 {
		t.Errorf("identical ratio = %v", got)
	}
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("disjoint ratio = %v", got)
	}
	// "abcd" vs "bcde": matching block "bcd" of length 3.
	if got := Ratio("abcd", "bcde"); got != 0.75 {
		t.Errorf("ratio = %v, want 0.75", got)
	}
}

func TestTitleSimilarityThreshold(t *testing.T) {
	if TitleSimilarity("The Lottery", "the lottery") < 1 {
		t.Error("case and spacing must not matter")
	}
	if TitleSimilarity("The Lottery", "The Lotery") < SimilarityThreshold {
		t.Error("near-miss spelling should clear the threshold")
	}
	if TitleSimilarity("The Lottery", "A Rose for Emily") >= SimilarityThreshold {
		t.Error("unrelated titles should not clear the threshold")
	}
}

func TestFindTitleExact(t *testing.T) {
	text := `In "The Lottery" by Shirley Jackson, tradition turns deadly.`
	ann, _ := nlp.NewHeuristic().Annotate(text)
	m, ok := FindTitle(text, ann.Tokens, "The Lottery")
	if !ok || !m.Exact {
		t.Fatalf("FindTitle = %+v, %v; want exact match", m, ok)
	}
	if text[m.Span.Start:m.Span.End] != "The Lottery" {
		t.Errorf("matched %q", text[m.Span.Start:m.Span.End])
	}
}

func TestFindTitleFuzzy(t *testing.T) {
	text := `In The Lotery by Shirley Jackson, tradition turns deadly.`
	ann, _ := nlp.NewHeuristic().Annotate(text)
	m, ok := FindTitle(text, ann.Tokens, "The Lottery")
	if !ok {
		t.Fatal("expected a fuzzy match")
	}
	if m.Exact {
		t.Error("misspelled title must not report exact")
	}
}

func TestFindTitleRejectsShortAndUnrelated(t *testing.T) {
	text := "the story shows a small town"
	ann, _ := nlp.NewHeuristic().Annotate(text)
	if _, ok := FindTitle(text, ann.Tokens, "The Lottery"); ok {
		t.Error("lowercase unrelated text must not match")
	}
}

func TestFindAuthorFull(t *testing.T) {
	text := "In the story, Shirley Jackson builds dread."
	ann, _ := nlp.NewHeuristic().Annotate(text)
	m, ok := FindAuthor(text, ann.Tokens, "Shirley Jackson")
	if !ok || !m.Full {
		t.Fatalf("FindAuthor = %+v, %v; want full match", m, ok)
	}
	if text[m.Span.Start:m.Span.End] != "Shirley Jackson" {
		t.Errorf("matched %q", text[m.Span.Start:m.Span.End])
	}
}

func TestFindAuthorInitial(t *testing.T) {
	text := "F. Scott Fitzgerald narrates from a distance."
	ann, _ := nlp.NewHeuristic().Annotate(text)
	m, ok := FindAuthor(text, ann.Tokens, "Francis Scott Fitzgerald")
	if !ok || !m.Full {
		t.Fatalf("FindAuthor = %+v, %v; initials should satisfy given names", m, ok)
	}
}

func TestFindAuthorSurnameOnly(t *testing.T) {
	text := "Jackson builds dread from the first line."
	ann, _ := nlp.NewHeuristic().Annotate(text)
	m, ok := FindAuthor(text, ann.Tokens, "Shirley Jackson")
	if !ok {
		t.Fatal("surname alone should still locate the author")
	}
	if m.Full {
		t.Error("surname-only match must not report full")
	}
}
