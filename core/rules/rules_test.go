package rules

import (
	"testing"

	"github.com/vysti/marker/core/devices"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/span"
	"github.com/vysti/marker/core/state"
	"github.com/vysti/marker/internal/config"
)

func annotate(t *testing.T, text string) *nlp.Annotation {
	t.Helper()
	ann, err := nlp.NewHeuristic().Annotate(text)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	ann.Sentences = span.FixSentences(text, ann.Sentences)
	return ann
}

func testContext(t *testing.T, text string, role Role) *Context {
	t.Helper()
	return testContextCfg(t, text, role, config.Default())
}

func testContextCfg(t *testing.T, text string, role Role, cfg *config.Config) *Context {
	t.Helper()
	return NewContext(text, annotate(t, text), role, state.New(), cfg, devices.Default())
}

// notes collects the Note strings of marks, in order.
func notes(marks []*mark.Mark) []string {
	out := make([]string, 0, len(marks))
	for _, m := range marks {
		out = append(out, m.Note)
	}
	return out
}

func hasNote(marks []*mark.Mark, label string) bool {
	for _, m := range marks {
		if m.Note == label {
			return true
		}
	}
	return false
}

func findNote(marks []*mark.Mark, label string) *mark.Mark {
	for _, m := range marks {
		if m.Note == label {
			return m
		}
	}
	return nil
}

func TestRegistryFiltersByRoleAndToggle(t *testing.T) {
	reg := NewRegistry()
	cfg := config.Default()
	cfg.Rules["first_person"] = false
	ctx := testContextCfg(t, "I think the story shows cruelty to everyone.", RoleBody, cfg)
	marks := reg.Run(ctx)
	for _, m := range marks {
		if m.Note == "No 'I', 'we', 'us', 'our' or 'you' in academic writing" {
			t.Error("disabled detector still produced a mark")
		}
	}
	// The same text still trips enabled lexical rules.
	if !hasNote(marks, "Avoid using the words 'human', 'people', 'everyone', or 'individual'") {
		t.Errorf("expected everyone flag, got %v", notes(marks))
	}
}

func TestDetectorAppliesTo(t *testing.T) {
	all := Detector{}
	if !all.appliesTo(RoleBody) || !all.appliesTo(RoleIntro) || !all.appliesTo(RoleConclusion) {
		t.Error("empty role list must cover all content roles")
	}
	if all.appliesTo(RoleTitle) || all.appliesTo(RoleHeader) {
		t.Error("empty role list must not cover title or header")
	}
	scoped := Detector{Roles: []Role{RoleIntro}}
	if scoped.appliesTo(RoleBody) || !scoped.appliesTo(RoleIntro) {
		t.Error("scoped detector role filter wrong")
	}
}

func TestFlagFirstOccurrenceOnly(t *testing.T) {
	ctx := testContext(t, "Plain text.", RoleBody)
	m1 := ctx.Flag(0, 5, "Some label", mark.ColorSoft)
	m2 := ctx.Flag(6, 10, "Some label", mark.ColorSoft)
	if !m1.Label {
		t.Error("first occurrence must carry the callout")
	}
	if m2.Label {
		t.Error("second occurrence must be highlight-only")
	}
	if m2.Note != "Some label" {
		t.Error("later occurrences keep the note for counting")
	}
}

func TestSuppressedInsideQuoteAndTitle(t *testing.T) {
	cfg := config.Default()
	cfg.Works = []config.Work{{Author: "Shirley Jackson", Title: "The Lottery"}}
	text := `In "The Lottery" the narrator says, "I am afraid of it."`
	ctx := testContextCfg(t, text, RoleBody, cfg)
	// Inside the quoted title.
	if !ctx.Suppressed(4) {
		t.Error("position inside quoted work title must be suppressed")
	}
	// Inside the dialogue quote.
	qi := len(text) - 5
	if !ctx.Suppressed(qi) {
		t.Error("position inside dialogue quote must be suppressed")
	}
	if ctx.Suppressed(20) {
		t.Error("unquoted position must not be suppressed")
	}
}
