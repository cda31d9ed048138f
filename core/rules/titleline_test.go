package rules

import (
	"testing"

	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/internal/config"
)

func TestTitleLineCapitalization(t *testing.T) {
	text := "Tradition and cruelty in a Small Town"
	marks := runTitleLine(testContext(t, text, RoleTitle))
	if len(marks) != 1 || marks[0].Note != rulebook.LabelTitleCapitalize {
		t.Fatalf("marks = %v", notes(marks))
	}
	if got := text[marks[0].Start:marks[0].End]; got != "cruelty" {
		t.Errorf("span = %q", got)
	}
}

func TestTitleLineSmallWordsStayLower(t *testing.T) {
	text := "The Price of Tradition in a Small Town"
	if marks := runTitleLine(testContext(t, text, RoleTitle)); len(marks) != 0 {
		t.Errorf("properly cased title flagged: %v", notes(marks))
	}
}

func TestTitleLineReusesWorkTitle(t *testing.T) {
	cfg := config.Default()
	cfg.Works = []config.Work{{Title: "The Lottery"}}
	marks := runTitleLine(testContextCfg(t, "The Lottery", RoleTitle, cfg))
	if !hasNote(marks, rulebook.LabelTitleFormat) {
		t.Errorf("verbatim work title must flag, got %v", notes(marks))
	}
}

func TestMinorWorkNeedsQuotes(t *testing.T) {
	cfg := config.Default()
	cfg.Works = []config.Work{{Title: "The Lottery"}}
	text := "Cruelty and Custom in The Lottery"
	marks := runTitleWorks(testContextCfg(t, text, RoleTitle, cfg))
	if len(marks) != 1 || marks[0].Note != rulebook.LabelMinorWorkQuotes {
		t.Fatalf("marks = %v", notes(marks))
	}
	if got := text[marks[0].Start:marks[0].End]; got != "The Lottery" {
		t.Errorf("span = %q", got)
	}
}

func TestMinorWorkQuotedAccepted(t *testing.T) {
	cfg := config.Default()
	cfg.Works = []config.Work{{Title: "The Lottery"}}
	text := `Cruelty and Custom in "The Lottery"`
	if marks := runTitleWorks(testContextCfg(t, text, RoleTitle, cfg)); len(marks) != 0 {
		t.Errorf("quoted minor work flagged: %v", notes(marks))
	}
}

func TestMajorWorkNeedsItalics(t *testing.T) {
	cfg := config.Default()
	cfg.Works = []config.Work{{Title: "The Great Gatsby", Major: true}}
	text := "Wealth and Illusion in The Great Gatsby"
	ctx := testContextCfg(t, text, RoleTitle, cfg)
	marks := runTitleWorks(ctx)
	if len(marks) != 1 || marks[0].Note != rulebook.LabelMajorWorkItalic {
		t.Fatalf("marks = %v", notes(marks))
	}

	// With the span italicized the flag clears.
	ctx.Emphasis = []nlp.Span{{Start: marks[0].Start, End: marks[0].End}}
	if marks := runTitleWorks(ctx); len(marks) != 0 {
		t.Errorf("italicized major work flagged: %v", notes(marks))
	}
}
