package rules

import (
	"testing"

	"github.com/vysti/marker/core/rulebook"
)

const introLeadIn = "Shirley Jackson's story unsettles readers from its first page. " +
	"A small town meets for an annual drawing. "

func TestThesisWellFormed(t *testing.T) {
	text := introLeadIn +
		"Through dark symbolism and vivid imagery, Shirley Jackson reveals the cruelty of tradition."
	ctx := testContext(t, text, RoleIntro)
	marks := runThesis(ctx)
	if len(marks) != 0 {
		t.Fatalf("well-formed thesis flagged: %v", notes(marks))
	}
	topics := ctx.State.ThesisTopics()
	if len(topics) != 2 || topics[0] != "symbolism" || topics[1] != "imagery" {
		t.Errorf("thesis topics = %v", topics)
	}
	if !ctx.State.HasThesis() {
		t.Error("thesis text must be recorded")
	}
}

func TestThesisQuestionIsOpen(t *testing.T) {
	text := introLeadIn + "Why does the town keep its cruel tradition alive?"
	marks := runThesis(testContext(t, text, RoleIntro))
	if !hasNote(marks, rulebook.LabelClosedThesis) {
		t.Errorf("question thesis must flag closed-thesis, got %v", notes(marks))
	}
}

func TestThesisNoDevicesIsOpen(t *testing.T) {
	text := introLeadIn + "The story teaches an important lesson about small towns."
	ctx := testContext(t, text, RoleIntro)
	marks := runThesis(ctx)
	if !hasNote(marks, rulebook.LabelClosedThesis) {
		t.Errorf("deviceless thesis must flag closed-thesis, got %v", notes(marks))
	}
	if len(ctx.State.ThesisTopics()) != 0 {
		t.Error("no topics should be recorded")
	}
}

func TestThesisUnspecificTopics(t *testing.T) {
	text := introLeadIn +
		"Shirley Jackson reveals the cruelty of tradition through symbolism and imagery."
	marks := runThesis(testContext(t, text, RoleIntro))
	if !hasNote(marks, rulebook.LabelSpecificTopics) {
		t.Errorf("bare devices must flag specificity, got %v", notes(marks))
	}
	// Devices follow the argumentative verb here, so organization
	// flags too.
	if !hasNote(marks, rulebook.LabelThesisOrg) {
		t.Errorf("devices after the verb must flag organization, got %v", notes(marks))
	}
}

func TestThesisSpecificViaPreposition(t *testing.T) {
	text := introLeadIn +
		"Through the symbolism of the black box and vivid imagery, Jackson critiques blind ritual."
	marks := runThesis(testContext(t, text, RoleIntro))
	if hasNote(marks, rulebook.LabelSpecificTopics) {
		t.Errorf("qualified devices flagged: %v", notes(marks))
	}
}

func TestThesisEmbeddedDeviceNotAToplevelTopic(t *testing.T) {
	text := introLeadIn +
		"Through biting irony rooted in calm diction, Shirley Jackson critiques blind ritual."
	ctx := testContext(t, text, RoleIntro)
	runThesis(ctx)
	topics := ctx.State.ThesisTopics()
	if len(topics) != 1 || topics[0] != "irony" {
		t.Errorf("topics = %v, want only irony at top level", topics)
	}
	if !ctx.State.ThesisHas("diction") {
		t.Error("embedded device must still register in the full set")
	}
}

func TestThesisConnectorSeparatesTopics(t *testing.T) {
	text := introLeadIn +
		"Through biting satire as well as vivid imagery, Shirley Jackson critiques blind ritual."
	ctx := testContext(t, text, RoleIntro)
	runThesis(ctx)
	topics := ctx.State.ThesisTopics()
	if len(topics) != 2 || topics[0] != "satire" || topics[1] != "imagery" {
		t.Errorf("topics = %v, want satire and imagery", topics)
	}
}
