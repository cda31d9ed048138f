package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresetDefaults(t *testing.T) {
	c := Default()
	if c.Mode != ModeTextualAnalysis {
		t.Errorf("mode = %q", c.Mode)
	}
	if !c.Enabled("first_person") || !c.Enabled("thesis") {
		t.Error("textual analysis should enable everything")
	}
	if c.NoConclusion() || c.SingleParagraph() {
		t.Error("textual analysis expects a full essay")
	}
	if c.IntroSentences() != 3 {
		t.Errorf("intro sentences = %d, want 3", c.IntroSentences())
	}
}

func TestPresetReaderResponse(t *testing.T) {
	c := Preset(ModeReaderResponse)
	if c.Enabled("first_person") {
		t.Error("reader response allows first person")
	}
	if !c.Enabled("contractions") {
		t.Error("reader response still bans contractions")
	}
}

func TestPresetFoundationNoConclusion(t *testing.T) {
	for _, m := range []Mode{ModeFoundation4, ModeFoundation5} {
		if !Preset(m).NoConclusion() {
			t.Errorf("%s should expect no conclusion", m)
		}
	}
	if Preset(ModeFoundation6).NoConclusion() {
		t.Error("foundation_6 expects a conclusion")
	}
}

func TestPresetPeelParagraph(t *testing.T) {
	c := Preset(ModePeelParagraph)
	if !c.SingleParagraph() {
		t.Error("peel_paragraph grades one paragraph")
	}
	if c.Enabled("thesis") || c.Enabled("alignment") {
		t.Error("peel_paragraph disables thesis rules")
	}
	if c.Enabled("development") {
		t.Error("peel_paragraph skips the undeveloped-paragraph rule")
	}
	if !c.Enabled("body_evidence") {
		t.Error("peel_paragraph still requires evidence")
	}
}

func TestPresetDevelopmentExemptions(t *testing.T) {
	c := Preset(ModeFoundation4)
	if c.Enabled("development") || c.Enabled("body_evidence") {
		t.Error("foundation_4 requires only a topic sentence, not development or evidence")
	}
	for _, m := range []Mode{ModeImageAnalysis, ModeArgumentation, ModeFoundation1, ModeFoundation2, ModeFoundation3} {
		if Preset(m).Enabled("body_evidence") {
			t.Errorf("%s should not require body evidence", m)
		}
	}
	c = Preset(ModeFoundation5)
	if !c.Enabled("development") || !c.Enabled("body_evidence") {
		t.Error("foundation_5 grades full body paragraphs")
	}
}

func TestPresetTwoSentenceIntroModes(t *testing.T) {
	if Preset(ModeAnalyticFrame).IntroSentences() != 2 {
		t.Error("analytic_frame accepts a two-sentence introduction")
	}
	if Preset(ModeTextualAnalysis).IntroSentences() != 3 {
		t.Error("textual_analysis requires three intro sentences")
	}
}

func TestPresetUnknownModeFallsBack(t *testing.T) {
	c := Preset(Mode("bogus"))
	if c.Mode != ModeTextualAnalysis {
		t.Errorf("mode = %q, want fallback", c.Mode)
	}
}

func TestLoadOverridesPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	content := `mode: reader_response
student: true
works:
  - author: Shirley Jackson
    title: The Lottery
rules:
  first_person: true
  weak_verbs: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Mode != ModeReaderResponse || !c.Student {
		t.Errorf("config = %+v", c)
	}
	if len(c.Works) != 1 || c.Works[0].Title != "The Lottery" {
		t.Errorf("works = %+v", c.Works)
	}
	// Explicit file toggle beats the preset's disable.
	if !c.Enabled("first_person") {
		t.Error("file override should re-enable first_person")
	}
	if c.Enabled("weak_verbs") {
		t.Error("file override should disable weak_verbs")
	}
	// Preset disables survive for untouched rules.
	if c.Enabled("reader") {
		t.Error("preset disable for reader should survive")
	}
}

func TestLoadRejectsTooManyWorks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	content := `works:
  - {author: A, title: T1}
  - {author: B, title: T2}
  - {author: C, title: T3}
  - {author: D, title: T4}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("four works should be rejected")
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte("mode: bogus\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unknown mode should be rejected")
	}
}
