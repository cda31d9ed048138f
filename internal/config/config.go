// Package config defines the run configuration for the annotation
// engine: the assignment mode, the configured works under analysis,
// student mode, and per-rule enable toggles. Configurations come from
// named presets, a YAML file, or both (file over preset).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vysti/marker/core/errors"
)

// Mode names an assignment type. Modes are presets: they adjust
// paragraph role expectations and disable rule families that do not
// apply to the assignment.
type Mode string

// Assignment mode constants.
const (
	ModeTextualAnalysis      Mode = "textual_analysis"
	ModeIntertextualAnalysis Mode = "intertextual_analysis"
	ModeReaderResponse       Mode = "reader_response"
	ModeNoTitle              Mode = "no_title"
	ModeImageAnalysis        Mode = "image_analysis"
	ModeArgumentation        Mode = "argumentation"
	ModeAnalyticFrame        Mode = "analytic_frame"
	ModeFoundation1          Mode = "foundation_1"
	ModeFoundation2          Mode = "foundation_2"
	ModeFoundation3          Mode = "foundation_3"
	ModeFoundation4          Mode = "foundation_4"
	ModeFoundation5          Mode = "foundation_5"
	ModeFoundation6          Mode = "foundation_6"
	ModePeelParagraph        Mode = "peel_paragraph"
)

// validModes is the set of known assignment modes.
var validModes = map[Mode]bool{
	ModeTextualAnalysis:      true,
	ModeIntertextualAnalysis: true,
	ModeReaderResponse:       true,
	ModeNoTitle:              true,
	ModeImageAnalysis:        true,
	ModeArgumentation:        true,
	ModeAnalyticFrame:        true,
	ModeFoundation1:          true,
	ModeFoundation2:          true,
	ModeFoundation3:          true,
	ModeFoundation4:          true,
	ModeFoundation5:          true,
	ModeFoundation6:          true,
	ModePeelParagraph:        true,
}

// IsValid returns true if the mode is known.
func (m Mode) IsValid() bool {
	return validModes[m]
}

// MaxWorks is the maximum number of configured works per run.
const MaxWorks = 3

// Work identifies one text under analysis.
type Work struct {
	// Author is the author's full name as it should appear.
	Author string `yaml:"author"`

	// Title is the exact title of the work.
	Title string `yaml:"title"`

	// Major marks a major work (novel, play, film: italicized) as
	// opposed to a minor one (story, poem: quoted).
	Major bool `yaml:"major"`
}

// Config is the full run configuration.
type Config struct {
	// Mode is the assignment mode.
	Mode Mode `yaml:"mode"`

	// Works lists the configured texts, at most MaxWorks.
	Works []Work `yaml:"works"`

	// Student softens the output for self-review: suggestion-level
	// findings keep their gentler color instead of escalating.
	Student bool `yaml:"student"`

	// Rules maps detector IDs to explicit enable/disable overrides.
	// Detectors absent from the map use the mode's default.
	Rules map[string]bool `yaml:"rules"`
}

// Default returns the textual-analysis configuration.
func Default() *Config {
	return Preset(ModeTextualAnalysis)
}

// Preset returns the configuration for a named assignment mode.
// Unknown modes fall back to textual analysis.
func Preset(mode Mode) *Config {
	c := &Config{
		Mode:  mode,
		Rules: make(map[string]bool),
	}
	if !mode.IsValid() {
		c.Mode = ModeTextualAnalysis
		return c
	}
	for _, id := range modeDisables[mode] {
		c.Rules[id] = false
	}
	return c
}

// modeDisables lists the detector IDs each mode turns off. IDs match
// the detector registry.
var modeDisables = map[Mode][]string{
	ModeReaderResponse: {"first_person", "reader"},
	ModeNoTitle:        {"title_line"},
	ModeImageAnalysis:  {"title_author", "title_line", "quote_rules", "floating_quote", "long_quote", "cite_once", "evidence_process", "body_evidence"},
	ModeArgumentation:  {"thesis_devices", "alignment", "title_author", "body_evidence"},
	ModeAnalyticFrame:  {"title_line", "title_author", "development"},
	ModeFoundation1:    {"title_line", "title_author", "alignment", "development", "body_evidence", "weak_transitions"},
	ModeFoundation2:    {"title_line", "title_author", "alignment", "body_evidence", "weak_transitions"},
	ModeFoundation3:    {"title_line", "alignment", "body_evidence"},
	ModeFoundation4:    {"title_line", "development", "body_evidence"},
	ModeFoundation5:    {},
	ModeFoundation6:    {},
	ModePeelParagraph:  {"title_line", "title_author", "thesis", "thesis_devices", "alignment", "weak_transitions", "development"},
}

// Enabled reports whether a detector should run under this
// configuration. Detectors default to enabled.
func (c *Config) Enabled(id string) bool {
	if v, ok := c.Rules[id]; ok {
		return v
	}
	return true
}

// NoConclusion reports whether the mode expects no conclusion
// paragraph (the last paragraph is a regular body paragraph).
func (c *Config) NoConclusion() bool {
	return c.Mode == ModeFoundation4 || c.Mode == ModeFoundation5
}

// SingleParagraph reports whether the mode grades one standalone body
// paragraph rather than a full essay.
func (c *Config) SingleParagraph() bool {
	return c.Mode == ModePeelParagraph
}

// IntroSentences returns the expected minimum sentence count of the
// introduction. Most modes require three or more; the early
// scaffolding modes accept exactly two.
func (c *Config) IntroSentences() int {
	switch c.Mode {
	case ModeFoundation1, ModeAnalyticFrame:
		return 2
	}
	return 3
}

// Load reads a YAML configuration file. The file's mode selects the
// preset; its explicit rule toggles override the preset's.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParse("YAML", path, err.Error())
	}
	if raw.Mode == "" {
		raw.Mode = ModeTextualAnalysis
	}
	if !raw.Mode.IsValid() {
		return nil, errors.NewValidation("mode", "unknown assignment mode "+string(raw.Mode))
	}
	if len(raw.Works) > MaxWorks {
		return nil, errors.NewValidation("works", "at most 3 works may be configured")
	}
	c := Preset(raw.Mode)
	c.Works = raw.Works
	c.Student = raw.Student
	for id, v := range raw.Rules {
		c.Rules[id] = v
	}
	return c, nil
}
