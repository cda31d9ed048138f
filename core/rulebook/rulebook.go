// Package rulebook holds the rule message table: the label each
// detector emits plus the long-form explanation shown in the summary
// report. The engine needs only label -> explanation lookup and
// membership tests; the table ships embedded and can be overridden
// from a YAML file.
package rulebook

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vysti/marker/core/errors"
)

//go:embed rules.yaml
var defaultYAML []byte

// Book maps rule labels to their long-form explanations.
type Book struct {
	entries map[string]string
}

// Default returns the embedded rule message table.
func Default() *Book {
	b, err := parse(defaultYAML)
	if err != nil {
		// The embedded table is validated by tests; a parse failure
		// here is a build defect.
		panic(err)
	}
	return b
}

// Load reads a rule message table from a YAML file. Entries in the
// file override the embedded defaults; labels absent from the file
// keep their embedded explanations.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	override, err := parse(data)
	if err != nil {
		return nil, err
	}
	b := Default()
	for label, text := range override.entries {
		b.entries[label] = text
	}
	return b, nil
}

func parse(data []byte) (*Book, error) {
	var raw struct {
		Rules map[string]string `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParse("YAML", "", err.Error())
	}
	return &Book{entries: raw.Rules}, nil
}

// Explanation returns the long-form explanation for a label, and false
// when the label is unknown.
func (b *Book) Explanation(label string) (string, bool) {
	e, ok := b.entries[label]
	return e, ok
}

// Has reports whether the label exists in the table.
func (b *Book) Has(label string) bool {
	_, ok := b.entries[label]
	return ok
}

// Len returns the number of entries.
func (b *Book) Len() int {
	return len(b.entries)
}
