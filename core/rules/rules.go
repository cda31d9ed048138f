// Package rules implements the rule detector battery. Each detector is
// a tagged record with an ID, the paragraph roles it applies to, and a
// pure run function over the paragraph context. Detectors never call
// each other; coordination happens only through the shared document
// state. Individual detectors toggle on and off through the run
// configuration without touching engine internals.
package rules

import (
	"github.com/vysti/marker/core/devices"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/span"
	"github.com/vysti/marker/core/state"
	"github.com/vysti/marker/internal/config"
)

// Detector is one independently testable rule.
type Detector struct {
	// ID keys the detector in configuration toggles.
	ID string

	// Roles lists the paragraph roles the detector applies to. Empty
	// means all content roles (intro, body, conclusion).
	Roles []Role

	// Run produces candidate marks for one paragraph.
	Run func(*Context) []*mark.Mark
}

// appliesTo reports whether the detector runs for a role.
func (d *Detector) appliesTo(role Role) bool {
	if len(d.Roles) == 0 {
		return role == RoleIntro || role == RoleBody || role == RoleConclusion
	}
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Context carries everything a detector may read for one paragraph.
type Context struct {
	// Text is the paragraph's flattened text.
	Text string

	// Ann is the linguistic annotation with corrected sentence spans.
	Ann *nlp.Annotation

	// Role is the paragraph's classified role.
	Role Role

	// Index is the paragraph's index within the document.
	Index int

	// BodyIndex is the 1-based body paragraph number, 0 otherwise.
	BodyIndex int

	// Bridge marks a one-line transitional paragraph.
	Bridge bool

	// Last marks the final content paragraph of the document.
	Last bool

	// Emphasis lists the italic ranges of the source paragraph.
	Emphasis []nlp.Span

	// Quotes caches the quotation interiors of Text.
	Quotes []span.Range

	// TitleSpans caches ranges matching a configured work title.
	TitleSpans []span.Range

	// State is the shared document state.
	State *state.DocState

	// Config is the run configuration.
	Config *config.Config

	// Devices is the canonical device table.
	Devices *devices.Table
}

// NewContext builds a detector context, computing the quotation and
// work-title caches.
func NewContext(text string, ann *nlp.Annotation, role Role, st *state.DocState, cfg *config.Config, tbl *devices.Table) *Context {
	ctx := &Context{
		Text:    text,
		Ann:     ann,
		Role:    role,
		State:   st,
		Config:  cfg,
		Devices: tbl,
		Quotes:  span.QuoteSpans(text),
	}
	for _, w := range cfg.Works {
		if w.Title == "" {
			continue
		}
		if m, ok := span.FindTitle(text, ann.Tokens, w.Title); ok {
			ctx.TitleSpans = append(ctx.TitleSpans, span.Range{Start: m.Span.Start, End: m.Span.End - 1})
		}
	}
	return ctx
}

// InQuote reports whether pos falls inside a quotation interior.
func (c *Context) InQuote(pos int) bool {
	return span.InAny(pos, c.Quotes)
}

// InWorkTitle reports whether pos falls inside a configured work
// title occurrence.
func (c *Context) InWorkTitle(pos int) bool {
	return span.InAny(pos, c.TitleSpans)
}

// Suppressed reports whether a candidate position is exempt from
// lexical rules: inside a quotation or inside a work title.
func (c *Context) Suppressed(pos int) bool {
	return c.InQuote(pos) || c.InWorkTitle(pos)
}

// Flag builds a labeled mark. The first occurrence of a label in the
// document gets the visible callout; later occurrences keep the note
// (so they still count) but render highlight-only.
func (c *Context) Flag(start, end int, label string, color mark.Color) *mark.Mark {
	return &mark.Mark{
		Start: start,
		End:   end,
		Note:  label,
		Label: c.State.UseLabel(label),
		Color: color,
	}
}

// FlagAnchor builds a labeled zero-width mark at pos.
func (c *Context) FlagAnchor(pos int, label string) *mark.Mark {
	return c.Flag(pos, pos, label, mark.ColorNone)
}

// Highlight builds a visual-only mark carrying a note for counting but
// never a callout.
func (c *Context) Highlight(start, end int, label string, color mark.Color) *mark.Mark {
	return &mark.Mark{Start: start, End: end, Note: label, Color: color}
}

// Registry is an ordered detector collection.
type Registry struct {
	dets []Detector
}

// NewRegistry returns the full default battery in run order.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Add(lexicalDetectors()...)
	r.Add(mechanicsDetectors()...)
	r.Add(quoteDetectors()...)
	r.Add(thesisDetector())
	r.Add(alignmentDetector())
	r.Add(evidenceDetectors()...)
	r.Add(developmentDetectors()...)
	r.Add(titleAuthorDetector())
	r.Add(titleLineDetectors()...)
	return r
}

// Add appends detectors to the registry.
func (r *Registry) Add(dets ...Detector) {
	r.dets = append(r.dets, dets...)
}

// Detectors returns the registered detectors in order.
func (r *Registry) Detectors() []Detector {
	out := make([]Detector, len(r.dets))
	copy(out, r.dets)
	return out
}

// Run executes every enabled detector applicable to the context's
// role and returns the concatenated candidate marks.
func (r *Registry) Run(ctx *Context) []*mark.Mark {
	var out []*mark.Mark
	for i := range r.dets {
		d := &r.dets[i]
		if !ctx.Config.Enabled(d.ID) || !d.appliesTo(ctx.Role) {
			continue
		}
		out = append(out, d.Run(ctx)...)
	}
	return out
}
