// Package engine orchestrates one annotation run: paragraph role
// assignment, the detector battery, mark merging, summary aggregation,
// and fragment rendering back into the document. Paragraphs are
// processed in strict document order because the detectors coordinate
// through shared state (thesis topics, body counting, label usage).
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vysti/marker/core/devices"
	"github.com/vysti/marker/core/doc"
	"github.com/vysti/marker/core/errors"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/render"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/rules"
	"github.com/vysti/marker/core/span"
	"github.com/vysti/marker/core/state"
	"github.com/vysti/marker/core/summary"
	"github.com/vysti/marker/internal/config"
	"github.com/vysti/marker/internal/logging"
)

// Engine ties an annotation provider to the detector battery and the
// rule message table. One Engine serves many runs; per-run state lives
// in a fresh DocState each call.
type Engine struct {
	// Annotator provides linguistic annotations. Required.
	Annotator nlp.Annotator

	// Registry is the detector battery. Defaults to the full battery.
	Registry *rules.Registry

	// Devices is the canonical literary device table.
	Devices *devices.Table

	// Book is the rule message table for the summary report.
	Book *rulebook.Book
}

// New returns an engine over the given provider with the default
// battery, device table, and rule messages.
func New(annotator nlp.Annotator) *Engine {
	return &Engine{
		Annotator: annotator,
		Registry:  rules.NewRegistry(),
		Devices:   devices.Default(),
		Book:      rulebook.Default(),
	}
}

// roleInfo is the role plan for one paragraph of a run.
type roleInfo struct {
	role rules.Role
	text string
	emph []nlp.Span
}

// planRoles flattens every paragraph and assigns structural roles.
// Header and title paragraphs are tagged by shape from the top; the
// first paragraph that is neither becomes the introduction, and
// everything after it classifies positionally.
func planRoles(d *doc.Document, cfg *config.Config) ([]roleInfo, int) {
	infos := make([]roleInfo, len(d.Paragraphs))
	introIdx := -1
	for i, p := range d.Paragraphs {
		text, emph := p.Flatten()
		infos[i] = roleInfo{role: rules.RoleOther, text: text, emph: emphSpans(emph)}
		if trimmed(text) == "" {
			continue
		}
		if introIdx >= 0 {
			continue
		}
		switch {
		case rules.IsHeader(text):
			infos[i].role = rules.RoleHeader
		case rules.IsTitleLine(text):
			infos[i].role = rules.RoleTitle
		default:
			introIdx = i
		}
	}
	if introIdx < 0 {
		return infos, introIdx
	}
	for i := introIdx; i < len(infos); i++ {
		if trimmed(infos[i].text) == "" {
			continue
		}
		infos[i].role = rules.Classify(i, introIdx, len(infos), cfg)
	}
	return infos, introIdx
}

func emphSpans(spans []doc.EmphasisSpan) []nlp.Span {
	out := make([]nlp.Span, len(spans))
	for i, s := range spans {
		out[i] = nlp.Span{Start: s.Start, End: s.End}
	}
	return out
}

func trimmed(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r') {
		s = s[1:]
	}
	for len(s) > 0 {
		c := s[len(s)-1]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

// AnnotateParagraph runs the battery over one paragraph and returns
// the merged marks. It drives the same path as Run for a single
// paragraph; callers own the shared state.
func (e *Engine) AnnotateParagraph(text string, emphasis []nlp.Span, role rules.Role, st *state.DocState, cfg *config.Config) ([]*mark.Mark, error) {
	ctx, err := e.buildContext(text, role, st, cfg)
	if err != nil {
		return nil, err
	}
	ctx.Emphasis = emphasis
	return mark.Merge(e.Registry.Run(ctx)), nil
}

// buildContext annotates text and assembles a detector context.
func (e *Engine) buildContext(text string, role rules.Role, st *state.DocState, cfg *config.Config) (*rules.Context, error) {
	ann, err := e.Annotator.Annotate(text)
	if err != nil {
		return nil, err
	}
	ann.Sentences = span.FixSentences(text, ann.Sentences)
	return rules.NewContext(text, ann, role, st, cfg, e.Devices), nil
}

// Run annotates a whole document in place and returns the summary
// report. A provider failure on any paragraph aborts the run.
func (e *Engine) Run(ctx context.Context, d *doc.Document, cfg *config.Config) (*summary.Report, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	start := time.Now()
	logging.RunStart(runID, d.Title, len(d.Paragraphs), "mode", string(cfg.Mode))

	st := state.New()
	anchors := render.NewAnchors()
	infos, introIdx := planRoles(d, cfg)
	lastContent := lastContentIndex(infos)

	sawTitle := false
	totalMarks := 0
	for _, info := range infos {
		if info.role == rules.RoleTitle {
			sawTitle = true
		}
	}

	for i, p := range d.Paragraphs {
		info := infos[i]
		if info.role == rules.RoleOther || info.role == rules.RoleHeader {
			continue
		}
		rctx, err := e.buildContext(info.text, info.role, st, cfg)
		if err != nil {
			return nil, errors.NewAnnotate(i, err)
		}
		rctx.Index = i
		rctx.Emphasis = info.emph
		rctx.Last = i == lastContent

		var cands []*mark.Mark
		if info.role == rules.RoleBody {
			if rules.IsBridge(info.text, rctx.Ann.Sentences) {
				st.AddBridge(i, deviceKeys(e.Devices, info.text, rctx.Ann.Tokens))
				rctx.Bridge = true
			} else {
				rctx.BodyIndex = st.NextBody()
			}
		}
		if i == introIdx && !sawTitle && !cfg.SingleParagraph() && cfg.Enabled("title_line") {
			cands = append(cands, rctx.FlagAnchor(0, rulebook.LabelTitleFormat))
		}
		cands = append(cands, e.Registry.Run(rctx)...)
		merged := mark.Merge(cands)
		totalMarks += len(merged)
		logging.DebugContext(ctx, "paragraph_done",
			"paragraph", i, "role", string(info.role), "marks", len(merged))

		collect(st.Summary, rctx.Ann, merged)
		frags := render.Paragraph(info.text, info.emph, merged, anchors)
		if !cfg.Student && render.NeedsRewrite(merged) {
			frags = append(frags, render.RewriteMarker())
		}
		p.SetFragments(frags)

		if info.role == rules.RoleBody && !rctx.Bridge {
			st.SetPrevBodyFinal(finalSentenceLemmas(rctx.Ann))
		}
	}

	labels := st.LabelsUsed()
	if tbl := render.SummaryTable(labels, st.Summary, e.Book, anchors); tbl != nil {
		d.AddTable(tbl)
	}
	logging.RunFinish(runID, totalMarks, len(labels), time.Since(start))
	return st.Summary.Report(), nil
}

// collect records merged marks into the summary, pairing each labeled
// occurrence with its containing sentence as an example. Work-title
// italics findings skip the example step: the title is not a sentence
// worth quoting back.
func collect(col *summary.Collector, ann *nlp.Annotation, marks []*mark.Mark) {
	col.StartParagraph()
	for _, m := range marks {
		if m.Note == "" {
			continue
		}
		if !col.Record(m.Note, m.Start, m.End) {
			continue
		}
		if m.Note == rulebook.LabelMajorWorkItalic {
			continue
		}
		if s, ok := ann.SentenceAt(m.Start); ok {
			col.AddExample(m.Note, ann.Text[s.Start:s.End])
		}
	}
}

// deviceKeys returns the canonical device keys mentioned in text, for
// bridge paragraph tracking.
func deviceKeys(tbl *devices.Table, text string, tokens []nlp.Token) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, h := range tbl.Find(text, tokens) {
		if !seen[h.Canonical] {
			seen[h.Canonical] = true
			keys = append(keys, h.Canonical)
		}
	}
	return keys
}

// finalSentenceLemmas returns the content lemmas of the paragraph's
// last sentence, consumed by the next paragraph's transition check.
func finalSentenceLemmas(ann *nlp.Annotation) []string {
	if len(ann.Sentences) == 0 {
		return nil
	}
	last := ann.Sentences[len(ann.Sentences)-1]
	var lemmas []string
	for _, ti := range ann.TokensIn(last.Start, last.End) {
		t := &ann.Tokens[ti]
		if t.IsContent() {
			lemmas = append(lemmas, t.Lemma)
		}
	}
	return lemmas
}

func lastContentIndex(infos []roleInfo) int {
	last := -1
	for i, info := range infos {
		switch info.role {
		case rules.RoleIntro, rules.RoleBody, rules.RoleConclusion:
			last = i
		}
	}
	return last
}
