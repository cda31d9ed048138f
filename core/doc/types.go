package doc

// types.go - Consolidated document model type definitions
// This file contains the structured document types consumed and produced by
// the annotation engine. Format adapters should import these types from
// core/doc rather than defining their own.

// Highlight represents a text highlight color.
type Highlight string

// Highlight color constants.
const (
	HighlightNone      Highlight = ""
	HighlightGray      Highlight = "gray"
	HighlightRed       Highlight = "red"
	HighlightTurquoise Highlight = "turquoise"
	HighlightBlue      Highlight = "blue"
	HighlightGreen     Highlight = "green"
	HighlightYellow    Highlight = "yellow"
)

// validHighlights is the set of valid highlight colors.
var validHighlights = map[Highlight]bool{
	HighlightNone:      true,
	HighlightGray:      true,
	HighlightRed:       true,
	HighlightTurquoise: true,
	HighlightBlue:      true,
	HighlightGreen:     true,
	HighlightYellow:    true,
}

// IsValid returns true if the highlight color is valid.
func (h Highlight) IsValid() bool {
	return validHighlights[h]
}

// Document is the top-level container for one essay.
type Document struct {
	// Title is the document title, if the source format carries one.
	Title string `json:"title,omitempty"`

	// Paragraphs contains the ordered paragraphs of the document.
	Paragraphs []*Paragraph `json:"paragraphs,omitempty"`

	// Tables contains tables appended to the document (the summary report).
	Tables []*Table `json:"tables,omitempty"`

	// Attributes contains additional metadata as key-value pairs.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// AddTable appends a table to the document.
func (d *Document) AddTable(t *Table) {
	d.Tables = append(d.Tables, t)
}

// Paragraph is an ordered sequence of formatted text fragments.
type Paragraph struct {
	// Fragments contains the formatted text runs of this paragraph.
	Fragments []*Fragment `json:"fragments,omitempty"`

	// Anchors contains named anchors bound to this paragraph.
	Anchors []string `json:"anchors,omitempty"`

	// Attributes contains additional paragraph metadata.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// AddAnchor binds a named anchor to the paragraph.
func (p *Paragraph) AddAnchor(name string) {
	p.Anchors = append(p.Anchors, name)
}

// Fragment represents one formatted text run within a paragraph.
type Fragment struct {
	// Text is the raw UTF-8 text content.
	Text string `json:"text"`

	// Italic marks emphasized source text. Italic state is the only
	// source formatting the engine preserves through a rendering pass.
	Italic bool `json:"italic,omitempty"`

	// Bold marks bold text (used for inserted labels, preserved otherwise).
	Bold bool `json:"bold,omitempty"`

	// Strike marks struck-through text.
	Strike bool `json:"strike,omitempty"`

	// Underline marks underlined text.
	Underline bool `json:"underline,omitempty"`

	// Highlight is the background highlight color.
	Highlight Highlight `json:"highlight,omitempty"`

	// LinkAnchor is the name of an internal anchor this fragment links to.
	LinkAnchor string `json:"link_anchor,omitempty"`

	// LinkURL is an external URL this fragment links to.
	LinkURL string `json:"link_url,omitempty"`

	// Generated marks fragments inserted by the engine. Generated
	// fragments are excluded when a paragraph is flattened back to the
	// student's original text, which is what makes re-annotation safe.
	Generated bool `json:"generated,omitempty"`
}

// Table is a simple grid of rows appended to a document.
type Table struct {
	// Rows contains the table rows in order.
	Rows []*Row `json:"rows,omitempty"`
}

// AddRow appends a row to the table.
func (t *Table) AddRow(r *Row) {
	t.Rows = append(t.Rows, r)
}

// Row is one table row.
type Row struct {
	// Cells contains the row's cells in order.
	Cells []*Cell `json:"cells,omitempty"`
}

// Cell is one table cell holding formatted fragments.
type Cell struct {
	// Fragments contains the cell's formatted text runs.
	Fragments []*Fragment `json:"fragments,omitempty"`

	// Anchor is an optional named anchor bound to this cell.
	Anchor string `json:"anchor,omitempty"`
}
