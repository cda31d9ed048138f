package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/vysti/marker/core/doc"
	"github.com/vysti/marker/core/encoding"
	"github.com/vysti/marker/core/errors"
)

// write.go - Annotated OOXML output. The document part is regenerated
// from the model; every other part of the source package passes through
// unchanged. External links need relationship entries, so the rels part
// is extended with one entry per distinct URL.

const (
	contentTypesPart = "[Content_Types].xml"
	rootRelsPart     = "_rels/.rels"

	hyperlinkRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// WriteFile writes the package to a .docx file on disk.
func (f *File) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Write serializes the package as a zip archive.
func (f *File) Write(w io.Writer) error {
	urls := collectURLs(f.Doc)
	relIDs, rels := extendRels(f.rels, urls)
	docXML := buildDocument(f.Doc, relIDs)

	zw := zip.NewWriter(w)
	write := func(name string, data []byte) error {
		fw, err := zw.Create(name)
		if err != nil {
			return errors.NewIO("write", name, err)
		}
		_, err = fw.Write(data)
		if err != nil {
			return errors.NewIO("write", name, err)
		}
		return nil
	}

	if _, ok := f.parts[contentTypesPart]; !ok {
		if err := write(contentTypesPart, []byte(defaultContentTypes)); err != nil {
			return err
		}
	}
	if _, ok := f.parts[rootRelsPart]; !ok {
		if err := write(rootRelsPart, []byte(defaultRootRels)); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(f.parts))
	for name := range f.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := write(name, f.parts[name]); err != nil {
			return err
		}
	}
	if err := write(documentPart, docXML); err != nil {
		return err
	}
	if err := write(relsPart, rels); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return errors.NewIO("close", "docx", err)
	}
	return nil
}

// collectURLs gathers the distinct external link targets in order of
// first appearance.
func collectURLs(d *doc.Document) []string {
	var urls []string
	seen := make(map[string]bool)
	add := func(frags []*doc.Fragment) {
		for _, fr := range frags {
			if fr.LinkURL != "" && !seen[fr.LinkURL] {
				seen[fr.LinkURL] = true
				urls = append(urls, fr.LinkURL)
			}
		}
	}
	for _, p := range d.Paragraphs {
		add(p.Fragments)
	}
	for _, t := range d.Tables {
		for _, row := range t.Rows {
			for _, cell := range row.Cells {
				add(cell.Fragments)
			}
		}
	}
	return urls
}

// extendRels appends hyperlink relationships for the given URLs to the
// rels part, returning the URL -> rId mapping and the new part bytes.
func extendRels(rels []byte, urls []string) (map[string]string, []byte) {
	base := string(rels)
	if base == "" {
		base = defaultDocRels
	}
	next := maxRelID(base) + 1
	ids := make(map[string]string, len(urls))
	var add strings.Builder
	for i, url := range urls {
		id := fmt.Sprintf("rId%d", next+i)
		ids[url] = id
		add.WriteString(`<Relationship Id="` + id + `" Type="` + hyperlinkRelType +
			`" Target="` + encoding.EscapeXMLAttr(url) + `" TargetMode="External"/>`)
	}
	out := strings.Replace(base, "</Relationships>", add.String()+"</Relationships>", 1)
	return ids, []byte(out)
}

// maxRelID scans a rels part for the highest numeric rId.
func maxRelID(rels string) int {
	max := 0
	for i := 0; ; {
		j := strings.Index(rels[i:], `Id="rId`)
		if j < 0 {
			break
		}
		i += j + len(`Id="rId`)
		n := 0
		for i < len(rels) && rels[i] >= '0' && rels[i] <= '9' {
			n = n*10 + int(rels[i]-'0')
			i++
		}
		if n > max {
			max = n
		}
	}
	return max
}

// buildDocument serializes the document model to word/document.xml.
func buildDocument(d *doc.Document, relIDs map[string]string) []byte {
	var b strings.Builder
	bookmarkID := 0
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	b.WriteString(`<w:body>`)
	for _, p := range d.Paragraphs {
		writeParagraph(&b, p, relIDs, &bookmarkID)
	}
	for _, t := range d.Tables {
		writeTable(&b, t, relIDs, &bookmarkID)
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return []byte(b.String())
}

func writeParagraph(b *strings.Builder, p *doc.Paragraph, relIDs map[string]string, bookmarkID *int) {
	b.WriteString(`<w:p>`)
	for _, name := range p.Anchors {
		writeBookmark(b, name, bookmarkID)
	}
	for _, f := range p.Fragments {
		writeFragment(b, f, relIDs)
	}
	b.WriteString(`</w:p>`)
}

func writeBookmark(b *strings.Builder, name string, bookmarkID *int) {
	id := fmt.Sprintf("%d", *bookmarkID)
	*bookmarkID++
	b.WriteString(`<w:bookmarkStart w:id="` + id + `" w:name="` + encoding.EscapeXMLAttr(name) + `"/>`)
	b.WriteString(`<w:bookmarkEnd w:id="` + id + `"/>`)
}

func writeFragment(b *strings.Builder, f *doc.Fragment, relIDs map[string]string) {
	switch {
	case f.LinkAnchor != "":
		b.WriteString(`<w:hyperlink w:anchor="` + encoding.EscapeXMLAttr(f.LinkAnchor) + `">`)
		writeRun(b, f)
		b.WriteString(`</w:hyperlink>`)
	case f.LinkURL != "":
		b.WriteString(`<w:hyperlink r:id="` + relIDs[f.LinkURL] + `">`)
		writeRun(b, f)
		b.WriteString(`</w:hyperlink>`)
	default:
		writeRun(b, f)
	}
}

func writeRun(b *strings.Builder, f *doc.Fragment) {
	b.WriteString(`<w:r`)
	if f.Generated {
		b.WriteString(` ` + genAttr + `="1"`)
	}
	b.WriteString(`>`)
	if props := runProps(f); props != "" {
		b.WriteString(`<w:rPr>` + props + `</w:rPr>`)
	}
	// Newlines inside a fragment become explicit breaks.
	lines := strings.Split(f.Text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		if line != "" {
			b.WriteString(`<w:t xml:space="preserve">` + encoding.EscapeXMLText(line) + `</w:t>`)
		}
	}
	b.WriteString(`</w:r>`)
}

func runProps(f *doc.Fragment) string {
	var b strings.Builder
	if f.Bold {
		b.WriteString(`<w:b/>`)
	}
	if f.Italic {
		b.WriteString(`<w:i/>`)
	}
	if f.Strike {
		b.WriteString(`<w:strike/>`)
	}
	if f.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if val, ok := toOOXMLHighlight[f.Highlight]; ok && f.Highlight != doc.HighlightNone {
		b.WriteString(`<w:highlight w:val="` + val + `"/>`)
	}
	return b.String()
}

func writeTable(b *strings.Builder, t *doc.Table, relIDs map[string]string, bookmarkID *int) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single"/><w:bottom w:val="single"/>` +
		`<w:left w:val="single"/><w:right w:val="single"/>` +
		`<w:insideH w:val="single"/><w:insideV w:val="single"/>` +
		`</w:tblBorders></w:tblPr>`)
	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			b.WriteString(`<w:tc>`)
			b.WriteString(`<w:p>`)
			if cell.Anchor != "" {
				writeBookmark(b, cell.Anchor, bookmarkID)
			}
			for _, f := range cell.Fragments {
				writeFragment(b, f, relIDs)
			}
			b.WriteString(`</w:p>`)
			b.WriteString(`</w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
}

const defaultContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const defaultRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const defaultDocRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`</Relationships>`
