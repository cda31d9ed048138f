// Package docx adapts OOXML word-processing files to the core document
// model. Read pulls paragraphs and run formatting out of
// word/document.xml; Write re-emits the annotated document while
// carrying every other package part through untouched. Runs inserted by
// an earlier annotation pass are tagged with a marker attribute so a
// re-annotation run can tell them from student text.
package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/vysti/marker/core/doc"
	"github.com/vysti/marker/core/errors"
)

const (
	documentPart = "word/document.xml"
	relsPart     = "word/_rels/document.xml.rels"

	// genAttr tags runs this tool inserted.
	genAttr = "vysti"
)

// File is one OOXML package: the parsed document plus the untouched
// sibling parts needed to write a valid file back out.
type File struct {
	// Doc is the document model built from word/document.xml.
	Doc *doc.Document

	// parts holds every zip entry except the document and its rels,
	// byte for byte.
	parts map[string][]byte

	// rels is the original relationship part, extended on write when
	// external links are added.
	rels []byte
}

// ReadFile opens a .docx file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return Read(bytes.NewReader(data), int64(len(data)))
}

// Read parses a .docx package from a reader.
func Read(r io.ReaderAt, size int64) (*File, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.NewParse("docx", "", "not a zip archive: "+err.Error())
	}
	f := &File{parts: make(map[string][]byte)}
	var docXML []byte
	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, errors.NewIO("open", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.NewIO("read", entry.Name, err)
		}
		switch entry.Name {
		case documentPart:
			docXML = data
		case relsPart:
			f.rels = data
		default:
			f.parts[entry.Name] = data
		}
	}
	if docXML == nil {
		return nil, errors.NewParse("docx", documentPart, "missing document part")
	}
	d, err := parseDocument(docXML)
	if err != nil {
		return nil, err
	}
	f.Doc = d
	return f, nil
}

// New wraps an in-memory document in a fresh minimal package, for
// output that does not originate from a .docx input.
func New(d *doc.Document) *File {
	return &File{Doc: d, parts: make(map[string][]byte)}
}

// parseDocument builds the document model from word/document.xml.
// Tables are skipped on read: the only table this tool knows about is
// the generated summary report, which a re-annotation run rebuilds.
func parseDocument(data []byte) (*doc.Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParse("docx", documentPart, err.Error())
	}
	body := xmlquery.FindOne(root, "//w:body")
	if body == nil {
		return nil, errors.NewParse("docx", documentPart, "missing w:body")
	}
	d := &doc.Document{}
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode || n.Data != "p" {
			continue
		}
		p := parseParagraph(n)
		if p != nil {
			d.Paragraphs = append(d.Paragraphs, p)
		}
	}
	return d, nil
}

func parseParagraph(n *xmlquery.Node) *doc.Paragraph {
	p := &doc.Paragraph{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case "r":
			if f := parseRun(c, ""); f != nil {
				p.Fragments = append(p.Fragments, f)
			}
		case "hyperlink":
			anchor := c.SelectAttr("w:anchor")
			for rc := c.FirstChild; rc != nil; rc = rc.NextSibling {
				if rc.Type == xmlquery.ElementNode && rc.Data == "r" {
					if f := parseRun(rc, anchor); f != nil {
						p.Fragments = append(p.Fragments, f)
					}
				}
			}
		case "bookmarkStart":
			if name := c.SelectAttr("w:name"); name != "" {
				p.AddAnchor(name)
			}
		}
	}
	if len(p.Fragments) == 0 {
		return nil
	}
	return p
}

func parseRun(n *xmlquery.Node, anchor string) *doc.Fragment {
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case "t":
			text.WriteString(c.InnerText())
		case "tab":
			text.WriteByte('\t')
		case "br":
			text.WriteByte('\n')
		}
	}
	if text.Len() == 0 {
		return nil
	}
	f := &doc.Fragment{
		Text:       normalizeQuotes(text.String()),
		Generated:  n.SelectAttr(genAttr) != "",
		LinkAnchor: anchor,
	}
	if pr := n.SelectElement("w:rPr"); pr != nil {
		f.Italic = pr.SelectElement("w:i") != nil
		f.Bold = pr.SelectElement("w:b") != nil
		f.Strike = pr.SelectElement("w:strike") != nil
		f.Underline = pr.SelectElement("w:u") != nil
		if hl := pr.SelectElement("w:highlight"); hl != nil {
			f.Highlight = highlightFromOOXML(hl.SelectAttr("w:val"))
		}
	}
	return f
}

// quoteReplacer straightens the curly quotes word processors insert,
// so the detectors see one quote character.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", "'", // left single
	"’", "'", // right single
)

func normalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// OOXML highlight value mapping. The model's gray maps to lightGray
// and turquoise to cyan; everything else carries its own name.
var toOOXMLHighlight = map[doc.Highlight]string{
	doc.HighlightGray:      "lightGray",
	doc.HighlightRed:       "red",
	doc.HighlightTurquoise: "cyan",
	doc.HighlightBlue:      "blue",
	doc.HighlightGreen:     "green",
	doc.HighlightYellow:    "yellow",
}

func highlightFromOOXML(val string) doc.Highlight {
	for h, v := range toOOXMLHighlight {
		if v == val {
			return h
		}
	}
	return doc.HighlightNone
}
