// Package doc defines the structured document model shared by format
// adapters and the annotation engine: ordered paragraphs of formatted
// text fragments, named anchors, internal/external links, and tables.
//
// The model is deliberately small. It captures exactly what the engine
// needs to read (flattened text plus italic ranges) and to write
// (highlighted runs, struck runs, label runs with links, a summary
// table) while leaving everything else to the source file untouched.
package doc
