package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vysti/marker/core/doc"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/summary"
)

// summary.go - The end-of-document issue table. Every label used in the
// run gets one row: the issue (with its occurrence count, bookmarked so
// in-text callouts link here) and the explanation from the rulebook,
// followed by collected example sentences.

// powerVerbsURL is the external resource linked from the weak-verbs
// explanation.
const powerVerbsURL = "https://www.vysti.org/resources"

// SummaryTable builds the Issue/Explanation table from the labels used
// in the run, in alphabetical order of their first word. Returns nil
// when no labels were used, in which case no table is appended.
func SummaryTable(labels []string, col *summary.Collector, book *rulebook.Book, anchors *Anchors) *doc.Table {
	if len(labels) == 0 {
		return nil
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return firstWordLower(sorted[i]) < firstWordLower(sorted[j])
	})

	t := &doc.Table{}
	t.AddRow(&doc.Row{Cells: []*doc.Cell{
		{Fragments: []*doc.Fragment{{Text: "Issue", Bold: true, Generated: true}}},
		{Fragments: []*doc.Fragment{{Text: "Explanation", Bold: true, Generated: true}}},
	}})

	for _, label := range sorted {
		issue := &doc.Cell{
			Anchor: anchors.For(label),
			Fragments: []*doc.Fragment{
				{Text: label, Generated: true},
				{Text: " (" + strconv.Itoa(col.Count(label)) + ")", Generated: true},
			},
		}
		t.AddRow(&doc.Row{Cells: []*doc.Cell{issue, explanationCell(label, col, book)}})
	}
	return t
}

func explanationCell(label string, col *summary.Collector, book *rulebook.Book) *doc.Cell {
	cell := &doc.Cell{}
	expl, _ := book.Explanation(label)
	if label == rulebook.LabelWeakVerbs {
		if expl == "" {
			expl = "Download the Power Verbs here"
		}
		cell.Fragments = append(cell.Fragments, &doc.Fragment{
			Text:      expl,
			LinkURL:   powerVerbsURL,
			Generated: true,
		})
	} else {
		cell.Fragments = append(cell.Fragments, &doc.Fragment{Text: expl, Generated: true})
	}
	for _, ex := range col.Examples(label) {
		cell.Fragments = append(cell.Fragments, &doc.Fragment{
			Text:      "\n• " + ex,
			Italic:    true,
			Generated: true,
		})
	}
	return cell
}

func firstWordLower(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}
