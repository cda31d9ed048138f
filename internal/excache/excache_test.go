package excache

import (
	"path/filepath"
	"testing"

	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/summary"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "examples.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndExamples(t *testing.T) {
	s := openTemp(t)
	if err := s.Put(rulebook.LabelWeakVerbs, "The ending is quiet."); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(rulebook.LabelWeakVerbs, "The village has a ritual."); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Examples(rulebook.LabelWeakVerbs, 0)
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("examples = %d, want 2", len(got))
	}
}

func TestPutDeduplicates(t *testing.T) {
	s := openTemp(t)
	for i := 0; i < 3; i++ {
		if err := s.Put(rulebook.LabelVeryALot, "This is very good."); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	got, err := s.Examples(rulebook.LabelVeryALot, 0)
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("examples = %d, want 1 after dedup", len(got))
	}
}

func TestPutRejectsEmpty(t *testing.T) {
	s := openTemp(t)
	if err := s.Put("", "sentence"); err == nil {
		t.Error("empty label must be rejected")
	}
	if err := s.Put(rulebook.LabelVeryALot, ""); err == nil {
		t.Error("empty sentence must be rejected")
	}
}

func TestExamplesLimit(t *testing.T) {
	s := openTemp(t)
	sentences := []string{"Alpha is here.", "Beta is here.", "Gamma is here."}
	for _, sent := range sentences {
		if err := s.Put(rulebook.LabelWeakVerbs, sent); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	got, err := s.Examples(rulebook.LabelWeakVerbs, 2)
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("examples = %d, want limit of 2", len(got))
	}
}

func TestPutReportAndLabels(t *testing.T) {
	s := openTemp(t)
	rep := &summary.Report{Rows: []summary.Row{
		{Label: rulebook.LabelFirstPerson, Count: 2, Examples: []string{"I believe this.", "We all know it."}},
		{Label: rulebook.LabelVeryALot, Count: 1, Examples: []string{"It matters very much."}},
	}}
	if err := s.PutReport(rep); err != nil {
		t.Fatalf("PutReport: %v", err)
	}
	labels, err := s.Labels()
	if err != nil {
		t.Fatalf("Labels: %v", err)
	}
	if labels[rulebook.LabelFirstPerson] != 2 || labels[rulebook.LabelVeryALot] != 1 {
		t.Errorf("labels = %v", labels)
	}
}
