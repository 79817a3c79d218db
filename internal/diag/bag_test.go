package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"graduale/internal/source"
)

func TestBagKeepsDiscoveryOrder(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}

	ReportError(r, SynUnknownCode, source.Span{Start: 9}, `"xx" is not a recognized note or flag`).Emit()
	ReportWarning(r, LexExtraParts, source.Span{Start: 1}, "text after the note group is ignored").Emit()
	ReportError(r, SynClefRequired, source.Span{Start: 0}, "a clef is needed before any notes").Emit()

	want := []string{
		`"xx" is not a recognized note or flag`,
		"text after the note group is ignored",
		"a clef is needed before any notes",
	}
	if diff := cmp.Diff(want, bag.Messages()); diff != "" {
		t.Errorf("Messages() mismatch (-want +got):\n%s", diff)
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Errorf("HasErrors/HasWarnings = %v/%v", bag.HasErrors(), bag.HasWarnings())
	}
	if got := bag.Count(SynUnknownCode); got != 1 {
		t.Errorf("Count(SynUnknownCode) = %d", got)
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 5; i++ {
		bag.Add(NewWarning(SynUnknownMode, source.Span{}, "w"))
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
	if bag.HasErrors() {
		t.Error("warnings reported as errors")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportInfo(BagReporter{Bag: bag}, SynInfo, source.Span{}, "info").
		WithNote(source.Span{Start: 3, End: 4}, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bag.Len())
	}
	if got := len(bag.Items()[0].Notes); got != 1 {
		t.Errorf("notes = %d, want 1", got)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexEmptyCode:    "LEX1004",
		SynUnknownBar:   "SYN2006",
		LayOverflow:     "LAY3001",
		IOLoadFileError: "IO4001",
		UnknownCode:     "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynClefRequired, source.Span{}, "a"))
	b := NewBag(0)
	b.Add(NewWarning(SynUnknownMode, source.Span{}, "b"))
	b.Add(NewWarning(SynUnknownMode, source.Span{}, "c"))

	a.Merge(b)
	a.Merge(nil)
	if diff := cmp.Diff([]string{"a", "b", "c"}, a.Messages()); diff != "" {
		t.Errorf("Messages() mismatch (-want +got):\n%s", diff)
	}
	if a.Cap() != 3 {
		t.Errorf("Cap() = %d, want 3", a.Cap())
	}
}
