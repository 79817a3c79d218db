package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"graduale/internal/chant"
)

func syllable(width int, wordEnd bool, values ...float64) chant.Syllable {
	s := chant.Syllable{Width: width, WordEnd: wordEnd}
	for _, v := range values {
		s.Notes = append(s.Notes, chant.NewNote(v, 0))
	}
	return s
}

func bare() Options {
	return Options{LineWidth: 150, TrailingMargin: 10, LineHeight: 100, DiagnosticLineHeight: 10}
}

func TestBreakWrapsAndEmitsCustos(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{{
		Clef: chant.ClefDo, Line: 3,
		Syllables: []chant.Syllable{
			syllable(50, true, 3),
			syllable(60, true, 4),
			syllable(70, true, 5.5, 3),
		},
	}}}
	plan := Break(doc, bare())

	want := []Placement{
		{Ref: SyllableRef{0, 0}, Line: 0, X: 0, Y: 0, Width: 50},
		{Ref: SyllableRef{0, 1}, Line: 0, X: 50, Y: 0, Width: 60},
		{Ref: SyllableRef{0, 2}, Line: 1, X: 0, Y: 100, Width: 70},
	}
	if diff := cmp.Diff(want, plan.Placements); diff != "" {
		t.Errorf("placements (-want +got):\n%s", diff)
	}
	if len(plan.Custodes) != 1 {
		t.Fatalf("custodes = %+v, want exactly one", plan.Custodes)
	}
	c := plan.Custodes[0]
	if c.Ref != (SyllableRef{0, 2}) || c.Pitch != 5.5 || c.Line != 0 || c.Y != 0 || c.X != 150 {
		t.Errorf("custos = %+v", c)
	}
	if plan.Lines != 2 || plan.MaxY != 100 {
		t.Errorf("lines = %d maxY = %d", plan.Lines, plan.MaxY)
	}
	if len(plan.Clefs) != 2 || plan.Clefs[1].Line != 1 {
		t.Errorf("clefs = %+v", plan.Clefs)
	}
	if h := plan.Height(3); h != 2*100+3*10 {
		t.Errorf("height = %d", h)
	}
	if pl, ok := plan.Placement(SyllableRef{0, 1}); !ok || pl.X != 50 {
		t.Errorf("Placement(0,1) = %+v, %v", pl, ok)
	}
	if _, ok := plan.Placement(SyllableRef{1, 0}); ok {
		t.Error("Placement found a syllable that does not exist")
	}
}

func TestBreakOffsets(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{{
		Clef: chant.ClefDo, Line: 3,
		Syllables: []chant.Syllable{
			syllable(100, false, 3),
			syllable(100, true, 3),
			syllable(100, true, 3),
		},
	}}}
	opts := DefaultOptions(500)
	plan := Break(doc, opts)

	// 10 + 80 clef, then 100 + 25 inside the word, then 100 + 45 after it
	xs := []int{plan.Placements[0].X, plan.Placements[1].X}
	if diff := cmp.Diff([]int{90, 215}, xs); diff != "" {
		t.Errorf("x (-want +got):\n%s", diff)
	}
	// 360 + 100 > 455, third syllable wraps behind a new clef
	third := plan.Placements[2]
	if third.Line != 1 || third.X != 90 || third.Y != 400 {
		t.Errorf("third placement = %+v", third)
	}
	if c := plan.Custodes[0]; c.X != 455 || c.Y != 0 {
		t.Errorf("custos = %+v", c)
	}
}

func TestBreakCustosNeedsPitch(t *testing.T) {
	bar := chant.Syllable{Text: chant.BarText, WordEnd: true, Width: 70,
		Notes: []chant.Note{chant.NewNote(chant.BarPlaceholderValue, chant.FlagsOf(chant.FullBar))}}
	label := chant.Syllable{Text: "Ps.", WordEnd: true, Width: 70}

	for name, last := range map[string]chant.Syllable{"bar": bar, "label": label} {
		t.Run(name, func(t *testing.T) {
			doc := &chant.Document{Sections: []chant.Section{{
				Syllables: []chant.Syllable{syllable(100, true, 3), last, syllable(20, true, 4)},
			}}}
			plan := Break(doc, bare())
			if len(plan.Custodes) != 0 {
				t.Errorf("custodes = %+v, want none", plan.Custodes)
			}
			if plan.Lines != 2 {
				t.Errorf("lines = %d", plan.Lines)
			}
		})
	}
}

func TestBreakOverflow(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{{
		Syllables: []chant.Syllable{syllable(300, true, 3), syllable(10, true, 4)},
	}}}
	plan := Break(doc, bare())
	want := []Overflow{{Ref: SyllableRef{0, 0}, Width: 300, Available: 140}}
	if diff := cmp.Diff(want, plan.Overflows); diff != "" {
		t.Errorf("overflows (-want +got):\n%s", diff)
	}
	// the over-wide syllable stays on the first line, the next one wraps
	if plan.Placements[0].Line != 0 || plan.Placements[1].Line != 1 || plan.Lines != 2 {
		t.Errorf("placements = %+v, lines = %d", plan.Placements, plan.Lines)
	}
	if len(plan.Custodes) != 1 || plan.Custodes[0].Pitch != 4 {
		t.Errorf("custodes = %+v", plan.Custodes)
	}
}

func TestBreakSectionsShareLines(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{
		{Clef: chant.ClefDo, Line: 3, Syllables: []chant.Syllable{syllable(20, true, 3)}},
		{Clef: chant.ClefFa, Line: 2, Syllables: []chant.Syllable{syllable(20, true, 3)}},
		{Clef: chant.ClefDo, Line: 4, Syllables: []chant.Syllable{syllable(20, true, 3)}},
	}}
	opts := bare()
	opts.ClefWidth = 40
	plan := Break(doc, opts)

	// 0+40 | 40..60 | 60+40 | 100..120 | 120+40 > 140 wraps before the clef
	type clef struct {
		Clef    chant.Clef
		Line, X int
	}
	var got []clef
	for _, c := range plan.Clefs {
		got = append(got, clef{c.Clef, c.Line, c.X})
	}
	want := []clef{{chant.ClefDo, 0, 0}, {chant.ClefFa, 0, 60}, {chant.ClefDo, 1, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clefs (-want +got):\n%s", diff)
	}
	if len(plan.Custodes) != 1 || plan.Custodes[0].Ref != (SyllableRef{2, 0}) {
		t.Errorf("custodes = %+v", plan.Custodes)
	}
}

func TestBreakEmptyDocument(t *testing.T) {
	plan := Break(&chant.Document{}, DefaultOptions(0))
	if plan.Lines != 0 || len(plan.Placements) != 0 || plan.Height(0) != 0 {
		t.Errorf("plan = %+v", plan)
	}
	if plan.Height(2) != 2*DefaultDiagnosticLineHeight {
		t.Errorf("height = %d", plan.Height(2))
	}
}

func TestBreakDoesNotTouchDocument(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{{
		Clef: chant.ClefDo, Line: 3,
		Syllables: []chant.Syllable{syllable(400, true, 3, 4), syllable(700, false, 2)},
	}}}
	before := &chant.Document{Sections: []chant.Section{{
		Clef: chant.ClefDo, Line: 3,
		Syllables: []chant.Syllable{syllable(400, true, 3, 4), syllable(700, false, 2)},
	}}}
	first := Break(doc, DefaultOptions(800))
	second := Break(doc, DefaultOptions(800))
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Errorf("document changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(first, second, cmpopts.IgnoreUnexported(Plan{})); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}
