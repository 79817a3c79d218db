package width

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"graduale/internal/chant"
)

func fixed(w float64) Measurer {
	return MeasureFunc(func(string, float64) float64 { return w })
}

func note(v float64, list ...chant.Flag) chant.Note {
	return chant.NewNote(v, chant.FlagsOf(list...))
}

func TestNoteOffset(t *testing.T) {
	const base = chant.BaseNoteOffset
	liq := note(3, chant.Liquescent)
	stacked := note(3, chant.StackedAscending)
	plain := note(3)

	tests := []struct {
		name string
		cur  chant.Note
		next *chant.Note
		want int
	}{
		{"plain last", plain, nil, base},
		{"plain before plain", plain, &plain, base},
		{"before liquescent", note(3, chant.Dot), &liq, 0},
		{"before stacked", note(3, chant.Porrectus), &stacked, 0},
		{"dot", note(3, chant.Dot, chant.Porrectus), nil, base + 15},
		{"porrectus", note(3, chant.Porrectus, chant.Repeated), &plain, 50},
		{"repeated", note(3, chant.Repeated), nil, base + 5},
		{"stacked", note(3, chant.StackedAscending), &plain, base + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoteOffset(&tt.cur, tt.next, base); got != tt.want {
				t.Errorf("NoteOffset = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSyllableWidthIsTheLarger(t *testing.T) {
	// six plain notes of 20px each
	wide := chant.Syllable{Text: "a"}
	for range 6 {
		wide.Notes = append(wide.Notes, note(3, chant.Jump))
	}
	doc := &chant.Document{Sections: []chant.Section{{Syllables: []chant.Syllable{wide}}}}
	Annotate(doc, Options{Measurer: fixed(40)})
	if got := doc.Sections[0].Syllables[0].Width; got != 120 {
		t.Errorf("note-bound width = %d, want 120", got)
	}

	narrow := chant.Syllable{Text: "Gloria", Notes: []chant.Note{note(3)}}
	doc = &chant.Document{Sections: []chant.Section{{Syllables: []chant.Syllable{narrow}}}}
	Annotate(doc, Options{Measurer: fixed(120.9)})
	if got := doc.Sections[0].Syllables[0].Width; got != 120 {
		t.Errorf("text-bound width = %d, want 120", got)
	}
}

func TestAccidentalWidth(t *testing.T) {
	syl := chant.Syllable{Text: "a", HasNeutral: true, Notes: []chant.Note{note(3)}}
	doc := &chant.Document{Sections: []chant.Section{{Syllables: []chant.Syllable{syl}}}}
	Annotate(doc, Options{})
	if got := doc.Sections[0].Syllables[0].Width; got != chant.AccidentalWidth+chant.BaseNoteOffset {
		t.Errorf("width = %d", got)
	}
}

func TestLabelOnlyWidth(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{{Syllables: []chant.Syllable{{Text: "Ps.", WordEnd: true}}}}}
	Annotate(doc, Options{Measurer: MeasureFunc(func(text string, size float64) float64 {
		return float64(len(text)) * size / 2
	})})
	if got := doc.Sections[0].Syllables[0].Width; got != 90 {
		t.Errorf("width = %d, want 90", got)
	}
}

func TestEpisemaGroups(t *testing.T) {
	syl := chant.Syllable{Notes: []chant.Note{
		note(3, chant.HEpisema),
		note(4, chant.HEpisema),
		note(3.5, chant.HEpisema),
		note(2),
		note(1, chant.HEpisema),
		note(-1, chant.HEpisema),
	}}
	alignEpisemas(syl.Notes)

	got := make([]int, len(syl.Notes))
	for i, n := range syl.Notes {
		got[i] = n.EpisemaHeight
	}
	base := chant.BaseEpisemaHeight
	want := []int{
		base + 48, base, base + 24,
		base,
		base, base + 96,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("episema heights (-want +got):\n%s", diff)
	}
}

func TestAnnotateIsIdempotent(t *testing.T) {
	doc := &chant.Document{Sections: []chant.Section{{
		Clef: chant.ClefDo, Line: 3,
		Syllables: []chant.Syllable{
			{Text: "Ky", Notes: []chant.Note{
				note(3),
				note(4, chant.Jump, chant.Ascending, chant.StackedAscending, chant.HEpisema),
				note(4, chant.Liquescent, chant.HEpisema),
				note(3, chant.Dot),
			}},
			{Text: "ri", HasFlat: true, Notes: []chant.Note{note(5, chant.Porrectus), note(4, chant.Repeated)}},
			{Text: "e", Notes: []chant.Note{note(chant.BarPlaceholderValue, chant.FullBar)}},
		},
	}}}
	opts := Options{Measurer: fixed(30)}
	Annotate(doc, opts)
	first := cloneDoc(doc)
	Annotate(doc, opts)
	if diff := cmp.Diff(first, doc); diff != "" {
		t.Errorf("second pass changed the document (-first +second):\n%s", diff)
	}

	ky := doc.Sections[0].Syllables[0]
	offsets := []int{ky.Notes[0].Offset, ky.Notes[1].Offset, ky.Notes[2].Offset, ky.Notes[3].Offset}
	if diff := cmp.Diff([]int{0, 0, 20, 35}, offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
	if ky.Width != 55 {
		t.Errorf("Ky width = %d, want 55", ky.Width)
	}
	if ri := doc.Sections[0].Syllables[1]; ri.Width != 20+50+25 {
		t.Errorf("ri width = %d", ri.Width)
	}
}

func cloneDoc(doc *chant.Document) *chant.Document {
	out := &chant.Document{Mode: doc.Mode}
	for _, sec := range doc.Sections {
		c := sec
		c.Syllables = nil
		for _, syl := range sec.Syllables {
			s := syl
			s.Notes = append([]chant.Note(nil), syl.Notes...)
			c.Syllables = append(c.Syllables, s)
		}
		out.Sections = append(out.Sections, c)
	}
	return out
}
