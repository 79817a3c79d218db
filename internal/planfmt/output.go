// Package planfmt flattens a laid out chant into a serialisable render plan.
package planfmt

import (
	"graduale/internal/chant"
	"graduale/internal/diag"
	"graduale/internal/layout"
)

// Schema is bumped whenever Output changes shape.
const Schema uint16 = 1

type Output struct {
	Schema      uint16         `json:"schema" yaml:"schema" msgpack:"schema"`
	Name        string         `json:"name" yaml:"name" msgpack:"name"`
	Mode        string         `json:"mode" yaml:"mode" msgpack:"mode"`
	Sections    []Section      `json:"sections" yaml:"sections" msgpack:"sections"`
	Placements  []Placement    `json:"placements" yaml:"placements" msgpack:"placements"`
	Clefs       []Clef         `json:"clefs" yaml:"clefs" msgpack:"clefs"`
	Custodes    []Custos       `json:"custodes" yaml:"custodes" msgpack:"custodes"`
	Overflows   []Overflow     `json:"overflows,omitempty" yaml:"overflows,omitempty" msgpack:"overflows,omitempty"`
	Lines       int            `json:"lines" yaml:"lines" msgpack:"lines"`
	MaxY        int            `json:"max_y" yaml:"max_y" msgpack:"max_y"`
	Height      int            `json:"height" yaml:"height" msgpack:"height"`
	Diagnostics []string       `json:"diagnostics" yaml:"diagnostics" msgpack:"diagnostics"`
	Severities  map[string]int `json:"severities,omitempty" yaml:"severities,omitempty" msgpack:"severities,omitempty"`
}

type Section struct {
	Clef      string     `json:"clef" yaml:"clef" msgpack:"clef"`
	Line      int        `json:"line" yaml:"line" msgpack:"line"`
	Syllables []Syllable `json:"syllables" yaml:"syllables" msgpack:"syllables"`
}

type Syllable struct {
	Text       string `json:"text" yaml:"text" msgpack:"text"`
	WordEnd    bool   `json:"word_end" yaml:"word_end" msgpack:"word_end"`
	HasFlat    bool   `json:"has_flat,omitempty" yaml:"has_flat,omitempty" msgpack:"has_flat,omitempty"`
	HasNeutral bool   `json:"has_neutral,omitempty" yaml:"has_neutral,omitempty" msgpack:"has_neutral,omitempty"`
	Width      int    `json:"width" yaml:"width" msgpack:"width"`
	Notes      []Note `json:"notes,omitempty" yaml:"notes,omitempty" msgpack:"notes,omitempty"`
}

type Note struct {
	Value         float64  `json:"value" yaml:"value" msgpack:"value"`
	Flags         []string `json:"flags,omitempty" yaml:"flags,omitempty" msgpack:"flags,omitempty"`
	Offset        int      `json:"offset" yaml:"offset" msgpack:"offset"`
	EpisemaHeight int      `json:"episema_height" yaml:"episema_height" msgpack:"episema_height"`
}

type Placement struct {
	Section  int `json:"section" yaml:"section" msgpack:"section"`
	Syllable int `json:"syllable" yaml:"syllable" msgpack:"syllable"`
	Line     int `json:"line" yaml:"line" msgpack:"line"`
	X        int `json:"x" yaml:"x" msgpack:"x"`
	Y        int `json:"y" yaml:"y" msgpack:"y"`
	Width    int `json:"width" yaml:"width" msgpack:"width"`
}

type Clef struct {
	Section  int    `json:"section" yaml:"section" msgpack:"section"`
	Clef     string `json:"clef" yaml:"clef" msgpack:"clef"`
	ClefLine int    `json:"clef_line" yaml:"clef_line" msgpack:"clef_line"`
	Line     int    `json:"line" yaml:"line" msgpack:"line"`
	X        int    `json:"x" yaml:"x" msgpack:"x"`
	Y        int    `json:"y" yaml:"y" msgpack:"y"`
}

type Custos struct {
	Section       int      `json:"section" yaml:"section" msgpack:"section"`
	Syllable      int      `json:"syllable" yaml:"syllable" msgpack:"syllable"`
	Pitch         float64  `json:"pitch" yaml:"pitch" msgpack:"pitch"`
	Flags         []string `json:"flags,omitempty" yaml:"flags,omitempty" msgpack:"flags,omitempty"`
	EpisemaHeight int      `json:"episema_height" yaml:"episema_height" msgpack:"episema_height"`
	Line          int      `json:"line" yaml:"line" msgpack:"line"`
	X             int      `json:"x" yaml:"x" msgpack:"x"`
	Y             int      `json:"y" yaml:"y" msgpack:"y"`
}

type Overflow struct {
	Section   int `json:"section" yaml:"section" msgpack:"section"`
	Syllable  int `json:"syllable" yaml:"syllable" msgpack:"syllable"`
	Width     int `json:"width" yaml:"width" msgpack:"width"`
	Available int `json:"available" yaml:"available" msgpack:"available"`
}

// ExportDocument flattens a parsed Document and its diagnostics, without positions.
func ExportDocument(name string, doc *chant.Document, bag *diag.Bag) Output {
	out := Output{
		Schema:      Schema,
		Name:        name,
		Mode:        doc.Mode.String(),
		Sections:    make([]Section, 0, len(doc.Sections)),
		Diagnostics: bag.Messages(),
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []string{}
	}
	for _, d := range bag.Items() {
		if out.Severities == nil {
			out.Severities = make(map[string]int)
		}
		out.Severities[d.Severity.String()]++
	}

	for _, sec := range doc.Sections {
		s := Section{Clef: sec.Clef.String(), Line: sec.Line, Syllables: make([]Syllable, 0, len(sec.Syllables))}
		for _, syl := range sec.Syllables {
			s.Syllables = append(s.Syllables, exportSyllable(syl))
		}
		out.Sections = append(out.Sections, s)
	}
	return out
}

// Export flattens doc, its plan and the run's diagnostics under name.
func Export(name string, doc *chant.Document, plan *layout.Plan, bag *diag.Bag) Output {
	out := ExportDocument(name, doc, bag)
	out.Placements = make([]Placement, 0, len(plan.Placements))
	out.Clefs = make([]Clef, 0, len(plan.Clefs))
	out.Custodes = make([]Custos, 0, len(plan.Custodes))
	out.Lines = plan.Lines
	out.MaxY = plan.MaxY
	out.Height = plan.Height(bag.Len())

	for _, p := range plan.Placements {
		out.Placements = append(out.Placements, Placement{
			Section: p.Ref.Section, Syllable: p.Ref.Index,
			Line: p.Line, X: p.X, Y: p.Y, Width: p.Width,
		})
	}
	for _, c := range plan.Clefs {
		out.Clefs = append(out.Clefs, Clef{
			Section: c.Section, Clef: c.Clef.String(), ClefLine: c.ClefLine,
			Line: c.Line, X: c.X, Y: c.Y,
		})
	}
	for _, c := range plan.Custodes {
		out.Custodes = append(out.Custodes, Custos{
			Section: c.Ref.Section, Syllable: c.Ref.Index,
			Pitch: c.Pitch, Flags: c.Flags.Names(), EpisemaHeight: c.EpisemaHeight,
			Line: c.Line, X: c.X, Y: c.Y,
		})
	}
	for _, o := range plan.Overflows {
		out.Overflows = append(out.Overflows, Overflow{
			Section: o.Ref.Section, Syllable: o.Ref.Index,
			Width: o.Width, Available: o.Available,
		})
	}
	return out
}

func exportSyllable(syl chant.Syllable) Syllable {
	s := Syllable{
		Text:       syl.Text,
		WordEnd:    syl.WordEnd,
		HasFlat:    syl.HasFlat,
		HasNeutral: syl.HasNeutral,
		Width:      syl.Width,
	}
	for _, n := range syl.Notes {
		s.Notes = append(s.Notes, Note{
			Value:         n.Value,
			Flags:         n.Flags.Names(),
			Offset:        n.Offset,
			EpisemaHeight: n.EpisemaHeight,
		})
	}
	return s
}

// Syllable returns the exported syllable a placement refers to.
func (o *Output) Syllable(section, index int) (Syllable, bool) {
	if section < 0 || section >= len(o.Sections) {
		return Syllable{}, false
	}
	syls := o.Sections[section].Syllables
	if index < 0 || index >= len(syls) {
		return Syllable{}, false
	}
	return syls[index], true
}
