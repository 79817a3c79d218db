package layout

import (
	"graduale/internal/chant"
)

// SyllableRef addresses a syllable of the laid out Document.
type SyllableRef struct {
	Section int
	Index   int
}

// Placement puts one syllable at (X, Y) on staff line Line.
type Placement struct {
	Ref   SyllableRef
	Line  int
	X, Y  int
	Width int
}

// ClefMark is a clef glyph at the start of a section or of a wrapped line.
type ClefMark struct {
	Section  int
	Clef     chant.Clef
	ClefLine int
	Line     int
	X, Y     int
}

// Custos previews, at the end of Line, the first pitch of the next line.
type Custos struct {
	Ref           SyllableRef
	Pitch         float64
	Flags         chant.Flags
	EpisemaHeight int
	Line          int
	X, Y          int
}

// Overflow records a syllable wider than a whole staff line.
type Overflow struct {
	Ref       SyllableRef
	Width     int
	Available int
}

// Plan is the positioned result of Break. It holds no references into the Document
// beyond SyllableRef indexes.
type Plan struct {
	Placements []Placement
	Clefs      []ClefMark
	Custodes   []Custos
	Overflows  []Overflow
	Lines      int
	MaxY       int

	lineHeight           int
	diagnosticLineHeight int
}

// Height is the total height of the rendered chant with diagnostics lines of
// error text above it.
func (p *Plan) Height(diagnostics int) int {
	return p.Lines*p.lineHeight + diagnostics*p.diagnosticLineHeight
}

// Placement returns the placement of ref, if it was placed.
func (p *Plan) Placement(ref SyllableRef) (Placement, bool) {
	for _, pl := range p.Placements {
		if pl.Ref == ref {
			return pl, true
		}
	}
	return Placement{}, false
}
