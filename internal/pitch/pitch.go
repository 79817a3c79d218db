// Package pitch resolves solfège note codes to staff positions.
package pitch

import (
	"strings"

	"graduale/internal/chant"
)

// Octave is the shift requested by a trailing '-' or '+' on a code.
type Octave int8

const (
	OctaveNone Octave = 0
	OctaveDown Octave = -1
	OctaveUp   Octave = 1
)

// Shift returns the staff distance of the octave marker.
func (o Octave) Shift() float64 {
	return float64(o) * chant.OctaveShift
}

// Step is a scale degree relative to the clef's do.
type Step struct {
	Offset float64
	// Flat marks te, which also puts a flat on the syllable.
	Flat bool
}

var solfege = map[string]Step{
	"do":  {Offset: 0},
	"re":  {Offset: 0.5},
	"mi":  {Offset: 1},
	"fa":  {Offset: 1.5},
	"sol": {Offset: 2},
	"la":  {Offset: 2.5},
	"ti":  {Offset: 3},
	"te":  {Offset: 3, Flat: true},
}

// Split strips one trailing octave marker from code.
func Split(code string) (string, Octave) {
	switch {
	case strings.HasSuffix(code, "-"):
		return code[:len(code)-1], OctaveDown
	case strings.HasSuffix(code, "+"):
		return code[:len(code)-1], OctaveUp
	}
	return code, OctaveNone
}

// Lookup returns the scale step named by a solfège syllable.
func Lookup(name string) (Step, bool) {
	s, ok := solfege[name]
	return s, ok
}

// Context is the clef in force where a note is read.
type Context struct {
	Clef chant.Clef
	Line int
}

// Base is the staff position of do under the clef.
func (c Context) Base() float64 {
	base := float64(c.Line)
	if c.Clef == chant.ClefFa {
		base -= chant.FaClefShift
	}
	return base
}

// Pitch is a resolved note code.
type Pitch struct {
	Value float64
	Flat  bool
}

// Resolve maps a note code such as "sol", "re-" or "te+" to its staff position.
func Resolve(ctx Context, code string) (Pitch, bool) {
	name, octave := Split(code)
	step, ok := Lookup(name)
	if !ok {
		return Pitch{}, false
	}
	return Pitch{Value: ctx.Base() + step.Offset + octave.Shift(), Flat: step.Flat}, true
}
