package chant

import (
	"graduale/internal/source"
)

const (
	// StaffSpace is the pixel distance between two staff lines.
	StaffSpace = 48
	// BaseNoteOffset is the default horizontal advance after a note.
	BaseNoteOffset = 20
	// BaseEpisemaHeight is the default height of a horizontal episema above its note.
	BaseEpisemaHeight = StaffSpace/4 - 3
	// AccidentalWidth is the room taken by a flat or natural sign before the first note.
	AccidentalWidth = BaseNoteOffset

	// FaClefShift is how far a Fa clef sits below the equivalent Do clef.
	FaClefShift = 1.5
	// OctaveShift is the staff distance of one octave.
	OctaveShift = 3.5

	// BarPlaceholderValue is the value stored on bar-line notes; it carries no meaning.
	BarPlaceholderValue = 4.0
	// BarText is the label of a bar-line syllable.
	BarText = " "
)

// Note is one sung pitch (or a bar line) with its shape flags.
type Note struct {
	Value         float64
	Flags         Flags
	Offset        int
	EpisemaHeight int
	Span          source.Span
}

// NewNote returns a note with default offset and episema height.
func NewNote(value float64, flags Flags) Note {
	return Note{
		Value:         value,
		Flags:         flags,
		Offset:        BaseNoteOffset,
		EpisemaHeight: BaseEpisemaHeight,
	}
}

// Syllable is one lyric label with the notes sung on it.
type Syllable struct {
	Text       string
	Notes      []Note
	WordEnd    bool
	HasFlat    bool
	HasNeutral bool
	Width      int
	Span       source.Span
}

// IsBar reports whether the syllable is a bar line.
func (s *Syllable) IsBar() bool {
	return len(s.Notes) == 1 && s.Notes[0].Flags.IsBar()
}

// FirstPitch returns the first note when the syllable carries pitched notes.
func (s *Syllable) FirstPitch() (Note, bool) {
	if len(s.Notes) == 0 || s.IsBar() {
		return Note{}, false
	}
	return s.Notes[0], true
}

// Section is the run of syllables governed by one clef.
type Section struct {
	Clef      Clef
	Line      int
	Syllables []Syllable
	Span      source.Span
}

// FaMarker returns the extra note drawn in front of a Fa clef.
func (s *Section) FaMarker() (Note, bool) {
	if s.Clef != ClefFa {
		return Note{}, false
	}
	return NewNote(float64(s.Line), FlagsOf(StackedAscending, Jump)), true
}

// Document is a parsed chant.
type Document struct {
	Mode     Mode
	Sections []Section
}

// SyllableCount returns the number of syllables over all sections.
func (d *Document) SyllableCount() int {
	n := 0
	for i := range d.Sections {
		n += len(d.Sections[i].Syllables)
	}
	return n
}

// NoteCount returns the number of notes over all sections, bar lines included.
func (d *Document) NoteCount() int {
	n := 0
	for i := range d.Sections {
		for j := range d.Sections[i].Syllables {
			n += len(d.Sections[i].Syllables[j].Notes)
		}
	}
	return n
}
