// Package width computes note offsets, episema heights and syllable widths
// once a Document is fully parsed.
package width

import (
	"graduale/internal/chant"
)

// DefaultFontSize is the lyric text size, in pixels.
const DefaultFontSize = 60

// Measurer returns the rendered width of text at the given font size, in pixels.
type Measurer interface {
	Measure(text string, fontSize float64) float64
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(text string, fontSize float64) float64

func (f MeasureFunc) Measure(text string, fontSize float64) float64 { return f(text, fontSize) }

type Options struct {
	Measurer       Measurer // nil measures every label as zero wide
	FontSize       float64
	BaseNoteOffset int
}

func (o Options) withDefaults() Options {
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.BaseNoteOffset <= 0 {
		o.BaseNoteOffset = chant.BaseNoteOffset
	}
	return o
}

// Annotate fills Offset and EpisemaHeight of every note and Width of every syllable.
// It depends only on flags, values and labels, so running it again changes nothing.
func Annotate(doc *chant.Document, opts Options) {
	opts = opts.withDefaults()
	for s := range doc.Sections {
		sec := &doc.Sections[s]
		for i := range sec.Syllables {
			annotateSyllable(&sec.Syllables[i], opts)
		}
	}
}

func annotateSyllable(syl *chant.Syllable, opts Options) {
	total := 0
	if syl.HasFlat || syl.HasNeutral {
		total = opts.BaseNoteOffset
	}

	for i := range syl.Notes {
		var next *chant.Note
		if i+1 < len(syl.Notes) {
			next = &syl.Notes[i+1]
		}
		cur := &syl.Notes[i]
		cur.Offset = NoteOffset(cur, next, opts.BaseNoteOffset)
		total += cur.Offset
	}
	alignEpisemas(syl.Notes)

	text := 0
	if opts.Measurer != nil {
		text = int(opts.Measurer.Measure(syl.Text, opts.FontSize))
	}
	syl.Width = max(total, text)
}

// NoteOffset is the horizontal advance from cur to the note after it.
// next is nil for the last note of a syllable.
func NoteOffset(cur, next *chant.Note, base int) int {
	switch {
	case next != nil && (next.Flags.Has(chant.Liquescent) || next.Flags.Has(chant.StackedAscending)):
		return 0
	case cur.Flags.Has(chant.Dot):
		return base + 15
	case cur.Flags.Has(chant.Porrectus):
		return int(float64(base) * 2.5)
	case cur.Flags.Has(chant.Repeated) || cur.Flags.Has(chant.StackedAscending):
		return base + 5
	}
	return base
}
