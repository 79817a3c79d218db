// Package layout breaks a width-annotated Document into staff lines.
//
// Break walks the sections in order with a single cursor (x, y, line). A line
// wraps before a syllable that would cross Options.LineWidth-TrailingMargin;
// the wrapped line starts with a clef and the line it closes ends with a custos
// for the first pitch of that syllable. A line that holds no syllable yet never
// wraps: an over-wide syllable is placed anyway and reported as an Overflow.
package layout

import (
	"graduale/internal/chant"
)

type breaker struct {
	opts Options
	plan *Plan

	x, y, line int
	placed     int  // syllables on the current line
	custos     bool // the next placed syllable opens a wrapped line
}

// Break computes placements for doc. It never modifies doc.
func Break(doc *chant.Document, opts Options) *Plan {
	b := &breaker{
		opts: opts,
		plan: &Plan{
			lineHeight:           opts.LineHeight,
			diagnosticLineHeight: opts.DiagnosticLineHeight,
		},
		x: opts.LeftMargin,
	}
	if len(doc.Sections) == 0 {
		return b.plan
	}
	b.plan.Lines = 1

	for s := range doc.Sections {
		sec := &doc.Sections[s]
		if b.placed > 0 && b.x+opts.ClefWidth > opts.limit() {
			b.wrap()
		}
		b.clef(s, sec)
		for i := range sec.Syllables {
			b.place(SyllableRef{Section: s, Index: i}, sec)
		}
	}
	b.plan.MaxY = b.y
	return b.plan
}

func (b *breaker) clef(s int, sec *chant.Section) {
	b.plan.Clefs = append(b.plan.Clefs, ClefMark{
		Section:  s,
		Clef:     sec.Clef,
		ClefLine: sec.Line,
		Line:     b.line,
		X:        b.x,
		Y:        b.y,
	})
	b.x += b.opts.ClefWidth
}

func (b *breaker) wrap() {
	b.y += b.opts.LineHeight
	b.line++
	b.plan.Lines++
	b.x = b.opts.LeftMargin
	b.placed = 0
	b.custos = true
}

func (b *breaker) place(ref SyllableRef, sec *chant.Section) {
	syl := &sec.Syllables[ref.Index]
	limit := b.opts.limit()

	if b.placed > 0 && b.x+syl.Width > limit {
		b.wrap()
		b.clef(ref.Section, sec)
	}
	if b.x+syl.Width > limit {
		b.plan.Overflows = append(b.plan.Overflows, Overflow{
			Ref:       ref,
			Width:     syl.Width,
			Available: limit - b.x,
		})
	}

	if b.custos {
		b.custos = false
		if first, ok := syl.FirstPitch(); ok {
			b.plan.Custodes = append(b.plan.Custodes, Custos{
				Ref:           ref,
				Pitch:         first.Value,
				Flags:         first.Flags,
				EpisemaHeight: first.EpisemaHeight,
				Line:          b.line - 1,
				X:             b.opts.LineWidth - b.opts.CustosInset,
				Y:             b.y - b.opts.LineHeight,
			})
		}
	}

	b.plan.Placements = append(b.plan.Placements, Placement{
		Ref:   ref,
		Line:  b.line,
		X:     b.x,
		Y:     b.y,
		Width: syl.Width,
	})
	b.placed++

	if syl.WordEnd {
		b.x += syl.Width + b.opts.WordOffset
	} else {
		b.x += syl.Width + b.opts.SyllableOffset
	}
}
