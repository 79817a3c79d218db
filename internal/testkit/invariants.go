// Package testkit checks structural invariants of parsed and laid out chants.
// Tests and fuzz harnesses share it.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"graduale/internal/chant"
	"graduale/internal/layout"
	"graduale/internal/source"
	"graduale/internal/token"
)

// CheckTokens verifies that tokens appear in source order, never overlap and
// carry exactly the bytes their span covers.
func CheckTokens(tokens []token.Token, sf *source.File) error {
	var prevEnd uint32
	for i, tok := range tokens {
		if err := checkSpan(tok.Span, sf); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %d starts at %d inside the previous token (end %d)", i, tok.Span.Start, prevEnd)
		}
		if got := string(sf.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			return fmt.Errorf("token %d text %q, span covers %q", i, tok.Text, got)
		}
		for j, code := range tok.Codes {
			if !within(code.Span, tok.Span) {
				return fmt.Errorf("token %d code %d span %v outside %v", i, j, code.Span, tok.Span)
			}
		}
		prevEnd = tok.Span.End
	}
	return nil
}

// CheckDocument verifies the span invariants of a parsed Document:
//  1. every span is non-empty, belongs to sf and lies within its content
//  2. notes lie inside their syllable, syllables after their section's CLEF
//  3. sections and syllables follow source order
func CheckDocument(doc *chant.Document, sf *source.File) error {
	if doc == nil || sf == nil {
		return fmt.Errorf("nil document or file")
	}
	var prevEnd uint32
	for s, sec := range doc.Sections {
		if err := checkSpan(sec.Span, sf); err != nil {
			return fmt.Errorf("section %d: %w", s, err)
		}
		if sec.Span.Start < prevEnd {
			return fmt.Errorf("section %d at %d precedes earlier content ending at %d", s, sec.Span.Start, prevEnd)
		}
		if sec.Line < 1 || sec.Line > 4 {
			return fmt.Errorf("section %d clef line %d outside the staff", s, sec.Line)
		}
		prevEnd = sec.Span.End
		for i, syl := range sec.Syllables {
			if err := checkSpan(syl.Span, sf); err != nil {
				return fmt.Errorf("syllable %d/%d: %w", s, i, err)
			}
			if syl.Span.Start < prevEnd {
				return fmt.Errorf("syllable %d/%d at %d precedes earlier content ending at %d", s, i, syl.Span.Start, prevEnd)
			}
			prevEnd = syl.Span.End
			for n, note := range syl.Notes {
				if !within(note.Span, syl.Span) {
					return fmt.Errorf("note %d of syllable %d/%d span %v outside %v", n, s, i, note.Span, syl.Span)
				}
			}
			if syl.IsBar() && syl.Text != chant.BarText {
				return fmt.Errorf("bar syllable %d/%d has label %q", s, i, syl.Text)
			}
		}
	}
	return nil
}

// CheckPlan verifies a Plan against the Document it was built from.
func CheckPlan(doc *chant.Document, plan *layout.Plan, opts layout.Options) error {
	if got, want := len(plan.Placements), doc.SyllableCount(); got != want {
		return fmt.Errorf("%d placements for %d syllables", got, want)
	}
	overflow := make(map[layout.SyllableRef]bool, len(plan.Overflows))
	for _, o := range plan.Overflows {
		overflow[o.Ref] = true
	}

	first := make(map[int]layout.SyllableRef) // line -> первый слог строки
	prev := layout.Placement{Ref: layout.SyllableRef{Section: -1}, Line: -1}
	for k, p := range plan.Placements {
		syl := doc.Sections[p.Ref.Section].Syllables[p.Ref.Index]
		if p.Width != syl.Width {
			return fmt.Errorf("placement %d width %d, syllable width %d", k, p.Width, syl.Width)
		}
		if p.Line < 0 || p.Line >= plan.Lines {
			return fmt.Errorf("placement %d on line %d of %d", k, p.Line, plan.Lines)
		}
		if p.Y != p.Line*opts.LineHeight {
			return fmt.Errorf("placement %d y=%d on line %d", k, p.Y, p.Line)
		}
		if p.X < opts.LeftMargin {
			return fmt.Errorf("placement %d x=%d left of the margin", k, p.X)
		}
		if p.X+p.Width > opts.LineWidth-opts.TrailingMargin && !overflow[p.Ref] {
			return fmt.Errorf("placement %d ends at %d past the line and is not an overflow", k, p.X+p.Width)
		}
		switch {
		case p.Line < prev.Line:
			return fmt.Errorf("placement %d goes back to line %d", k, p.Line)
		case p.Line == prev.Line && p.X <= prev.X:
			return fmt.Errorf("placement %d x=%d does not advance past %d", k, p.X, prev.X)
		case p.Line > prev.Line:
			first[p.Line] = p.Ref
		}
		prev = p
	}

	for _, c := range plan.Custodes {
		ref, ok := first[c.Line+1]
		if !ok || ref != c.Ref {
			return fmt.Errorf("custos on line %d does not preview the first syllable of the next line", c.Line)
		}
		syl := doc.Sections[c.Ref.Section].Syllables[c.Ref.Index]
		if n, ok := syl.FirstPitch(); !ok || n.Value != c.Pitch {
			return fmt.Errorf("custos pitch %g does not match syllable %d/%d", c.Pitch, c.Ref.Section, c.Ref.Index)
		}
	}
	if plan.Lines > 0 && plan.MaxY != (plan.Lines-1)*opts.LineHeight {
		return fmt.Errorf("maxY %d for %d lines", plan.MaxY, plan.Lines)
	}
	return nil
}

func checkSpan(sp source.Span, sf *source.File) error {
	if sp.File != sf.ID {
		return fmt.Errorf("span %v points to file %d, want %d", sp, sp.File, sf.ID)
	}
	if sp.End <= sp.Start {
		return fmt.Errorf("span %v is empty", sp)
	}
	n, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if sp.End > n {
		return fmt.Errorf("span %v ends beyond content (%d bytes)", sp, n)
	}
	return nil
}

func within(inner, outer source.Span) bool {
	return inner.File == outer.File && inner.Start >= outer.Start && inner.End <= outer.End
}
