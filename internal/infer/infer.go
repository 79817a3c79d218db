// Package infer derives contextual neume flags by comparing each note
// with the note sung immediately before it on the same syllable.
package infer

import (
	"graduale/internal/chant"
)

// Step amends prev and cur for the move from prev to cur.
// prev is the only earlier note a step may touch.
func Step(prev, cur *chant.Note) {
	continueGroup(prev.Flags, &cur.Flags)

	delta := cur.Value - prev.Value
	if delta > 0.5 || delta < -0.5 {
		cur.Flags.Set(chant.Jump)
		// конец porrectus не рисуется стопкой
		if prev.Flags.Has(chant.ThirdPorrectus) {
			prev.Flags.Clear(chant.StackedAscending)
		}
	}

	switch {
	case delta < 0:
		descend(prev, cur)
	case delta > 0:
		ascend(prev, cur)
	default:
		prev.Flags.Set(chant.Repeated)
	}
}

func continueGroup(prev chant.Flags, cur *chant.Flags) {
	if prev.Has(chant.Torculus) {
		cur.Set(chant.SecondTorculus)
	}
	if prev.Has(chant.SecondTorculus) {
		cur.Set(chant.ThirdTorculus)
	}
	if prev.Has(chant.Porrectus) {
		cur.Set(chant.SecondPorrectus)
	}
	if prev.Has(chant.SecondPorrectus) {
		cur.Set(chant.ThirdPorrectus)
	}
}

func descend(prev, cur *chant.Note) {
	if prev.Flags.Has(chant.Ascending) {
		prev.Flags.Set(chant.Peak)
	}
	if prev.Flags.Has(chant.Clivis) {
		cur.Flags.Set(chant.SecondClivis)
	}
	if cur.Flags.Has(chant.Scandicus) {
		return
	}

	// three descending notes in a row turn into rhombi
	switch {
	case prev.Flags.Has(chant.Rhombus) &&
		!prev.Flags.Has(chant.Dot) &&
		!cur.Flags.Has(chant.Torculus):
		cur.Flags.Set(chant.Rhombus)
	case prev.Flags.Has(chant.SecondDescending) &&
		!prev.Flags.Has(chant.Dot) &&
		!prev.Flags.Has(chant.ThirdTorculus) &&
		!cur.Flags.Has(chant.Torculus):
		prev.Flags.Clear(chant.SecondDescending)
		prev.Flags.Set(chant.Rhombus)
		cur.Flags.Set(chant.Rhombus)
	default:
		if !prev.Flags.Has(chant.StackedAscending) {
			prev.Flags.Set(chant.FirstDescending)
		}
		cur.Flags.Set(chant.SecondDescending)
	}
}

func ascend(prev, cur *chant.Note) {
	cur.Flags.Set(chant.Ascending)
	if StackExcluded(prev.Flags, cur.Flags) {
		return
	}
	cur.Flags.Set(chant.StackedAscending)
	prev.Flags.Clear(chant.Jump)
}

// StackExcluded reports whether an ascending note must not be drawn
// directly above its predecessor.
func StackExcluded(prev, cur chant.Flags) bool {
	return prev.Has(chant.StackedAscending) ||
		prev.Has(chant.Rhombus) ||
		prev.Has(chant.Torculus) ||
		prev.Has(chant.ThirdTorculus) ||
		cur.Has(chant.Porrectus) ||
		cur.Has(chant.HEpisema) || prev.Has(chant.HEpisema) ||
		prev.Has(chant.Scandicus) ||
		prev.Has(chant.SecondClivis) ||
		cur.Has(chant.Clivis) ||
		cur.Has(chant.Quilisma)
}
