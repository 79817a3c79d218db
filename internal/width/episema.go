package width

import (
	"graduale/internal/chant"
)

// alignEpisemas lines up the horizontal episemas of consecutive notes at the
// height of the highest note in the run.
func alignEpisemas(notes []chant.Note) {
	var (
		group   []int
		highest float64
	)
	flush := func() {
		for _, i := range group {
			notes[i].EpisemaHeight = EpisemaHeight(highest, notes[i].Value)
		}
		group = group[:0]
	}

	for i := range notes {
		notes[i].EpisemaHeight = chant.BaseEpisemaHeight
		if notes[i].Flags.Has(chant.HEpisema) {
			if len(group) == 0 || notes[i].Value > highest {
				highest = notes[i].Value
			}
			group = append(group, i)
		}
		if !notes[i].Flags.Has(chant.HEpisema) || i == len(notes)-1 {
			flush()
		}
	}
}

// EpisemaHeight is the episema height of a note at value in a run whose highest note is at top.
func EpisemaHeight(top, value float64) int {
	return chant.BaseEpisemaHeight + int((top-value)*chant.StaffSpace)
}
