package infer

import "graduale/internal/chant"

// Window holds the notes of one syllable while they are being read.
// A fresh Window is used for every syllable.
type Window struct {
	notes []chant.Note
}

// Push finalizes note against the last pushed note and appends it.
func (w *Window) Push(note chant.Note) {
	if n := len(w.notes); n > 0 {
		Step(&w.notes[n-1], &note)
	}
	w.notes = append(w.notes, note)
}

// Len returns the number of finalized notes.
func (w *Window) Len() int { return len(w.notes) }

// Notes hands the finalized notes over; the Window must not be used afterwards.
func (w *Window) Notes() []chant.Note {
	notes := w.notes
	w.notes = nil
	return notes
}
