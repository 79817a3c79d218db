// Package chant holds the note/syllable model of a parsed chant.
//
// A Document is an ordered list of Sections, one per clef directive. Each
// Section owns its Syllables; each Syllable owns the Notes sung on it. Note
// shapes are carried as Flags, a fixed bitset over the closed Flag
// enumeration.
//
// Values are staff positions: 1.0 to 4.0 are the four staff lines and every
// 0.5 step is the next line or space. Values outside that range sit above or
// below the staff.
package chant
