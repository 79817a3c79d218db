package chant

import (
	"strings"
)

// Flag is one shape or context marker a note may carry.
type Flag uint8

const (
	Dot Flag = iota
	Rhombus
	Porrectus
	SecondPorrectus
	ThirdPorrectus
	VEpisema
	HEpisema
	Quilisma
	Liquescent
	Scandicus
	Torculus
	SecondTorculus
	ThirdTorculus
	Peak
	Ascending
	FirstDescending
	SecondDescending
	Jump
	StackedAscending
	QuarterBar
	HalfBar
	FullBar
	DoubleBar
	Repeated
	Clivis
	SecondClivis

	flagCount
)

var flagNames = [flagCount]string{
	Dot:              "DOT",
	Rhombus:          "RHOMBUS",
	Porrectus:        "PORRECTUS",
	SecondPorrectus:  "SECOND_PORRECTUS",
	ThirdPorrectus:   "THIRD_PORRECTUS",
	VEpisema:         "V_EPISEMA",
	HEpisema:         "H_EPISEMA",
	Quilisma:         "QUILISMA",
	Liquescent:       "LIQUESCENT",
	Scandicus:        "SCANDICUS",
	Torculus:         "TORCULUS",
	SecondTorculus:   "SECOND_TORCULUS",
	ThirdTorculus:    "THIRD_TORCULUS",
	Peak:             "PEAK",
	Ascending:        "ASCENDING",
	FirstDescending:  "FIRST_DESCENDING",
	SecondDescending: "SECOND_DESCENDING",
	Jump:             "JUMP",
	StackedAscending: "STACKED_ASCENDING",
	QuarterBar:       "QUARTER_BAR",
	HalfBar:          "HALF_BAR",
	FullBar:          "FULL_BAR",
	DoubleBar:        "DOUBLE_BAR",
	Repeated:         "REPEATED",
	Clivis:           "CLIVIS",
	SecondClivis:     "SECOND_CLIVIS",
}

// FlagCount is the size of the closed Flag enumeration.
const FlagCount = int(flagCount)

func (f Flag) String() string {
	if f >= flagCount {
		return "UNKNOWN"
	}
	return flagNames[f]
}

// ParseFlag maps an upper-case flag name back to its Flag.
func ParseFlag(name string) (Flag, bool) {
	for f, n := range flagNames {
		if n == name {
			return Flag(f), true
		}
	}
	return 0, false
}

// Flags is a set of Flag values.
type Flags uint32

const barMask = Flags(1)<<QuarterBar | Flags(1)<<HalfBar | Flags(1)<<FullBar | Flags(1)<<DoubleBar

// FlagsOf builds a set from the listed flags.
func FlagsOf(list ...Flag) Flags {
	var fs Flags
	for _, f := range list {
		fs = fs.With(f)
	}
	return fs
}

func (fs Flags) Has(f Flag) bool { return fs&(1<<f) != 0 }

func (fs Flags) With(f Flag) Flags { return fs | 1<<f }

func (fs Flags) Without(f Flag) Flags { return fs &^ (1 << f) }

func (fs *Flags) Set(f Flag) { *fs |= 1 << f }

func (fs *Flags) Clear(f Flag) { *fs &^= 1 << f }

// IsBar reports whether the set carries any bar-line kind.
func (fs Flags) IsBar() bool { return fs&barMask != 0 }

// BarKind returns the bar-line flag of the set, if any.
func (fs Flags) BarKind() (Flag, bool) {
	for _, f := range [...]Flag{QuarterBar, HalfBar, FullBar, DoubleBar} {
		if fs.Has(f) {
			return f, true
		}
	}
	return 0, false
}

// List returns the flags in enumeration order.
func (fs Flags) List() []Flag {
	out := make([]Flag, 0, 4)
	for f := Flag(0); f < flagCount; f++ {
		if fs.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Names returns the flag names in enumeration order.
func (fs Flags) Names() []string {
	list := fs.List()
	out := make([]string, len(list))
	for i, f := range list {
		out[i] = f.String()
	}
	return out
}

func (fs Flags) String() string {
	if fs == 0 {
		return "-"
	}
	return strings.Join(fs.Names(), "|")
}
