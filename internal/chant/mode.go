package chant

// Mode is one of the eight chant modes. It is descriptive only.
type Mode uint8

const (
	ModeUnset Mode = iota
	ModeOne
	ModeTwo
	ModeThree
	ModeFour
	ModeFive
	ModeSix
	ModeSeven
	ModeEight
)

var modeNames = map[string]Mode{
	"one":   ModeOne,
	"two":   ModeTwo,
	"three": ModeThree,
	"four":  ModeFour,
	"five":  ModeFive,
	"six":   ModeSix,
	"seven": ModeSeven,
	"eight": ModeEight,
}

// ParseMode maps a MODE directive argument to a Mode.
func ParseMode(name string) (Mode, bool) {
	m, ok := modeNames[name]
	return m, ok
}

func (m Mode) String() string {
	for name, v := range modeNames {
		if v == m {
			return name
		}
	}
	return "unset"
}

// Clef is the kind of clef opening a Section.
type Clef uint8

const (
	// ClefUnknown marks a clef directive whose kind could not be read.
	ClefUnknown Clef = iota
	ClefDo
	ClefFa
)

// ParseClef maps a CLEF directive kind to a Clef.
func ParseClef(name string) (Clef, bool) {
	switch name {
	case "do":
		return ClefDo, true
	case "fa":
		return ClefFa, true
	}
	return ClefUnknown, false
}

func (c Clef) String() string {
	switch c {
	case ClefDo:
		return "do"
	case ClefFa:
		return "fa"
	}
	return "unknown"
}
