package token

// Kind represents the category of a notation token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Syllable is a lyric label with an optional note group.
	Syllable
	// Mode is the MODE(<name>) directive.
	Mode
	// Clef is the CLEF(<kind>,<line>) directive.
	Clef
	// Bar is the BAR(<kind>) directive.
	Bar
)

var directives = map[string]Kind{
	"MODE": Mode,
	"CLEF": Clef,
	"BAR":  Bar,
}

// LookupDirective returns the directive kind for a reserved lead.
func LookupDirective(lead string) (Kind, bool) {
	k, ok := directives[lead]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Syllable:
		return "Syllable"
	case Mode:
		return "Mode"
	case Clef:
		return "Clef"
	case Bar:
		return "Bar"
	}
	return "Invalid"
}
