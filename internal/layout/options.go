package layout

// Options describes the staff geometry, in pixels.
type Options struct {
	LineWidth      int // ширина холста
	LeftMargin     int
	TrailingMargin int // запас справа, который не занимают слоги
	ClefWidth      int
	LineHeight     int
	WordOffset     int // gap after the last syllable of a word
	SyllableOffset int // gap inside a word
	// CustosInset is the distance of the custos from the right edge of the line it closes.
	CustosInset          int
	DiagnosticLineHeight int
}

// Default geometry of a chant page.
const (
	DefaultLineWidth            = 1080
	DefaultLeftMargin           = 10
	DefaultTrailingMargin       = 45
	DefaultClefWidth            = 80
	DefaultLineHeight           = 400
	DefaultWordOffset           = 45
	DefaultSyllableOffset       = 25
	DefaultCustosInset          = 45
	DefaultDiagnosticLineHeight = 50
)

// DefaultOptions returns the standard geometry for a canvas lineWidth pixels wide.
func DefaultOptions(lineWidth int) Options {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	return Options{
		LineWidth:            lineWidth,
		LeftMargin:           DefaultLeftMargin,
		TrailingMargin:       DefaultTrailingMargin,
		ClefWidth:            DefaultClefWidth,
		LineHeight:           DefaultLineHeight,
		WordOffset:           DefaultWordOffset,
		SyllableOffset:       DefaultSyllableOffset,
		CustosInset:          DefaultCustosInset,
		DiagnosticLineHeight: DefaultDiagnosticLineHeight,
	}
}

// limit is the rightmost x a syllable may reach.
func (o Options) limit() int {
	return o.LineWidth - o.TrailingMargin
}
