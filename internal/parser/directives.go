package parser

import (
	"fmt"
	"strconv"

	"graduale/internal/chant"
	"graduale/internal/diag"
	"graduale/internal/token"
)

// MODE(<name>); the latest directive wins.
func (p *Parser) parseMode(tok token.Token) {
	if !p.args(tok, 1) {
		return
	}
	arg := tok.Codes[0]
	mode, ok := chant.ParseMode(arg.Text)
	if !ok {
		p.err(diag.SynUnknownMode, arg.Span, fmt.Sprintf("%q is an invalid mode", arg.Text))
		return
	}
	p.doc.Mode = mode
}

// CLEF(<kind>,<line>) always opens a section, even when its arguments are bad.
func (p *Parser) parseClef(tok token.Token) {
	sec := chant.Section{Clef: chant.ClefUnknown, Line: DefaultClefLine, Span: tok.Span}

	if len(tok.Codes) == 0 {
		p.err(diag.SynMissingArgument, tok.Span, "CLEF directive is missing its kind and line")
	} else {
		kind := tok.Codes[0]
		if clef, ok := chant.ParseClef(kind.Text); ok {
			sec.Clef = clef
		} else {
			p.err(diag.SynUnknownClef, kind.Span, fmt.Sprintf("%q is an invalid clef", kind.Text))
		}
	}

	if len(tok.Codes) == 1 {
		p.err(diag.SynBadClefLine, tok.Span,
			fmt.Sprintf("CLEF directive has no line, using line %d", DefaultClefLine))
	}
	if len(tok.Codes) >= 2 {
		sec.Line = p.clefLine(tok.Codes[1])
	}
	if len(tok.Codes) > 2 {
		p.args(tok, 2)
	}

	p.doc.Sections = append(p.doc.Sections, sec)
	p.section = len(p.doc.Sections) - 1
}

func (p *Parser) clefLine(arg token.Code) int {
	line, err := strconv.Atoi(arg.Text)
	if err != nil {
		p.err(diag.SynBadClefLine, arg.Span,
			fmt.Sprintf("%q is not a clef line, using line %d", arg.Text, DefaultClefLine))
		return DefaultClefLine
	}
	if line < 1 || line > 4 {
		clamped := min(max(line, 1), 4)
		p.warn(diag.SynClefLineRange, arg.Span,
			fmt.Sprintf("clef line %d is outside the staff, using line %d", line, clamped))
		return clamped
	}
	return line
}

var barKinds = map[string]chant.Flag{
	"quarter": chant.QuarterBar,
	"half":    chant.HalfBar,
	"full":    chant.FullBar,
	"double":  chant.DoubleBar,
}

// BAR(<kind>) appends a one-note bar syllable to the open section.
func (p *Parser) parseBar(tok token.Token) {
	sec := p.current(tok)
	if sec == nil || !p.args(tok, 1) {
		return
	}
	arg := tok.Codes[0]
	kind, ok := barKinds[arg.Text]
	if !ok {
		p.err(diag.SynUnknownBar, arg.Span, fmt.Sprintf("%q is an invalid bar", arg.Text))
		return
	}
	note := chant.NewNote(chant.BarPlaceholderValue, chant.FlagsOf(kind))
	note.Span = tok.Span
	sec.Syllables = append(sec.Syllables, chant.Syllable{
		Text:    chant.BarText,
		Notes:   []chant.Note{note},
		WordEnd: true,
		Span:    tok.Span,
	})
}
