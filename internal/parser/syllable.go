package parser

import (
	"fmt"
	"strings"

	"graduale/internal/chant"
	"graduale/internal/diag"
	"graduale/internal/infer"
	"graduale/internal/pitch"
	"graduale/internal/token"
)

var flagCodes = map[string]chant.Flag{
	"liq":   chant.Liquescent,
	"dot":   chant.Dot,
	"quil":  chant.Quilisma,
	"por":   chant.Porrectus,
	"torc":  chant.Torculus,
	"scand": chant.Scandicus,
	"cliv":  chant.Clivis,
	"v_epi": chant.VEpisema,
	"h_epi": chant.HEpisema,
}

const neutralCode = "neut"

// parseSyllable reads a lyric label and its note codes.
// Everything it tracks is local to the syllable.
func (p *Parser) parseSyllable(tok token.Token) {
	sec := p.current(tok)
	if sec == nil {
		return
	}

	text := strings.ReplaceAll(tok.Lead, "_", " ")
	syl := chant.Syllable{
		Text:    text,
		WordEnd: !strings.HasSuffix(text, "-"),
		Span:    tok.Span,
	}

	ctx := pitch.Context{Clef: sec.Clef, Line: sec.Line}
	var (
		window  infer.Window
		pending chant.Flags
		lastTag token.Code
	)
	for _, code := range tok.Codes {
		name, octave := pitch.Split(code.Text)

		if res, ok := pitch.Resolve(ctx, code.Text); ok {
			note := chant.NewNote(res.Value, pending)
			note.Span = code.Span
			window.Push(note)
			syl.HasFlat = syl.HasFlat || res.Flat
			pending = 0
			continue
		}

		if octave != pitch.OctaveNone {
			if _, known := flagCodes[name]; known || name == neutralCode {
				p.warn(diag.SynOctaveOnFlag, code.Span,
					fmt.Sprintf("octave marker on %q is ignored", name))
			}
		}
		switch flag, ok := flagCodes[name]; {
		case ok:
			pending.Set(flag)
			lastTag = code
		case name == neutralCode:
			syl.HasNeutral = true
		default:
			p.err(diag.SynUnknownCode, code.Span,
				fmt.Sprintf("%q is not a recognized note or flag", code.Text))
		}
	}

	if pending != 0 {
		p.warn(diag.SynDanglingFlags, lastTag.Span,
			fmt.Sprintf("flags %s of %q have no note to attach to", pending, text))
	}
	if window.Len() > 0 {
		syl.Notes = window.Notes()
	}
	sec.Syllables = append(sec.Syllables, syl)
}
