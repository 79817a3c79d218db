package lexer

import (
	"bytes"

	"graduale/internal/diag"
	"graduale/internal/source"
	"graduale/internal/token"
)

// split breaks one token into its lead and the codes of its note group.
//
//	Ky(do,mi,sol)  lead "Ky", codes do mi sol
//	Ps.            lead "Ps.", no group
//
// The lead runs to the first parenthesis, the group to the next one.
func (lx *Lexer) split(sp source.Span) token.Token {
	text := lx.file.Content[sp.Start:sp.End]
	tok := token.Token{
		Kind: token.Syllable,
		Span: sp,
		Text: string(text),
	}

	open := bytes.IndexAny(text, "()")
	if open < 0 {
		tok.Lead = tok.Text
		tok.LeadSpan = sp
		tok.Kind = kindOf(tok.Lead)
		return tok
	}

	tok.Lead = string(text[:open])
	tok.LeadSpan = sp.Sub(0, uint32(open))
	tok.Kind = kindOf(tok.Lead)
	tok.Group = true

	if text[open] == ')' {
		lx.warn(diag.LexStrayParen, sp.Sub(uint32(open), uint32(open)+1),
			"closing parenthesis without an opening one")
	}

	innerStart := open + 1
	innerEnd := len(text)
	if rel := bytes.IndexAny(text[innerStart:], "()"); rel >= 0 {
		innerEnd = innerStart + rel
		if rest := text[innerEnd+1:]; len(bytes.Trim(rest, "()")) > 0 {
			lx.warn(diag.LexExtraParts, sp.Sub(uint32(innerEnd+1), uint32(len(text))),
				"text after the note group of "+tok.Lead+" is ignored")
		}
	} else if text[open] == '(' {
		lx.warn(diag.LexUnclosedGroup, sp.Sub(uint32(open), uint32(len(text))),
			"note group of "+tok.Lead+" is not closed")
	}

	tok.Codes = lx.codes(text, sp, innerStart, innerEnd)
	return tok
}

func (lx *Lexer) codes(text []byte, sp source.Span, from, to int) []token.Code {
	if from >= to {
		return nil
	}
	var out []token.Code
	start := from
	for i := from; i <= to; i++ {
		if i < to && text[i] != ',' {
			continue
		}
		if i == start {
			lx.errorf(diag.LexEmptyCode, sp.Sub(uint32(start), uint32(i)), "empty code in note group")
		} else {
			out = append(out, token.Code{
				Text: string(text[start:i]),
				Span: sp.Sub(uint32(start), uint32(i)),
			})
		}
		start = i + 1
	}
	return out
}

func kindOf(lead string) token.Kind {
	if k, ok := token.LookupDirective(lead); ok {
		return k
	}
	return token.Syllable
}
