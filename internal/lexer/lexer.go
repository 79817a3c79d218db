package lexer

import (
	"graduale/internal/source"
	"graduale/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.cursor.SkipWhile(isSpace)
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}

	start := lx.cursor.Mark()
	lx.cursor.SkipWhile(func(b byte) bool { return !isSpace(b) })
	return lx.split(lx.cursor.SpanFrom(start))
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer, EOF excluded.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}
