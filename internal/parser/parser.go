// Package parser builds a chant.Document from notation tokens.
// Malformed input is reported through diag.Reporter and never stops the parse.
package parser

import (
	"graduale/internal/chant"
	"graduale/internal/diag"
	"graduale/internal/lexer"
	"graduale/internal/source"
	"graduale/internal/token"
)

// DefaultClefLine is used when a CLEF line cannot be read.
const DefaultClefLine = 3

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser - состояние парсера на один файл
type Parser struct {
	lx      *lexer.Lexer
	opts    Options
	doc     *chant.Document
	section int // индекс открытой секции, -1 до первого CLEF
}

// Parse tokenizes and parses one chant text.
func Parse(file *source.File, opts Options) *chant.Document {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return ParseFile(lx, opts)
}

// ParseFile - входная точка для разбора одного файла поверх готового лексера.
func ParseFile(lx *lexer.Lexer, opts Options) *chant.Document {
	p := Parser{
		lx:      lx,
		opts:    opts,
		doc:     &chant.Document{},
		section: -1,
	}
	p.parseTokens()
	return p.doc
}

func (p *Parser) parseTokens() {
	for {
		tok := p.lx.Next()
		if tok.Kind == token.EOF {
			return
		}
		if tok.IsDirective() && !tok.Group {
			p.warn(diag.SynDirectiveWithoutGroup, tok.Span, tok.Lead+" needs an argument group, token skipped")
			continue
		}
		switch tok.Kind {
		case token.Mode:
			p.parseMode(tok)
		case token.Clef:
			p.parseClef(tok)
		case token.Bar:
			p.parseBar(tok)
		default:
			p.parseSyllable(tok)
		}
	}
}

// current returns the open section, reporting when there is none.
func (p *Parser) current(tok token.Token) *chant.Section {
	if p.section < 0 {
		p.err(diag.SynClefRequired, tok.Span, "a clef is needed before any notes")
		return nil
	}
	return &p.doc.Sections[p.section]
}
