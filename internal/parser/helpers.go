package parser

import (
	"graduale/internal/diag"
	"graduale/internal/source"
	"graduale/internal/token"
)

func (p *Parser) err(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) warn(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevWarning, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// args checks the argument count of a directive and reports the surplus.
// It returns false when fewer than want arguments were given.
func (p *Parser) args(tok token.Token, want int) bool {
	if len(tok.Codes) < want {
		p.err(diag.SynMissingArgument, tok.Span, tok.Lead+" directive is missing an argument")
		return false
	}
	if len(tok.Codes) > want {
		extra := tok.Codes[want].Span.Cover(tok.Codes[len(tok.Codes)-1].Span)
		p.warn(diag.SynExtraArgument, extra, "extra arguments of "+tok.Lead+" are ignored")
	}
	return true
}
