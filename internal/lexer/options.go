package lexer

import (
	"graduale/internal/diag"
	"graduale/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда диагностики теряются, разбор продолжается
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
	}
}

func (lx *Lexer) errorf(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
