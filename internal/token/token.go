package token

import (
	"graduale/internal/source"
)

// Code is one comma-separated entry of a note group.
type Code struct {
	Text string
	Span source.Span
}

// Token is one whitespace-delimited piece of notation.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	Lead     string
	LeadSpan source.Span
	// Group reports whether a parenthesis group followed the lead.
	Group bool
	Codes []Code
}

// IsDirective reports whether the token is MODE, CLEF or BAR.
func (t Token) IsDirective() bool {
	switch t.Kind {
	case Mode, Clef, Bar:
		return true
	default:
		return false
	}
}

// CodeTexts returns the code strings of the group.
func (t Token) CodeTexts() []string {
	out := make([]string, len(t.Codes))
	for i, c := range t.Codes {
		out[i] = c.Text
	}
	return out
}
