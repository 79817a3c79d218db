package diag

import (
	"graduale/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// String renders the diagnostic as the single human-readable line shown to users.
func (d Diagnostic) String() string {
	return d.Severity.String() + " " + d.Code.ID() + ": " + d.Message
}
