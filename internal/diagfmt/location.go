package diagfmt

import (
	"fmt"

	"graduale/internal/source"
)

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	return f.FormatPath(mode.format(), fs.BaseDir())
}

// position renders span as path:line:col.
func position(fs *source.FileSet, span source.Span, mode PathMode) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(fs, f, mode), start.Line, start.Col)
}
