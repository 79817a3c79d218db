package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"graduale/internal/diag"
	"graduale/internal/source"
)

type palette struct {
	sev   map[diag.Severity]*color.Color
	code  *color.Color
	caret *color.Color
	gut   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		code:  color.New(color.Faint),
		caret: color.New(color.FgGreen, color.Bold),
		gut:   color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo], p.code, p.caret, p.gut} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span и заметки.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		sev, ok := pal.sev[d.Severity]
		if !ok {
			sev = pal.sev[diag.SevInfo]
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			position(fs, d.Primary, opts.PathMode),
			sev.Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message)
		if opts.ShowSource {
			writeSource(w, fs, d.Primary, pal)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  note: %s: %s\n", position(fs, n.Span, opts.PathMode), n.Msg)
			}
		}
	}
}

func writeSource(w io.Writer, fs *source.FileSet, span source.Span, pal palette) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := strings.ReplaceAll(f.GetLine(start.Line), "\t", " ")
	if line == "" {
		return
	}

	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	pad := runewidth.StringWidth(line[:from])
	under := max(runewidth.StringWidth(line[from:max(from, to)]), 1)

	gutter := fmt.Sprintf("%4d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", pal.gut.Sprint(gutter), line)
	fmt.Fprintf(w, "%s%s%s\n",
		pal.gut.Sprint(strings.Repeat(" ", len(gutter)-2)+"| "),
		strings.Repeat(" ", pad),
		pal.caret.Sprint("^"+strings.Repeat("~", under-1)))
}

// Short печатает одну строку на диагностику: path:line:col: SEV CODE: message.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n", position(fs, d.Primary, mode), d.Severity, d.Code.ID(), d.Message)
	}
}
