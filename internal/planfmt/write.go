package planfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPretty, FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want pretty, json, yaml or msgpack)", s)
}

// Write encodes out in the given format.
func Write(w io.Writer, out *Output, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(out)
	case FormatPretty, "":
		return WritePretty(w, out)
	}
	return fmt.Errorf("unknown format %q", format)
}

// ReadMsgpack decodes an Output written with FormatMsgpack.
func ReadMsgpack(r io.Reader) (Output, error) {
	var out Output
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return Output{}, fmt.Errorf("decode plan: %w", err)
	}
	if out.Schema != Schema {
		return Output{}, fmt.Errorf("plan schema %d, want %d", out.Schema, Schema)
	}
	return out, nil
}

const textColumn = 14

// WritePretty prints the plan line by line, items in x order:
//
//	line 1  y=0
//	  clef do/3      x=10
//	  Ky             x=90     w=55   3, 4 JUMP|ASCENDING|STACKED_ASCENDING
//	  custos 5.5     x=1035
func WritePretty(w io.Writer, out *Output) error {
	pw := &prettyWriter{w: w}
	pw.printf("%s  mode %s  lines %d  height %d\n", out.Name, out.Mode, out.Lines, out.Height)
	for _, d := range out.Diagnostics {
		pw.printf("! %s\n", d)
	}

	type item struct {
		x    int
		text string
	}
	lines := make([][]item, out.Lines)
	ys := make([]int, out.Lines)
	add := func(line, x, y int, text string) {
		if line < 0 || line >= len(lines) {
			return
		}
		lines[line] = append(lines[line], item{x, text})
		ys[line] = y
	}
	for _, c := range out.Clefs {
		add(c.Line, c.X, c.Y, fmt.Sprintf("%s x=%d", pad(fmt.Sprintf("clef %s/%d", c.Clef, c.ClefLine)), c.X))
	}
	for _, p := range out.Placements {
		syl, _ := out.Syllable(p.Section, p.Syllable)
		add(p.Line, p.X, p.Y, strings.TrimRight(fmt.Sprintf("%s x=%-6d w=%-4d %s",
			pad(label(syl.Text)), p.X, p.Width, notes(syl.Notes)), " "))
	}
	for _, c := range out.Custodes {
		add(c.Line, c.X, c.Y, fmt.Sprintf("%s x=%d", pad(fmt.Sprintf("custos %g", c.Pitch)), c.X))
	}

	for i, items := range lines {
		slices.SortStableFunc(items, func(a, b item) int { return a.x - b.x })
		pw.printf("line %d  y=%d\n", i+1, ys[i])
		for _, it := range items {
			pw.printf("  %s\n", it.text)
		}
	}
	return pw.err
}

// WriteDocumentPretty prints the sections and syllables of an export, one syllable per line.
func WriteDocumentPretty(w io.Writer, out *Output) error {
	pw := &prettyWriter{w: w}
	pw.printf("%s  mode %s\n", out.Name, out.Mode)
	for _, d := range out.Diagnostics {
		pw.printf("! %s\n", d)
	}
	for i, sec := range out.Sections {
		pw.printf("section %d  clef %s/%d\n", i+1, sec.Clef, sec.Line)
		for _, syl := range sec.Syllables {
			pw.printf("  %s\n", strings.TrimRight(pad(label(syl.Text))+" "+notes(syl.Notes), " "))
		}
	}
	return pw.err
}

type prettyWriter struct {
	w   io.Writer
	err error
}

func (pw *prettyWriter) printf(format string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

func pad(s string) string {
	if runewidth.StringWidth(s) > textColumn {
		s = runewidth.Truncate(s, textColumn, "…")
	}
	return runewidth.FillRight(s, textColumn)
}

func label(text string) string {
	if strings.TrimSpace(text) == "" {
		return "|"
	}
	return text
}

func notes(ns []Note) string {
	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		if len(n.Flags) == 0 {
			parts = append(parts, fmt.Sprintf("%g", n.Value))
			continue
		}
		parts = append(parts, fmt.Sprintf("%g %s", n.Value, strings.Join(n.Flags, "|")))
	}
	return strings.Join(parts, ", ")
}
