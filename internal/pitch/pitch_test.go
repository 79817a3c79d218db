package pitch

import (
	"testing"

	"graduale/internal/chant"
)

func TestResolve(t *testing.T) {
	do3 := Context{Clef: chant.ClefDo, Line: 3}
	fa2 := Context{Clef: chant.ClefFa, Line: 2}
	do4 := Context{Clef: chant.ClefDo, Line: 4}

	tests := []struct {
		name string
		ctx  Context
		code string
		want float64
		flat bool
	}{
		{"do on do clef", do3, "do", 3, false},
		{"mi", do3, "mi", 4, false},
		{"sol", do3, "sol", 5, false},
		{"fa clef base", fa2, "do", 0.5, false},
		{"fa clef sol", fa2, "sol", 2.5, false},
		{"fa clef fa", fa2, "fa", 2, false},
		{"te is flat", do3, "te", 6, true},
		{"ti", do3, "ti", 6, false},
		{"octave down", do4, "la-", 4 + 2.5 - 3.5, false},
		{"octave up", do3, "re+", 3 + 0.5 + 3.5, false},
		{"flat octave down", fa2, "te-", 0.5 + 3 - 3.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.ctx, tt.code)
			if !ok {
				t.Fatalf("Resolve(%q) not ok", tt.code)
			}
			if got.Value != tt.want || got.Flat != tt.flat {
				t.Errorf("Resolve(%q) = %+v, want value %v flat %v", tt.code, got, tt.want, tt.flat)
			}
		})
	}
}

func TestResolveRejectsNonNotes(t *testing.T) {
	ctx := Context{Clef: chant.ClefDo, Line: 3}
	for _, code := range []string{"", "-", "dot", "neut", "do--", "DO", "so"} {
		if p, ok := Resolve(ctx, code); ok {
			t.Errorf("Resolve(%q) = %+v, want failure", code, p)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	codes := []string{"do", "re", "mi", "fa", "sol", "la", "ti", "te"}
	for _, clef := range []chant.Clef{chant.ClefDo, chant.ClefFa, chant.ClefUnknown} {
		for line := 1; line <= 4; line++ {
			ctx := Context{Clef: clef, Line: line}
			for _, code := range codes {
				for _, marker := range []string{"", "-", "+"} {
					a, _ := Resolve(ctx, code+marker)
					b, _ := Resolve(ctx, code+marker)
					if a != b {
						t.Fatalf("Resolve(%v, %q) not deterministic: %v vs %v", ctx, code+marker, a, b)
					}
				}
			}
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in     string
		name   string
		octave Octave
	}{
		{"sol", "sol", OctaveNone},
		{"sol-", "sol", OctaveDown},
		{"sol+", "sol", OctaveUp},
		{"dot-", "dot", OctaveDown},
		{"-", "", OctaveDown},
	}
	for _, tt := range tests {
		name, octave := Split(tt.in)
		if name != tt.name || octave != tt.octave {
			t.Errorf("Split(%q) = %q, %v", tt.in, name, octave)
		}
	}
}
