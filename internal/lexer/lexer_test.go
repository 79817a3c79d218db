package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"graduale/internal/diag"
	"graduale/internal/lexer"
	"graduale/internal/source"
	"graduale/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.chant", []byte(input)))
	bag := diag.NewBag(0)
	adapter := lexer.ReporterAdapter{Bag: bag}
	return lexer.New(file, lexer.Options{Reporter: adapter.Reporter()}), bag
}

type shape struct {
	Kind  token.Kind
	Lead  string
	Group bool
	Codes []string
}

func shapes(toks []token.Token) []shape {
	out := make([]shape, len(toks))
	for i, t := range toks {
		out[i] = shape{Kind: t.Kind, Lead: t.Lead, Group: t.Group}
		if len(t.Codes) > 0 {
			out[i].Codes = t.CodeTexts()
		}
	}
	return out
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []shape
	}{
		{
			name:  "empty",
			input: "",
			want:  []shape{},
		},
		{
			name:  "directives and syllables",
			input: "MODE(eight) CLEF(do,3) Ky(do,mi,sol) BAR(full)",
			want: []shape{
				{token.Mode, "MODE", true, []string{"eight"}},
				{token.Clef, "CLEF", true, []string{"do", "3"}},
				{token.Syllable, "Ky", true, []string{"do", "mi", "sol"}},
				{token.Bar, "BAR", true, []string{"full"}},
			},
		},
		{
			name:  "label only",
			input: "Ps. V.",
			want: []shape{
				{token.Syllable, "Ps.", false, nil},
				{token.Syllable, "V.", false, nil},
			},
		},
		{
			name:  "any whitespace separates",
			input: "  ri-(sol,fa)\n\tE(la)\r\n",
			want: []shape{
				{token.Syllable, "ri-", true, []string{"sol", "fa"}},
				{token.Syllable, "E", true, []string{"la"}},
			},
		},
		{
			name:  "empty group",
			input: "Ky()",
			want:  []shape{{token.Syllable, "Ky", true, nil}},
		},
		{
			name:  "bare directive keeps its kind",
			input: "BAR",
			want:  []shape{{token.Bar, "BAR", false, nil}},
		},
		{
			name:  "octave markers stay on the code",
			input: "e(la-,do+)",
			want:  []shape{{token.Syllable, "e", true, []string{"la-", "do+"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			got := shapes(lx.All())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if bag.Len() != 0 {
				t.Errorf("unexpected diagnostics: %v", bag.Messages())
			}
		})
	}
}

func TestLexerMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  shape
		code  diag.Code
		sev   diag.Severity
	}{
		{"extra parts", "Ky(do)mi", shape{token.Syllable, "Ky", true, []string{"do"}}, diag.LexExtraParts, diag.SevWarning},
		{"second group", "Ky(do)(mi)", shape{token.Syllable, "Ky", true, []string{"do"}}, diag.LexExtraParts, diag.SevWarning},
		{"unclosed", "Ky(do,mi", shape{token.Syllable, "Ky", true, []string{"do", "mi"}}, diag.LexUnclosedGroup, diag.SevWarning},
		{"stray paren", "Ky)do", shape{token.Syllable, "Ky", true, []string{"do"}}, diag.LexStrayParen, diag.SevWarning},
		{"empty code", "Ky(do,,mi)", shape{token.Syllable, "Ky", true, []string{"do", "mi"}}, diag.LexEmptyCode, diag.SevError},
		{"trailing comma", "Ky(do,)", shape{token.Syllable, "Ky", true, []string{"do"}}, diag.LexEmptyCode, diag.SevError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			got := shapes(lx.All())
			if diff := cmp.Diff([]shape{tt.want}, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if bag.Len() != 1 {
				t.Fatalf("want one diagnostic, got %v", bag.Messages())
			}
			d := bag.Items()[0]
			if d.Code != tt.code || d.Severity != tt.sev {
				t.Errorf("diagnostic = %s %s, want %s %s", d.Code.ID(), d.Severity, tt.code.ID(), tt.sev)
			}
		})
	}
}

func TestLexerSpans(t *testing.T) {
	input := "CLEF(do,3)  Ky(do,sol+)"
	lx, _ := makeTestLexer(input)
	toks := lx.All()
	if len(toks) != 2 {
		t.Fatalf("got %d tokens", len(toks))
	}
	ky := toks[1]
	if got := input[ky.Span.Start:ky.Span.End]; got != "Ky(do,sol+)" {
		t.Errorf("token span covers %q", got)
	}
	if got := input[ky.LeadSpan.Start:ky.LeadSpan.End]; got != "Ky" {
		t.Errorf("lead span covers %q", got)
	}
	for _, c := range ky.Codes {
		if got := input[c.Span.Start:c.Span.End]; got != c.Text {
			t.Errorf("code span covers %q, want %q", got, c.Text)
		}
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("Ky(do)")
	if tok := lx.Peek(); tok.Lead != "Ky" {
		t.Fatalf("Peek = %q", tok.Lead)
	}
	if tok := lx.Next(); tok.Lead != "Ky" {
		t.Fatalf("Next after Peek = %q", tok.Lead)
	}
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("want EOF, got %v", tok.Kind)
		}
	}
}
