package testkit

import (
	"strings"
	"testing"

	"graduale/internal/diag"
	"graduale/internal/layout"
	"graduale/internal/lexer"
	"graduale/internal/parser"
	"graduale/internal/source"
	"graduale/internal/width"
)

const sample = "CLEF(do,3) Ky-(do,mi,sol) ri(la) e(sol) BAR(full) son(do) CLEF(fa,2) Al(re)"

func load(t *testing.T, text string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("kit.chant", []byte(text)))
}

func TestInvariantsHoldOnSample(t *testing.T) {
	file := load(t, sample)
	bag := diag.NewBag(0)
	if err := CheckTokens(lexer.New(file, lexer.Options{}).All(), file); err != nil {
		t.Fatal(err)
	}
	doc := parser.Parse(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err := CheckDocument(doc, file); err != nil {
		t.Fatal(err)
	}
	width.Annotate(doc, width.Options{Measurer: width.MeasureFunc(func(string, float64) float64 { return 30 })})
	opts := layout.DefaultOptions(400)
	plan := layout.Break(doc, opts)
	if plan.Lines < 2 {
		t.Fatalf("sample must wrap, got %d lines", plan.Lines)
	}
	if err := CheckPlan(doc, plan, opts); err != nil {
		t.Fatal(err)
	}
}

func TestInvariantViolations(t *testing.T) {
	file := load(t, sample)
	doc := parser.Parse(file, parser.Options{})
	width.Annotate(doc, width.Options{})
	opts := layout.DefaultOptions(400)

	t.Run("note outside syllable", func(t *testing.T) {
		bad := parser.Parse(file, parser.Options{})
		bad.Sections[0].Syllables[0].Notes[0].Span = bad.Sections[0].Syllables[1].Span
		assertErr(t, CheckDocument(bad, file), "outside")
	})
	t.Run("sections out of order", func(t *testing.T) {
		bad := parser.Parse(file, parser.Options{})
		bad.Sections[0], bad.Sections[1] = bad.Sections[1], bad.Sections[0]
		assertErr(t, CheckDocument(bad, file), "precedes")
	})
	t.Run("missing placement", func(t *testing.T) {
		plan := layout.Break(doc, opts)
		plan.Placements = plan.Placements[1:]
		assertErr(t, CheckPlan(doc, plan, opts), "placements for")
	})
	t.Run("wrong custos", func(t *testing.T) {
		plan := layout.Break(doc, opts)
		if len(plan.Custodes) == 0 {
			t.Fatal("sample must produce a custos")
		}
		plan.Custodes[0].Pitch += 1
		assertErr(t, CheckPlan(doc, plan, opts), "custos pitch")
	})
	t.Run("token text", func(t *testing.T) {
		toks := lexer.New(file, lexer.Options{}).All()
		toks[1].Text = "Ky"
		assertErr(t, CheckTokens(toks, file), "span covers")
	})
}

func assertErr(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil || !strings.Contains(err.Error(), want) {
		t.Fatalf("error = %v, want one containing %q", err, want)
	}
}
