package fuzztests

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"graduale/internal/diag"
	"graduale/internal/layout"
	"graduale/internal/lexer"
	"graduale/internal/parser"
	"graduale/internal/source"
	"graduale/internal/testkit"
	"graduale/internal/textmetrics"
	"graduale/internal/width"
)

// pipelineTimeout bounds one input; longer runs point at a loop that never ends.
const pipelineTimeout = 5 * time.Second

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.chant", clampInput(input)))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokens(lx.All(), file); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzPipeline(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.chant", clampInput(input)))

		done := make(chan error, 1)
		go func() {
			done <- runPipeline(file)
		}()
		select {
		case err := <-done:
			if err != nil {
				t.Fatal(err)
			}
		case <-time.After(pipelineTimeout):
			t.Fatalf("pipeline did not finish within %v on %q", pipelineTimeout, input)
		}
	})
}

func runPipeline(file *source.File) error {
	bag := diag.NewBag(128)
	doc := parser.Parse(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128})
	if err := testkit.CheckDocument(doc, file); err != nil {
		return err
	}

	wopts := width.Options{Measurer: textmetrics.Cells{}}
	width.Annotate(doc, wopts)
	before := doc.SyllableCount()

	opts := layout.DefaultOptions(layout.DefaultLineWidth)
	plan := layout.Break(doc, opts)
	if err := testkit.CheckPlan(doc, plan, opts); err != nil {
		return err
	}

	// повторный проход ничего не меняет
	again := layout.Break(doc, opts)
	if diff := cmp.Diff(plan, again, cmp.AllowUnexported(layout.Plan{})); diff != "" {
		return &diffError{diff}
	}
	if doc.SyllableCount() != before {
		return &diffError{"layout changed the document"}
	}
	return nil
}

type diffError struct{ diff string }

func (e *diffError) Error() string { return "second run differs:\n" + e.diff }
