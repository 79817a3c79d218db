package driver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"graduale/internal/chant"
	"graduale/internal/diag"
	"graduale/internal/layout"
	"graduale/internal/observ"
	"graduale/internal/parser"
	"graduale/internal/planfmt"
	"graduale/internal/source"
	"graduale/internal/width"
)

// LayoutResult is one chant taken through the whole pipeline.
// On a cache hit Document and Plan are nil and Bag is empty; the cached
// diagnostics survive as Output.Diagnostics.
type LayoutResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Document *chant.Document
	Plan     *layout.Plan
	Bag      *diag.Bag
	Output   planfmt.Output
	Timing   observ.Report
	Cached   bool
}

// Layout loads path and lays it out.
func Layout(ctx context.Context, path string, opts Options) (*LayoutResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	opts, err = opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return run(ctx, fs, fs.Get(fileID), opts)
}

// LayoutSource lays out in-memory text registered under name.
func LayoutSource(ctx context.Context, name string, src []byte, opts Options) (*LayoutResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return run(ctx, fs, fs.Get(fileID), opts)
}

// run executes tokenize, parse, width and layout for one file. Each call owns all its state.
func run(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*LayoutResult, error) {
	log := opts.Logger.With(zap.String("file", file.Path))
	res := &LayoutResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}

	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Path, file.Content, opts.Config)
		out, ok, err := opts.Cache.Get(key)
		if err != nil {
			log.Warn("plan cache read failed", zap.Error(err))
		}
		if ok {
			log.Debug("plan cache hit")
			emit(opts.Sink, Event{File: file.Path, Stage: StageCache, Status: StatusDone})
			res.Output = *out
			res.Cached = true
			return res, nil
		}
	}

	timer := observ.NewTimer()
	stage := func(s Stage, fn func() string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		emit(opts.Sink, Event{File: file.Path, Stage: s, Status: StatusWorking})
		start := time.Now()
		timer.Time(string(s), fn)
		log.Debug("phase done", zap.String("phase", string(s)), zap.Duration("elapsed", time.Since(start)))
		return nil
	}

	popts, err := parserOptions(res.Bag, opts.maxDiagnostics())
	if err != nil {
		return nil, err
	}
	if err := stage(StageParse, func() string {
		res.Document = parser.Parse(file, popts)
		return fmt.Sprintf("%d sections, %d syllables", len(res.Document.Sections), res.Document.SyllableCount())
	}); err != nil {
		return nil, err
	}
	if err := stage(StageWidth, func() string {
		width.Annotate(res.Document, width.Options{
			Measurer: opts.Measurer,
			FontSize: opts.Config.Text.FontSize,
		})
		return ""
	}); err != nil {
		return nil, err
	}
	if err := stage(StageLayout, func() string {
		res.Plan = layout.Break(res.Document, opts.Config.Layout)
		reportOverflows(res.Bag, res.Document, res.Plan)
		return fmt.Sprintf("%d lines", res.Plan.Lines)
	}); err != nil {
		return nil, err
	}

	res.Timing = timer.Report()
	res.Output = planfmt.Export(file.Path, res.Document, res.Plan, res.Bag)

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, &res.Output); err != nil {
			log.Warn("plan cache write failed", zap.Error(err))
		}
	}
	log.Debug("laid out",
		zap.Int("lines", res.Plan.Lines),
		zap.Int("diagnostics", res.Bag.Len()),
		zap.Float64("total_ms", res.Timing.TotalMS))
	return res, nil
}

func reportOverflows(bag *diag.Bag, doc *chant.Document, plan *layout.Plan) {
	for _, ov := range plan.Overflows {
		syl := doc.Sections[ov.Ref.Section].Syllables[ov.Ref.Index]
		bag.Add(diag.NewWarning(diag.LayOverflow, syl.Span,
			fmt.Sprintf("syllable %q is %d px wide, the line holds %d", syl.Text, ov.Width, ov.Available)))
	}
}
