package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Ext is the extension of chant notation files.
const Ext = ".chant"

// DirResult is the outcome for one file of a directory run.
// Exactly one of Result and Err is set.
type DirResult struct {
	Path   string
	Result *LayoutResult
	Err    error
}

// ListChantFiles возвращает отсортированный список всех *.chant файлов в директории.
func ListChantFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LayoutDir lays out every chant under dir in parallel. Results come back in
// sorted path order; a file that fails to load does not stop the others.
// Only cancellation of ctx aborts the run.
func LayoutDir(ctx context.Context, dir string, opts Options) ([]DirResult, error) {
	files, err := ListChantFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	// один измеритель на весь прогон: шрифт разбирается один раз
	opts, err = opts.withDefaults()
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	opts.Logger.Debug("layout dir",
		zap.String("dir", dir), zap.Int("files", len(files)), zap.Int("jobs", jobs))

	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageTokenize, Status: StatusQueued})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()
			res, err := Layout(gctx, path, opts)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				opts.Logger.Warn("layout failed", zap.String("file", path), zap.Error(err))
				results[i] = DirResult{Path: path, Err: err}
				emit(opts.Sink, Event{File: path, Status: StatusError, Err: err, Elapsed: time.Since(start)})
				return nil
			}
			results[i] = DirResult{Path: path, Result: res}
			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Sink, Event{File: path, Stage: StageLayout, Status: status, Elapsed: time.Since(start)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
