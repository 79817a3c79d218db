package driver

import (
	"fmt"

	"fortio.org/safecast"
	"go.uber.org/zap"

	"graduale/internal/config"
	"graduale/internal/textmetrics"
	"graduale/internal/width"
)

// Options configures Layout, LayoutSource and LayoutDir.
type Options struct {
	Config   config.Config  // zero value means config.Default()
	Measurer width.Measurer // nil builds the one named by Config.Text.Measurer
	Cache    *DiskCache     // nil disables the plan cache
	Logger   *zap.Logger
	Sink     ProgressSink
	Jobs     int // 0 = GOMAXPROCS
}

func (o Options) withDefaults() (Options, error) {
	if o.Config.Layout.LineWidth == 0 {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Measurer == nil {
		m, err := textmetrics.New(o.Config.Text.Measurer)
		if err != nil {
			return o, fmt.Errorf("text measurer: %w", err)
		}
		o.Measurer = m
	}
	return o, nil
}

func (o Options) maxDiagnostics() int {
	n, err := safecast.Conv[int](o.Config.Diagnostics.Max)
	if err != nil {
		return 0
	}
	return n
}
