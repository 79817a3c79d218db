// Package config loads graduale.toml, the per-project layout and text settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"graduale/internal/layout"
	"graduale/internal/textmetrics"
	"graduale/internal/width"
)

// FileName is the manifest looked up next to chant files.
const FileName = "graduale.toml"

// DefaultMaxDiagnostics caps reported diagnostics when the manifest says nothing.
const DefaultMaxDiagnostics = 100

// Config is the effective configuration of one run.
type Config struct {
	Path        string // пусто, если файл не найден
	Layout      layout.Options
	Text        Text
	Diagnostics Diagnostics
}

type Text struct {
	FontSize float64
	Measurer string
}

type Diagnostics struct {
	Max uint
}

// Default returns the configuration used without a manifest.
func Default() Config {
	return Config{
		Layout: layout.DefaultOptions(layout.DefaultLineWidth),
		Text: Text{
			FontSize: width.DefaultFontSize,
			Measurer: textmetrics.KindFont,
		},
		Diagnostics: Diagnostics{Max: DefaultMaxDiagnostics},
	}
}

// Key is a stable rendering of every setting that changes a render plan.
func (c Config) Key() string {
	l := c.Layout
	return fmt.Sprintf("layout=%d,%d,%d,%d,%d,%d,%d,%d,%d;text=%g,%s",
		l.LineWidth, l.LeftMargin, l.TrailingMargin, l.ClefWidth, l.LineHeight,
		l.WordOffset, l.SyllableOffset, l.CustosInset, l.DiagnosticLineHeight,
		c.Text.FontSize, c.Text.Measurer)
}

type manifest struct {
	Layout      layoutSection      `toml:"layout"`
	Text        textSection        `toml:"text"`
	Diagnostics diagnosticsSection `toml:"diagnostics"`
}

type layoutSection struct {
	LineWidth      int `toml:"line_width"`
	LeftMargin     int `toml:"left_margin"`
	TrailingMargin int `toml:"trailing_margin"`
	ClefWidth      int `toml:"clef_width"`
	LineHeight     int `toml:"line_height"`
	WordOffset     int `toml:"word_offset"`
	SyllableOffset int `toml:"syllable_offset"`
	CustosInset    int `toml:"custos_inset"`
}

type textSection struct {
	FontSize float64 `toml:"font_size"`
	Measurer string  `toml:"measurer"`
}

type diagnosticsSection struct {
	Max int `toml:"max"`
}

// Find walks up from startDir to locate graduale.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the manifest governing startDir, or the defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads one manifest. Keys it does not define keep their defaults.
func Load(path string) (Config, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.Path = path

	ints := []struct {
		key   string
		src   int
		dst   *int
		least int
	}{
		{"line_width", m.Layout.LineWidth, &cfg.Layout.LineWidth, 1},
		{"left_margin", m.Layout.LeftMargin, &cfg.Layout.LeftMargin, 0},
		{"trailing_margin", m.Layout.TrailingMargin, &cfg.Layout.TrailingMargin, 0},
		{"clef_width", m.Layout.ClefWidth, &cfg.Layout.ClefWidth, 0},
		{"line_height", m.Layout.LineHeight, &cfg.Layout.LineHeight, 1},
		{"word_offset", m.Layout.WordOffset, &cfg.Layout.WordOffset, 0},
		{"syllable_offset", m.Layout.SyllableOffset, &cfg.Layout.SyllableOffset, 0},
		{"custos_inset", m.Layout.CustosInset, &cfg.Layout.CustosInset, 0},
	}
	for _, f := range ints {
		if !meta.IsDefined("layout", f.key) {
			continue
		}
		if f.src < f.least {
			return Config{}, fmt.Errorf("%s: [layout].%s must be at least %d, got %d", path, f.key, f.least, f.src)
		}
		*f.dst = f.src
	}
	l := cfg.Layout
	if l.LeftMargin+l.ClefWidth+l.TrailingMargin >= l.LineWidth {
		return Config{}, fmt.Errorf("%s: [layout].line_width %d leaves no room after margins and clef", path, l.LineWidth)
	}

	if meta.IsDefined("text", "font_size") {
		if m.Text.FontSize <= 0 {
			return Config{}, fmt.Errorf("%s: [text].font_size must be positive, got %g", path, m.Text.FontSize)
		}
		cfg.Text.FontSize = m.Text.FontSize
	}
	if meta.IsDefined("text", "measurer") {
		kind := strings.TrimSpace(m.Text.Measurer)
		if err := ValidateMeasurer(kind); err != nil {
			return Config{}, fmt.Errorf("%s: [text].measurer: %w", path, err)
		}
		cfg.Text.Measurer = kind
	}

	if meta.IsDefined("diagnostics", "max") {
		if m.Diagnostics.Max < 0 {
			return Config{}, fmt.Errorf("%s: [diagnostics].max must not be negative, got %d", path, m.Diagnostics.Max)
		}
		cfg.Diagnostics.Max = uint(m.Diagnostics.Max)
	}
	return cfg, nil
}

// ValidateMeasurer accepts the measurer names known to textmetrics.
func ValidateMeasurer(kind string) error {
	switch kind {
	case textmetrics.KindFont, textmetrics.KindCells:
		return nil
	}
	return fmt.Errorf("unknown measurer %q (want %s or %s)", kind, textmetrics.KindFont, textmetrics.KindCells)
}
