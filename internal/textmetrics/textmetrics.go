// Package textmetrics measures lyric labels for the width pass.
package textmetrics

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/unicode/norm"

	"graduale/internal/width"
)

const (
	KindFont  = "font"
	KindCells = "cells"
)

// CellRatio is the width of one terminal cell relative to the font size.
const CellRatio = 0.5

// New returns the measurer registered under kind; empty kind selects the font measurer.
func New(kind string) (width.Measurer, error) {
	switch kind {
	case "", KindFont:
		return NewFont()
	case KindCells:
		return Cells{}, nil
	}
	return nil, fmt.Errorf("unknown measurer %q (want %s or %s)", kind, KindFont, KindCells)
}

// Font measures text with the advances of an OpenType font.
type Font struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFont loads the Go Regular font.
func NewFont() (*Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{font: f, faces: make(map[float64]font.Face)}, nil
}

func (f *Font) Measure(text string, fontSize float64) float64 {
	face, err := f.face(fontSize)
	if err != nil {
		return 0
	}
	f.mu.Lock()
	adv := font.MeasureString(face, norm.NFC.String(text))
	f.mu.Unlock()
	return float64(adv) / 64
}

// face возвращает кэшированный face для размера
func (f *Font) face(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("face at %vpx: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Close releases the cached faces.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var first error
	for size, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(f.faces, size)
	}
	return first
}

// Cells measures text by its terminal cell width, for plain-text previews.
type Cells struct{}

func (Cells) Measure(text string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(norm.NFC.String(text))) * fontSize * CellRatio
}
