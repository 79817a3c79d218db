package driver

import (
	"fortio.org/safecast"

	"graduale/internal/chant"
	"graduale/internal/diag"
	"graduale/internal/parser"
	"graduale/internal/source"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Document *chant.Document
	Bag      *diag.Bag
}

// Parse loads path and builds its Document without measuring or laying it out.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	opts, err := parserOptions(bag, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Document: parser.Parse(file, opts),
		Bag:      bag,
	}, nil
}

func parserOptions(bag *diag.Bag, maxDiagnostics int) (parser.Options, error) {
	var maxErrors uint
	if maxDiagnostics > 0 {
		var err error
		maxErrors, err = safecast.Conv[uint](maxDiagnostics)
		if err != nil {
			return parser.Options{}, err
		}
	}
	return parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	}, nil
}
