package driver

import (
	"graduale/internal/diag"
	"graduale/internal/lexer"
	"graduale/internal/source"
	"graduale/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and returns every token up to and including EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporterAdapter.Reporter()})

	// собираем все токены до EOF
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
