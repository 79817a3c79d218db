package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"graduale/internal/source"
	"graduale/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text"`
	Lead  string      `json:"lead"`
	Group bool        `json:"group"`
	Codes []string    `json:"codes,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-9s %-12q at %d:%d-%d:%d",
			i+1, tok.Kind.String(), tok.Lead,
			startPos.Line, startPos.Col, endPos.Line, endPos.Col); err != nil {
			return err
		}
		if tok.Group {
			fmt.Fprintf(w, " (%s)", strings.Join(tok.CodeTexts(), ", "))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Lead:  tok.Lead,
			Group: tok.Group,
			Codes: tok.CodeTexts(),
			Span:  tok.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
