package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graduale/internal/diagfmt"
	"graduale/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.chant",
	Short: "Tokenize a chant file",
	Long:  `Tokenize splits a chant file into syllable and directive tokens with their note codes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// диагностика уходит в stderr, токены в stdout
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd))
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
