package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graduale/internal/diagfmt"
	"graduale/internal/driver"
	"graduale/internal/planfmt"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.chant",
	Short: "Parse a chant file into sections, syllables and notes",
	Long:  `Parse resolves pitches and infers note shapes, then prints the document without laying it out`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := planfmt.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if format == planfmt.FormatMsgpack {
		return fmt.Errorf("parse does not support %s output", format)
	}
	cfg, err := loadConfig(cmd, filePath)
	if err != nil {
		return err
	}

	limit, err := maxDiagnostics(cfg)
	if err != nil {
		return err
	}
	result, err := driver.Parse(filePath, limit)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd))
	}

	out := planfmt.ExportDocument(result.File.Path, result.Document, result.Bag)
	if format == planfmt.FormatPretty {
		return planfmt.WriteDocumentPretty(cmd.OutOrStdout(), &out)
	}
	return planfmt.Write(cmd.OutOrStdout(), &out, format)
}
