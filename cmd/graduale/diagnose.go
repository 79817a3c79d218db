package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graduale/internal/diag"
	"graduale/internal/diagfmt"
	"graduale/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.chant|directory>",
	Short: "Report notation problems in a chant file or directory",
	Long:  `Run the whole pipeline over a chant file, or every *.chant file of a directory, and print its diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	diagCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runDiagnose prints diagnostics of every input file and exits with status 1
// when any of them carries an error (or a warning with --warnings-as-errors).
func runDiagnose(cmd *cobra.Command, args []string) error {
	input := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	cfg, err := loadConfig(cmd, input)
	if err != nil {
		return err
	}
	opts := driver.Options{Config: cfg, Logger: logger, Jobs: jobs}

	var results []*driver.LayoutResult
	dir, err := isDir(input)
	if err != nil {
		return err
	}
	if dir {
		dirResults, err := driver.LayoutDir(cmd.Context(), input, opts)
		if err != nil {
			return fmt.Errorf("diagnose failed: %w", err)
		}
		for _, r := range dirResults {
			if r.Err != nil {
				return fmt.Errorf("%s: %w", r.Path, r.Err)
			}
			results = append(results, r.Result)
		}
	} else {
		res, err := driver.Layout(cmd.Context(), input, opts)
		if err != nil {
			return fmt.Errorf("diagnose failed: %w", err)
		}
		results = append(results, res)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()

	var errorsCount, warningsCount int
	combined := diagfmt.DiagnosticsOutput{Diagnostics: []diagfmt.DiagnosticJSON{}}
	for _, res := range results {
		for _, d := range res.Bag.Items() {
			switch d.Severity {
			case diag.SevError:
				errorsCount++
			case diag.SevWarning:
				warningsCount++
			}
		}
		switch format {
		case "pretty":
			opts := prettyOpts(cmd)
			opts.PathMode = pathMode
			diagfmt.Pretty(out, res.Bag, res.FileSet, opts)
		case "short":
			diagfmt.Short(out, res.Bag, res.FileSet, pathMode)
		case "json":
			part := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         pathMode,
				IncludeNotes:     true,
			})
			combined.Diagnostics = append(combined.Diagnostics, part.Diagnostics...)
		}
	}
	if format == "json" {
		combined.Count = len(combined.Diagnostics)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(combined); err != nil {
			return err
		}
	}

	if !quiet && format != "json" {
		fmt.Fprintf(os.Stderr, "%d files, %d errors, %d warnings\n", len(results), errorsCount, warningsCount)
	}
	if errorsCount > 0 || (warningsAsErrors && warningsCount > 0) {
		finish()
		os.Exit(1)
	}
	return nil
}
