package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"graduale/internal/config"
	"graduale/internal/diagfmt"
	"graduale/internal/driver"
	"graduale/internal/planfmt"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [flags] <file.chant|directory>",
	Short: "Lay a chant out on staff lines",
	Long:  `Layout parses, measures and breaks a chant (or every *.chant file of a directory) into positioned staff lines`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().Int("width", 0, "canvas width in pixels (overrides [layout].line_width)")
	layoutCmd.Flags().Float64("font-size", 0, "lyric font size in pixels (overrides [text].font_size)")
	layoutCmd.Flags().String("measurer", "", "text measurer (font|cells, overrides [text].measurer)")
	layoutCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|msgpack)")
	layoutCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	layoutCmd.Flags().Bool("disk-cache", false, "reuse render plans cached on disk")
	layoutCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	input := args[0]

	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := planfmt.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cfg, err := loadConfig(cmd, input)
	if err != nil {
		return err
	}
	if err := applyLayoutFlags(cmd, &cfg); err != nil {
		return err
	}

	opts := driver.Options{Config: cfg, Logger: logger, Jobs: jobs}
	if useCache {
		cache, err := driver.OpenDiskCache("graduale")
		if err != nil {
			logger.Warn("disk cache disabled", zap.Error(err))
		} else {
			opts.Cache = cache
		}
	}

	dir, err := isDir(input)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !dir {
		res, err := driver.Layout(cmd.Context(), input, opts)
		if err != nil {
			return fmt.Errorf("layout failed: %w", err)
		}
		reportLayout(cmd, res, showTimings)
		return planfmt.Write(out, &res.Output, format)
	}

	files, err := driver.ListChantFiles(input)
	if err != nil {
		return err
	}
	var results []driver.DirResult
	if shouldUseTUI(mode, isStdoutData(format)) && len(files) > 0 {
		results, err = runLayoutDirWithUI(cmd.Context(), "layout "+input, input, files, opts)
	} else {
		results, err = driver.LayoutDir(cmd.Context(), input, opts)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		reportLayout(cmd, r.Result, showTimings)
		if err := writeOne(out, &r.Result.Output, format); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be laid out", failed, len(results))
	}
	return nil
}

// applyLayoutFlags lets explicit flags win over graduale.toml.
func applyLayoutFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		w, err := flags.GetInt("width")
		if err != nil {
			return fmt.Errorf("failed to get width flag: %w", err)
		}
		l := cfg.Layout
		if w <= l.LeftMargin+l.ClefWidth+l.TrailingMargin {
			return fmt.Errorf("--width %d leaves no room after margins and clef", w)
		}
		cfg.Layout.LineWidth = w
	}
	if flags.Changed("font-size") {
		size, err := flags.GetFloat64("font-size")
		if err != nil {
			return fmt.Errorf("failed to get font-size flag: %w", err)
		}
		if size <= 0 {
			return fmt.Errorf("--font-size must be positive")
		}
		cfg.Text.FontSize = size
	}
	if flags.Changed("measurer") {
		kind, err := flags.GetString("measurer")
		if err != nil {
			return fmt.Errorf("failed to get measurer flag: %w", err)
		}
		if err := config.ValidateMeasurer(kind); err != nil {
			return err
		}
		cfg.Text.Measurer = kind
	}
	return nil
}

func reportLayout(cmd *cobra.Command, res *driver.LayoutResult, showTimings bool) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if res.Cached {
		if !quiet {
			for _, msg := range res.Output.Diagnostics {
				fmt.Fprintf(os.Stderr, "%s: %s (cached)\n", res.Output.Name, msg)
			}
		}
		return
	}
	if res.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts(cmd))
	}
	if showTimings {
		fmt.Fprintf(os.Stderr, "%s\n%s", res.File.Path, res.Timing.Summary())
	}
}

// isStdoutData reports whether stdout carries machine-readable output.
func isStdoutData(format planfmt.Format) bool {
	return format != planfmt.FormatPretty || !isTerminal(os.Stdout)
}

func writeOne(w io.Writer, out *planfmt.Output, format planfmt.Format) error {
	if format == planfmt.FormatYAML {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
	}
	if err := planfmt.Write(w, out, format); err != nil {
		return err
	}
	if format == planfmt.FormatPretty {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}
