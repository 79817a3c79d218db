package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"graduale/internal/prof"
	"graduale/internal/version"
)

var (
	logger      = zap.NewNop()
	profSession *prof.Session
)

var rootCmd = &cobra.Command{
	Use:   "graduale",
	Short: "Gregorian chant notation toolkit",
	Long:  `graduale parses compact chant notation, infers neume shapes and lays syllables out on staff lines`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		switch colorFlag {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
			color.NoColor = !isTerminal(os.Stderr)
		default:
			return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
		}

		levelFlag, err := cmd.Root().PersistentFlags().GetString("log-level")
		if err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
		level, err := zapcore.ParseLevel(levelFlag)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		zcfg.Encoding = "console"
		zcfg.OutputPaths = []string{"stderr"}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return startProfiling(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		finish()
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to graduale.toml (default: search upwards from the input)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	finish()
	if err != nil {
		os.Exit(1)
	}
}

func startProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Heap, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	profSession, err = prof.Start(opts)
	return err
}

// finish stops profiling and flushes the logger; it is safe to call twice.
func finish() {
	if err := profSession.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "profiling: %v\n", err)
	}
	profSession = nil
	_ = logger.Sync()
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
