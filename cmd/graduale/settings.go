package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"graduale/internal/config"
	"graduale/internal/diagfmt"
)

// loadConfig resolves graduale.toml for input and applies the global flags on top.
func loadConfig(cmd *cobra.Command, input string) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(startDir(input))
	}
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", zap.String("path", cfg.Path))
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("max-diagnostics") {
		n, err := flags.GetInt("max-diagnostics")
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		if n < 0 {
			return config.Config{}, fmt.Errorf("--max-diagnostics must not be negative")
		}
		cfg.Diagnostics.Max = uint(n)
	}
	return cfg, nil
}

// startDir is where the manifest search begins for a file or directory argument.
func startDir(input string) string {
	info, err := os.Stat(input)
	if err == nil && info.IsDir() {
		return input
	}
	return filepath.Dir(input)
}

// maxDiagnostics converts the configured cap for the bag-based drivers.
func maxDiagnostics(cfg config.Config) (int, error) {
	return safecast.Conv[int](cfg.Diagnostics.Max)
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func prettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return diagfmt.PrettyOpts{
		Color:      colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr)),
		ShowSource: true,
		ShowNotes:  true,
	}
}
