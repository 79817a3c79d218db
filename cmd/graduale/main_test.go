package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"graduale/internal/config"
	"graduale/internal/textmetrics"
)

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := readUIMode("sometimes")
	require.Error(t, err)

	require.True(t, shouldUseTUI(uiModeOn, true))
	require.False(t, shouldUseTUI(uiModeOff, false))
	require.False(t, shouldUseTUI(uiModeAuto, true))
}

func TestStartDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.chant")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	require.Equal(t, dir, startDir(dir))
	require.Equal(t, dir, startDir(file))
	require.Equal(t, "missing", startDir(filepath.Join("missing", "x.chant")))
}

func newLayoutFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "layout"}
	cmd.Flags().Int("width", 0, "")
	cmd.Flags().Float64("font-size", 0, "")
	cmd.Flags().String("measurer", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyLayoutFlags(t *testing.T) {
	cfg := config.Default()
	cmd := newLayoutFlags(t, "--width", "1500", "--font-size", "40", "--measurer", "cells")
	require.NoError(t, applyLayoutFlags(cmd, &cfg))
	require.Equal(t, 1500, cfg.Layout.LineWidth)
	require.Equal(t, 40.0, cfg.Text.FontSize)
	require.Equal(t, textmetrics.KindCells, cfg.Text.Measurer)

	untouched := config.Default()
	require.NoError(t, applyLayoutFlags(newLayoutFlags(t), &untouched))
	require.Equal(t, config.Default(), untouched)

	for _, args := range [][]string{
		{"--width", "100"},
		{"--font-size", "0"},
		{"--measurer", "braille"},
	} {
		cfg := config.Default()
		require.Error(t, applyLayoutFlags(newLayoutFlags(t, args...), &cfg), args)
	}
}
