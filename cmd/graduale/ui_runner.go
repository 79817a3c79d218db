package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"graduale/internal/driver"
	"graduale/internal/ui"
)

type layoutOutcome struct {
	results []driver.DirResult
	err     error
}

// runLayoutDirWithUI runs LayoutDir while a progress view follows its events on stderr.
// Quitting the view cancels the run.
func runLayoutDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) ([]driver.DirResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan layoutOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.LayoutDir(ctx, dir, optsCopy)
		outcomeCh <- layoutOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Interrupted(final) {
		cancel()
	}
	// дочитываем события, чтобы воркеры не заблокировались
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
