package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"t4fix/internal/fixer"
	"t4fix/internal/ui"
)

type fixOutcome struct {
	results []fixer.FileResult
}

// runFixWithUI runs the fixer in the background while a Bubble Tea
// progress screen consumes its events.
func runFixWithUI(ctx context.Context, title string, files []string, opts fixer.Options) ([]fixer.FileResult, error) {
	events := make(chan fixer.Event, 256)
	outcomeCh := make(chan fixOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = fixer.ChannelSink{Ch: events}
		results := fixer.FixAll(ctx, files, optsCopy)
		outcomeCh <- fixOutcome{results: results}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, nil
}
