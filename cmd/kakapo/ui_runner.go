package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kakapo/internal/driver"
	"kakapo/internal/ui"
)

type fmtOutcome struct {
	results []driver.FormatResult
	err     error
}

func runFmtWithUI(cmd *cobra.Command, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	files, err := driver.CollectSourceFiles(cmd.Context(), paths)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fmtOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		results, runErr := driver.FormatPaths(cmd.Context(), paths, optsCopy)
		outcomeCh <- fmtOutcome{results: results, err: runErr}
		close(events)
	}()

	model := ui.NewProgressModel("kakapo fmt", files, events)
	program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
