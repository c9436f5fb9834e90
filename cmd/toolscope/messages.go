package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolscope/toolscope/pkg/catalog"
)

// catalogLoadedMsg delivers a finished catalog load. The generation ties
// the result to the load that started it; stale results are dropped.
type catalogLoadedMsg struct {
	generation uint64
	records    []catalog.ToolRecord
	duration   time.Duration
}

// loadFailedMsg signals that a catalog load failed.
type loadFailedMsg struct {
	generation uint64
	err        error
}

// catalogChangedMsg is sent by the watch bridge when the catalog file
// changes on disk.
type catalogChangedMsg struct{}

// programReadyMsg passes the *tea.Program to the model so it can start bridge goroutines.
type programReadyMsg struct {
	program *tea.Program
}

// initDrainMsg fires after a short delay so that stale terminal responses
// (e.g. OSC 11 background-color replies) are discarded before focusing input.
type initDrainMsg struct{}

// tickMsg drives the loading spinner.
type tickMsg time.Time
