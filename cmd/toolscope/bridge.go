package main

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/toolscope/toolscope/pkg/source"
)

// startWatchBridge launches the file-watcher goroutine. It only calls
// p.Send() — it never touches model state directly. Returns a cancel
// function that stops the watcher and waits for the goroutine to exit,
// ensuring no stale messages are sent after return.
func startWatchBridge(ctx context.Context, p *tea.Program, path string, logger *log.Logger) context.CancelFunc {
	bridgeCtx, cancel := context.WithCancel(ctx)

	watcher := source.NewWatcher(path, func() {
		p.Send(catalogChangedMsg{})
	})
	watcher.SetLogger(logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := watcher.Watch(bridgeCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("watcher stopped", "err", err)
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}
