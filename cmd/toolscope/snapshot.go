package main

import (
	"context"
	"fmt"
	"os"

	"github.com/toolscope/toolscope/pkg/catalog"
	"github.com/toolscope/toolscope/pkg/source"
)

// runSnapshot connects to an MCP server, captures its tool definitions
// as a catalog JSON array, and writes them to out ("-" for stdout).
func runSnapshot(ctx context.Context, command string, args []string, out string) error {
	logger := newStderrLogger()
	logger.Info("connecting to MCP server", "command", command)

	src := source.NewMCPSource(command, args...)

	data, err := src.Fetch(ctx)
	if err != nil {
		return err
	}

	// Round-trip through the store so a broken snapshot never reaches disk.
	var store catalog.Store
	if err := store.Load(data); err != nil {
		return err
	}

	logger.Info("captured tool definitions", "tools", store.Len())

	if out == "-" {
		_, err := fmt.Println(string(data))
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil { //nolint:gosec // catalog snapshot, not a secret
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Printf("Wrote %d tools to %s\n", store.Len(), out)

	return nil
}
