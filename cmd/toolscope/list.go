package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/toolscope/toolscope/pkg/catalog"
	"github.com/toolscope/toolscope/pkg/source"
)

// runList prints the catalog as a table without entering the TUI.
func runList(ctx context.Context, ref string) error {
	src := source.Resolve(ref)

	data, err := src.Fetch(ctx)
	if err != nil {
		return err
	}

	var store catalog.Store
	if err := store.Load(data); err != nil {
		return err
	}

	writeTable(os.Stdout, store.All(), listWidth())

	return nil
}

// listWidth returns the terminal width for table layout, falling back
// to a sane default when stdout is not a terminal.
func listWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 120
}

func writeTable(w io.Writer, records []catalog.ToolRecord, width int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Required", "Description"})

	descWidth := max(width-60, 20)

	for _, rec := range records {
		params := catalog.Summarize(rec.Schema)
		required := make([]string, 0, len(params))
		for _, p := range params {
			required = append(required, p.Name+":"+p.Type)
		}

		t.AppendRow(table.Row{
			rec.Name,
			strings.Join(required, ", "),
			truncate(rec.Description, descWidth),
		})
	}

	t.Render()
}
