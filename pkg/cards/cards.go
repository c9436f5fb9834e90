// Package cards maps tool records to renderable card descriptions. The
// presenter is pure and the expand/collapse state lives in an explicit
// ViewState owned by the caller, so presentation logic is testable without a
// live UI.
package cards

import (
	"strings"

	"github.com/tidwall/pretty"

	"github.com/toolscope/toolscope/pkg/catalog"
)

// Header is the always-materialized part of a card: the tool name and its
// required-parameter chips.
type Header struct {
	Name  string
	Chips []catalog.RequiredParam
}

// Body holds the parts materialized only for expanded cards.
type Body struct {
	Description string
	Schema      string // indented rendering of the raw input schema
}

// CardView describes one renderable card. Body is nil while the card is
// collapsed, so collapsed cards cost almost nothing to render regardless of
// description or schema size.
type CardView struct {
	Header Header
	Body   *Body
}

// Present maps a record and its expansion state to a CardView. It does not
// re-normalize or re-fetch the record.
func Present(rec catalog.ToolRecord, expanded bool) CardView {
	view := CardView{Header: Header{
		Name:  rec.Name,
		Chips: catalog.Summarize(rec.Schema),
	}}

	if !expanded {
		return view
	}

	view.Body = &Body{
		Description: rec.Description,
		Schema:      formatSchema(rec.Schema),
	}
	return view
}

// formatSchema pretty-prints the raw schema bytes. tidwall/pretty reformats
// the original text, so key order is preserved exactly as authored.
func formatSchema(schema catalog.SchemaNode) string {
	raw := []byte(schema.Raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	out := pretty.PrettyOptions(raw, &pretty.Options{Indent: "  "})
	return strings.TrimRight(string(out), "\n")
}
