package catalog

import "github.com/tidwall/gjson"

// namePlaceholder substitutes for entries whose name is absent or unusable.
const namePlaceholder = "(unnamed tool)"

// Normalize coerces one decoded catalog element into a well-formed
// ToolRecord. It never fails: missing or mistyped fields fall back to safe
// defaults so one bad entry degrades gracefully instead of aborting the load.
func Normalize(element gjson.Result) ToolRecord {
	rec := ToolRecord{Name: namePlaceholder, Schema: emptySchema()}

	// Names must be non-empty strings; anything else gets the placeholder.
	if name := element.Get("name"); name.Type == gjson.String && name.Str != "" {
		rec.Name = name.Str
	}

	if desc := element.Get("description"); desc.Type == gjson.String {
		rec.Description = desc.Str
	}

	// input_schema is the document form; inputSchema is the MCP wire alias.
	schema := element.Get("input_schema")
	if !schema.Exists() {
		schema = element.Get("inputSchema")
	}
	if schema.IsObject() {
		rec.Schema = parseSchema(schema)
	}

	return rec
}
