// Package catalog ingests tool-definition JSON documents and holds the
// resulting records in memory. A catalog document is a top-level JSON array
// whose elements each describe one callable tool: a name, a free-text
// description, and a JSON-Schema-like input schema. The document is untrusted
// external input, so per-entry decoding is tolerant: a single malformed entry
// is normalized to safe defaults rather than aborting the rest of the load.
package catalog

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// ToolRecord is one normalized catalog entry. Records are immutable after
// Load. Duplicate names are allowed; each occurrence is a distinct record
// identified by name plus position.
type ToolRecord struct {
	Name        string
	Description string
	Schema      SchemaNode
}

// SchemaNode is a partially decoded JSON-Schema fragment. Only the keys the
// summarizer inspects are decoded; the original bytes are kept verbatim in
// Raw so display code can show the schema exactly as authored.
type SchemaNode struct {
	Type       string
	Properties map[string]SchemaNode
	Required   []string
	Items      *SchemaNode
	Raw        json.RawMessage
}

// emptySchema is the node used when an entry has no usable input schema.
func emptySchema() SchemaNode {
	return SchemaNode{Raw: json.RawMessage("{}")}
}

// parseSchema decodes a schema fragment tolerantly. Mistyped keys are
// skipped instead of failing: the summarizer must never crash the viewer no
// matter what shape the schema arrives in.
func parseSchema(res gjson.Result) SchemaNode {
	if !res.IsObject() {
		return emptySchema()
	}

	node := SchemaNode{Raw: json.RawMessage(res.Raw)}

	if t := res.Get("type"); t.Type == gjson.String {
		node.Type = t.Str
	}

	if req := res.Get("required"); req.IsArray() {
		elements := req.Array()
		node.Required = make([]string, 0, len(elements))
		for _, el := range elements {
			node.Required = append(node.Required, el.String())
		}
	}

	if props := res.Get("properties"); props.IsObject() {
		node.Properties = make(map[string]SchemaNode)
		props.ForEach(func(key, value gjson.Result) bool {
			node.Properties[key.String()] = parseSchema(value)
			return true
		})
	}

	if items := res.Get("items"); items.IsObject() {
		child := parseSchema(items)
		node.Items = &child
	}

	return node
}
