package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNormalizeFullEntry(t *testing.T) {
	rec := Normalize(gjson.Parse(`{
		"name": "search",
		"description": "Search the web",
		"input_schema": {
			"type": "object",
			"properties": {"q": {"type": "string"}},
			"required": ["q"]
		},
		"extra_key": "ignored"
	}`))

	assert.Equal(t, "search", rec.Name)
	assert.Equal(t, "Search the web", rec.Description)
	assert.Equal(t, "object", rec.Schema.Type)
	assert.Equal(t, []string{"q"}, rec.Schema.Required)
	require.Contains(t, rec.Schema.Properties, "q")
	assert.Equal(t, "string", rec.Schema.Properties["q"].Type)
}

func TestNormalizeSchemaAlias(t *testing.T) {
	// The MCP wire form spells the key inputSchema.
	rec := Normalize(gjson.Parse(`{"name":"t","inputSchema":{"type":"object","required":["a"]}}`))

	assert.Equal(t, []string{"a"}, rec.Schema.Required)
}

func TestNormalizeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty object", `{}`},
		{"name not a string", `{"name": 7}`},
		{"name empty string", `{"name": ""}`},
		{"element not an object", `17`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(gjson.Parse(tt.input))
			assert.Equal(t, "(unnamed tool)", rec.Name)
			assert.Empty(t, rec.Description)
			assert.JSONEq(t, `{}`, string(rec.Schema.Raw))
		})
	}
}

func TestNormalizeNonObjectSchema(t *testing.T) {
	rec := Normalize(gjson.Parse(`{"name":"t","input_schema":["not","an","object"]}`))

	assert.Empty(t, rec.Schema.Required)
	assert.JSONEq(t, `{}`, string(rec.Schema.Raw))
}

func TestNormalizeKeepsRawSchemaText(t *testing.T) {
	rec := Normalize(gjson.Parse(`{"name":"t","input_schema":{"zz":1,"aa":2,"type":"object"}}`))

	// Raw preserves the original text, including key order.
	assert.Equal(t, `{"zz":1,"aa":2,"type":"object"}`, string(rec.Schema.Raw))
}

func TestParseSchemaTolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"required not an array", `{"required": "q"}`},
		{"type not a string", `{"type": 3}`},
		{"properties not an object", `{"properties": []}`},
		{"items not an object", `{"items": "str"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				node := parseSchema(gjson.Parse(tt.input))
				Summarize(node)
			})
		})
	}
}

func TestParseSchemaNestedItems(t *testing.T) {
	node := parseSchema(gjson.Parse(`{
		"type": "array",
		"items": {"type": "object", "required": ["id"], "properties": {"id": {"type": "integer"}}}
	}`))

	require.NotNil(t, node.Items)
	assert.Equal(t, "object", node.Items.Type)
	assert.Equal(t, []string{"id"}, node.Items.Required)
}
