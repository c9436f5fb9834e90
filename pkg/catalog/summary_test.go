package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func schemaFrom(t *testing.T, text string) SchemaNode {
	t.Helper()
	res := gjson.Parse(text)
	require.True(t, res.IsObject(), "test schema must be an object")
	return parseSchema(res)
}

func TestSummarizeFollowsRequiredOrder(t *testing.T) {
	// Declared required order wins — not alphabetical, not properties order.
	schema := schemaFrom(t, `{
		"properties": {
			"alpha": {"type": "string"},
			"beta": {"type": "number"},
			"gamma": {"type": "boolean"}
		},
		"required": ["gamma", "alpha", "beta"]
	}`)

	params := Summarize(schema)
	require.Len(t, params, 3)
	assert.Equal(t, []RequiredParam{
		{Name: "gamma", Type: "boolean"},
		{Name: "alpha", Type: "string"},
		{Name: "beta", Type: "number"},
	}, params)
}

func TestSummarizeDanglingReference(t *testing.T) {
	schema := schemaFrom(t, `{
		"properties": {"present": {"type": "string"}},
		"required": ["present", "ghost"]
	}`)

	params := Summarize(schema)
	require.Len(t, params, 2)
	assert.Equal(t, RequiredParam{Name: "present", Type: "string"}, params[0])
	assert.Equal(t, RequiredParam{Name: "ghost", Type: "unknown"}, params[1])
}

func TestSummarizeUntypedProperty(t *testing.T) {
	schema := schemaFrom(t, `{
		"properties": {"blob": {"description": "no type declared"}},
		"required": ["blob"]
	}`)

	params := Summarize(schema)
	require.Len(t, params, 1)
	assert.Equal(t, "unknown", params[0].Type)
}

func TestSummarizeLengthMatchesRequired(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   int
	}{
		{"no required key", `{"properties": {"a": {"type": "string"}}}`, 0},
		{"empty object", `{}`, 0},
		{"required without properties", `{"required": ["a", "b", "c"]}`, 3},
		{"extra unrequired properties", `{"properties": {"a": {}, "b": {}}, "required": ["a"]}`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Summarize(schemaFrom(t, tt.schema)), tt.want)
		})
	}
}

func TestSummarizeZeroValueSchema(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, Summarize(SchemaNode{}))
	})
}
