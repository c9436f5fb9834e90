package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolscope/toolscope/pkg/catalog"
)

func testCatalog() []catalog.ToolRecord {
	return []catalog.ToolRecord{
		{Name: "Alpha", Description: "fetches data"},
		{Name: "Beta", Description: "alpha channel"},
		{Name: "gamma", Description: "renders output"},
	}
}

func names(records []catalog.ToolRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Name)
	}
	return out
}

func TestFilterMatchesNameAndDescription(t *testing.T) {
	// "alpha" hits the first record by name and the second by description,
	// returned in original order.
	got := Filter(testCatalog(), "alpha")
	assert.Equal(t, []string{"Alpha", "Beta"}, names(got))
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	c := testCatalog()

	for _, query := range []string{"", "   ", "\t\n"} {
		got := Filter(c, query)
		require.Len(t, got, len(c), "query %q", query)
		assert.Equal(t, names(c), names(got))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	c := []catalog.ToolRecord{
		{Name: "z_tool", Description: "shared word"},
		{Name: "a_tool", Description: "shared word"},
		{Name: "m_tool", Description: "other"},
	}

	got := Filter(c, "shared")
	assert.Equal(t, []string{"z_tool", "a_tool"}, names(got))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := Filter(testCatalog(), "GAMMA")
	require.Len(t, got, 1)
	assert.Equal(t, "gamma", got[0].Name)
}

func TestFilterTrimsQuery(t *testing.T) {
	got := Filter(testCatalog(), "  beta  ")
	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Name)
}

func TestFilterNoMatches(t *testing.T) {
	assert.Empty(t, Filter(testCatalog(), "zzz_nothing"))
}

func TestFilterIsIdempotent(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, Filter(c, "alpha"), Filter(c, "alpha"))
}

func TestMatch(t *testing.T) {
	rec := catalog.ToolRecord{Name: "HTTP Fetch", Description: "Makes requests"}

	tests := []struct {
		query string
		want  bool
	}{
		{"http", true},
		{"FETCH", true},
		{"requests", true},
		{"", true},
		{"   ", true},
		{"grpc", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(rec, tt.query), "query %q", tt.query)
	}
}
