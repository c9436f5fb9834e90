// Package search filters a catalog by case-insensitive substring match on
// tool name or description. Matching is pure text containment — no
// tokenization, stemming, or ranking — and results keep catalog order.
package search

import (
	"strings"

	"github.com/toolscope/toolscope/pkg/catalog"
)

// Match reports whether a single record matches the query. The query is
// trimmed of surrounding whitespace and lower-cased; an empty or
// whitespace-only query matches every record.
func Match(rec catalog.ToolRecord, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Name), q) ||
		strings.Contains(strings.ToLower(rec.Description), q)
}

// Filter returns the subsequence of records matching the query, in original
// order. It is pure and deterministic: filtering subsets, never reorders,
// and repeated identical queries return equal results.
func Filter(records []catalog.ToolRecord, query string) []catalog.ToolRecord {
	if strings.TrimSpace(query) == "" {
		return records
	}

	var matched []catalog.ToolRecord
	for _, rec := range records {
		if Match(rec, query) {
			matched = append(matched, rec)
		}
	}
	return matched
}
