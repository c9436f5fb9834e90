package catalog

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Load failure conditions. Both are fatal to the load that raised them; no
// partial catalog is produced.
var (
	// ErrDecode reports input text that is not syntactically valid JSON.
	ErrDecode = errors.New("catalog: invalid JSON")

	// ErrMalformed reports valid JSON whose top-level value is not an array.
	ErrMalformed = errors.New("catalog: top-level value is not an array")
)

// Store holds the ordered collection of normalized tool records for one load
// session. The zero value is an empty, loadable store. A store is loaded
// wholesale; there is no incremental append or removal.
type Store struct {
	records []ToolRecord
}

// Load decodes and normalizes a catalog document, replacing any previous
// contents. Per-element normalization never fails, so Load is total over any
// syntactically-array input. On error the previous contents are kept.
func (s *Store) Load(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrDecode
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return fmt.Errorf("%w (got %s)", ErrMalformed, jsonKind(root))
	}

	elements := root.Array()
	records := make([]ToolRecord, 0, len(elements))
	for _, el := range elements {
		records = append(records, Normalize(el))
	}

	s.records = records

	return nil
}

// All returns the records in source order. The returned slice is a read-only
// view; callers must not mutate it.
func (s *Store) All() []ToolRecord {
	return s.records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// jsonKind names a decoded top-level value for error messages.
func jsonKind(res gjson.Result) string {
	switch res.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	default:
		if res.IsObject() {
			return "object"
		}
		return "unknown value"
	}
}
