// Package source abstracts where a tool catalog's JSON payload comes
// from. A Source produces the raw bytes; decoding and normalization are
// the catalog package's job.
package source

import (
	"context"
	"strings"
)

// Source produces the raw JSON payload of a tool catalog.
type Source interface {
	// Fetch returns the catalog bytes. It may be called repeatedly; each
	// call reflects the current state of the underlying resource.
	Fetch(ctx context.Context) ([]byte, error)

	// Ref is a human-readable reference for display and logging.
	Ref() string
}

// Watchable is implemented by sources backed by a local file that can
// be monitored for changes.
type Watchable interface {
	Source
	Path() string
}

// Resolve turns a user-supplied reference into a Source. References
// starting with http:// or https:// become HTTP sources; everything
// else is treated as a file path.
func Resolve(ref string) Source {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return NewHTTPSource(ref)
	}

	return NewFileSource(ref)
}
