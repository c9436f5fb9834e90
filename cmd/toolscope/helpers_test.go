package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 6, "hello…"},
		{"newlines flattened", "a\nb", 10, "a b"},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "250ms", fmtDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", fmtDuration(1500*time.Millisecond))
	assert.Equal(t, "2m 5s", fmtDuration(2*time.Minute+5*time.Second))
}

func TestResolveConfigPath(t *testing.T) {
	assert.Equal(t, "custom.yaml", resolveConfigPath("custom.yaml"))
	assert.Equal(t, "toolscope.yaml", resolveConfigPath(""))
}
