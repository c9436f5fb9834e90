package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// catalogEntry is the JSON shape a snapshot produces per tool. It
// matches the catalog format the viewer loads.
type catalogEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// MCPSource spawns an MCP server process, lists its tools, and renders
// them as a catalog JSON array. Each Fetch starts a fresh server so the
// snapshot reflects the server's current tool set.
type MCPSource struct {
	command string
	args    []string
}

// NewMCPSource creates a source backed by an MCP server command line.
func NewMCPSource(command string, args ...string) *MCPSource {
	return &MCPSource{command: command, args: args}
}

// Fetch connects to the server over stdio and returns its tools as a
// JSON catalog.
func (s *MCPSource) Fetch(ctx context.Context) ([]byte, error) {
	transport := &mcp.CommandTransport{
		Command: exec.Command(s.command, s.args...), //nolint:gosec // command is caller-provided by design
	}

	return snapshot(ctx, transport)
}

// Ref returns the server command line.
func (s *MCPSource) Ref() string {
	if len(s.args) == 0 {
		return "mcp:" + s.command
	}

	return "mcp:" + s.command + " " + strings.Join(s.args, " ")
}

// snapshot connects over the given transport, lists tools once, and
// marshals them as an indented catalog array. Split from Fetch so tests
// can drive it with an in-memory transport.
func snapshot(ctx context.Context, transport mcp.Transport) ([]byte, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "toolscope",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("source: mcp connect: %w", err)
	}
	defer session.Close()

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("source: mcp list tools: %w", err)
	}

	entries := make([]catalogEntry, 0, len(result.Tools))
	for _, tool := range result.Tools {
		schemaBytes, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("source: marshal schema for %q: %w", tool.Name, err)
		}

		entries = append(entries, catalogEntry{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schemaBytes,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("source: marshal catalog: %w", err)
	}

	return data, nil
}
