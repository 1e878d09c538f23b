package tool

import (
	"context"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/mark3labs/mcp-go/mcp"
)

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
}

type Schema = *openapi3.Schema
type ExecuteFn func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)

type Tool struct {
	Name        string
	Description string

	Schema  Schema
	Execute ExecuteFn
}

// InputSchema renders the tool schema as the JSON object advertised to clients.
func (t Tool) InputSchema() (json.RawMessage, error) {
	if t.Schema == nil {
		return json.RawMessage(`{"type":"object","properties":{}}`), nil
	}

	return json.Marshal(t.Schema)
}
