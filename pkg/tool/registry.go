package tool

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
)

type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// Registry is the fixed name to tool table used for discovery and dispatch.
type Registry struct {
	tools []Tool
	index map[string]Tool
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		index: make(map[string]Tool, len(tools)),
	}

	for _, t := range tools {
		if t.Name == "" {
			return nil, errors.New("tool name is required")
		}

		if t.Execute == nil {
			return nil, errors.Newf("tool %q has no handler", t.Name)
		}

		if _, ok := r.index[t.Name]; ok {
			return nil, errors.Newf("duplicate tool %q", t.Name)
		}

		r.tools = append(r.tools, t)
		r.index[t.Name] = t
	}

	return r, nil
}

func NewRegistryFromProviders(ctx context.Context, providers ...Provider) (*Registry, error) {
	var tools []Tool

	for _, p := range providers {
		result, err := p.Tools(ctx)

		if err != nil {
			return nil, err
		}

		tools = append(tools, result...)
	}

	return NewRegistry(tools...)
}

func (r *Registry) Tools() []Tool {
	return append([]Tool(nil), r.tools...)
}

func (r *Registry) Names() []string {
	return lo.Map(r.tools, func(t Tool, _ int) string {
		return t.Name
	})
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.index[name]
	return t, ok
}

// Invoke runs the named tool. Failures never escape as Go errors; they are
// returned as an error result so the caller always gets a well-formed envelope.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	if args == nil {
		args = map[string]any{}
	}

	t, ok := r.index[name]

	if !ok {
		return ErrorResult(&UnknownToolError{Name: name})
	}

	result, err := t.Execute(ctx, args)

	if err != nil {
		return ErrorResult(err)
	}

	if result == nil {
		return mcp.NewToolResultText("")
	}

	return result
}

func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Operation failed: " + err.Error())
}
