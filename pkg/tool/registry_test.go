package tool

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.Len(t, result.Content, 1)

	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return content.Text
}

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "echo " + name,

		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(name), nil
		},
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(echoTool("a"), echoTool("b"))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.Len(t, r.Tools(), 2)

	_, err = NewRegistry(echoTool("a"), echoTool("a"))
	assert.Error(t, err)

	_, err = NewRegistry(Tool{Name: "nohandler"})
	assert.Error(t, err)

	_, err = NewRegistry(echoTool(""))
	assert.Error(t, err)
}

func TestRegistry_Invoke(t *testing.T) {
	failing := Tool{
		Name: "failing",

		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			return nil, errors.New("backend exploded")
		},
	}

	var seen map[string]any

	recording := Tool{
		Name: "recording",

		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			seen = args
			return nil, nil
		},
	}

	r, err := NewRegistry(echoTool("echo"), failing, recording)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		result := r.Invoke(context.Background(), "echo", nil)

		assert.False(t, result.IsError)
		assert.Equal(t, "echo", textOf(t, result))
	})

	t.Run("handler failure", func(t *testing.T) {
		result := r.Invoke(context.Background(), "failing", map[string]any{})

		assert.True(t, result.IsError)
		assert.Equal(t, "Operation failed: backend exploded", textOf(t, result))
	})

	t.Run("unknown tool", func(t *testing.T) {
		result := r.Invoke(context.Background(), "drop_database", nil)

		assert.True(t, result.IsError)
		assert.Equal(t, "Operation failed: Unknown tool: drop_database", textOf(t, result))
	})

	t.Run("nil args", func(t *testing.T) {
		result := r.Invoke(context.Background(), "recording", nil)

		assert.False(t, result.IsError)
		assert.NotNil(t, seen)
		assert.Empty(t, seen)
	})
}

func TestTool_InputSchema(t *testing.T) {
	raw, err := Tool{Name: "x", Schema: sampleSchema()}.InputSchema()

	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"object"`)
	assert.Contains(t, string(raw), `"required":["name","data"]`)

	raw, err = Tool{Name: "y"}.InputSchema()

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{}}`, string(raw))
}
