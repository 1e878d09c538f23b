package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/simcoder/strapi-cms-mcp/pkg/rest"
	"github.com/simcoder/strapi-cms-mcp/pkg/tool"
)

var (
	_ tool.Provider = (*Catalog)(nil)
)

// Catalog exposes the collection and single type operations of a Strapi
// REST API as tools.
type Catalog struct {
	client rest.Executor
	logger zerolog.Logger
}

type Option func(*Catalog)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

func New(client rest.Executor, options ...Option) *Catalog {
	c := &Catalog{
		client: client,
		logger: zerolog.Nop(),
	}

	for _, o := range options {
		o(c)
	}

	return c
}

func (c *Catalog) Tools(ctx context.Context) ([]tool.Tool, error) {
	var tools []tool.Tool

	tools = append(tools, c.collectionTools()...)
	tools = append(tools, c.singleTools()...)

	return tools, nil
}

func execute[T any](c *Catalog, schema tool.Schema, action string, fn func(context.Context, *T) (*mcp.CallToolResult, error)) tool.ExecuteFn {
	return func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
		params, err := tool.ParseArgs[T](schema, args)

		if err != nil {
			c.logger.Error().Err(err).Msg("error " + action)
			return nil, err
		}

		result, err := fn(ctx, params)

		if err != nil {
			c.logger.Error().Err(err).Msg("error " + action)
			return nil, err
		}

		return result, nil
	}
}

func (c *Catalog) request(ctx context.Context, req *rest.Request) (*mcp.CallToolResult, error) {
	result, err := c.client.Execute(ctx, req)

	if err != nil {
		return nil, err
	}

	return textResult(result)
}

func textResult(value any) (*mcp.CallToolResult, error) {
	if text, ok := value.(rest.Text); ok {
		return mcp.NewToolResultText(string(text)), nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(value); err != nil {
		return nil, errors.Wrap(err, "encoding response")
	}

	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n")), nil
}

func contentPath(contentType string, segments ...string) string {
	path := "/api/" + url.PathEscape(contentType)

	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}

	return path
}

func envelope(data map[string]any) map[string]any {
	return map[string]any{
		"data": data,
	}
}
