package strapi

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/simcoder/strapi-cms-mcp/pkg/rest"
	"github.com/simcoder/strapi-cms-mcp/pkg/tool"
)

const SingleTypeDeleted = "Single type deleted successfully"

func (c *Catalog) singleTools() []tool.Tool {
	get := getSingleTypeSchema()
	update := updateSingleTypeSchema()
	remove := deleteSingleTypeSchema()

	return []tool.Tool{
		{
			Name:        "get_single_type",
			Description: "Get a single type content",

			Schema:  get,
			Execute: execute(c, get, "getting single type", c.GetSingleType),
		},
		{
			Name:        "update_single_type",
			Description: "Update a single type content",

			Schema:  update,
			Execute: execute(c, update, "updating single type", c.UpdateSingleType),
		},
		{
			Name:        "delete_single_type",
			Description: "Delete a single type content",

			Schema:  remove,
			Execute: execute(c, remove, "deleting single type", c.DeleteSingleType),
		},
	}
}

func (c *Catalog) GetSingleType(ctx context.Context, params *GetSingleTypeArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Msg("getting single type")

	q := query{}
	q.set("populate", params.Populate)
	q.set("locale", params.Locale)

	return c.request(ctx, &rest.Request{
		Method: http.MethodGet,
		Path:   contentPath(params.ContentType),
		Query:  q,
	})
}

func (c *Catalog) UpdateSingleType(ctx context.Context, params *UpdateSingleTypeArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Msg("updating single type")

	q := query{}
	q.set("locale", params.Locale)

	return c.request(ctx, &rest.Request{
		Method: http.MethodPut,
		Path:   contentPath(params.ContentType),
		Body:   envelope(params.Data),
		Query:  q,
	})
}

func (c *Catalog) DeleteSingleType(ctx context.Context, params *DeleteSingleTypeArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Msg("deleting single type")

	if _, err := c.client.Execute(ctx, &rest.Request{
		Method:  http.MethodDelete,
		Path:    contentPath(params.ContentType),
		Discard: true,
	}); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(SingleTypeDeleted), nil
}
