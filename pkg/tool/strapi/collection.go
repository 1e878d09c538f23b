package strapi

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/simcoder/strapi-cms-mcp/pkg/rest"
	"github.com/simcoder/strapi-cms-mcp/pkg/tool"
)

const DocumentDeleted = "Document deleted successfully"

func (c *Catalog) collectionTools() []tool.Tool {
	list := listDocumentsSchema()
	get := getDocumentSchema()
	create := createDocumentSchema()
	update := updateDocumentSchema()
	remove := deleteDocumentSchema()

	return []tool.Tool{
		{
			Name:        "get_documents",
			Description: "Get a list of documents from a collection type",

			Schema:  list,
			Execute: execute(c, list, "getting documents", c.GetDocuments),
		},
		{
			Name:        "get_document",
			Description: "Get a single document from a collection type by ID",

			Schema:  get,
			Execute: execute(c, get, "getting document", c.GetDocument),
		},
		{
			Name:        "create_document",
			Description: "Create a new document in a collection type",

			Schema:  create,
			Execute: execute(c, create, "creating document", c.CreateDocument),
		},
		{
			Name:        "update_document",
			Description: "Update a document in a collection type",

			Schema:  update,
			Execute: execute(c, update, "updating document", c.UpdateDocument),
		},
		{
			Name:        "delete_document",
			Description: "Delete a document from a collection type",

			Schema:  remove,
			Execute: execute(c, remove, "deleting document", c.DeleteDocument),
		},
	}
}

func (c *Catalog) GetDocuments(ctx context.Context, params *ListDocumentsArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Msg("getting documents")

	q := query{}
	q.set("populate", params.Populate)
	q.set("filters", params.Filters)
	q.set("sort", params.Sort)
	q.pagination(params.Pagination)
	q.set("locale", params.Locale)

	return c.request(ctx, &rest.Request{
		Method: http.MethodGet,
		Path:   contentPath(params.ContentType),
		Query:  q,
	})
}

func (c *Catalog) GetDocument(ctx context.Context, params *GetDocumentArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Str("documentId", params.DocumentID).Msg("getting document")

	q := query{}
	q.set("populate", params.Populate)

	return c.request(ctx, &rest.Request{
		Method: http.MethodGet,
		Path:   contentPath(params.ContentType, params.DocumentID),
		Query:  q,
	})
}

func (c *Catalog) CreateDocument(ctx context.Context, params *CreateDocumentArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Msg("creating document")

	return c.request(ctx, &rest.Request{
		Method: http.MethodPost,
		Path:   contentPath(params.ContentType),
		Body:   envelope(params.Data),
	})
}

func (c *Catalog) UpdateDocument(ctx context.Context, params *UpdateDocumentArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Str("documentId", params.DocumentID).Msg("updating document")

	return c.request(ctx, &rest.Request{
		Method: http.MethodPut,
		Path:   contentPath(params.ContentType, params.DocumentID),
		Body:   envelope(params.Data),
	})
}

func (c *Catalog) DeleteDocument(ctx context.Context, params *DeleteDocumentArgs) (*mcp.CallToolResult, error) {
	c.logger.Info().Str("contentType", params.ContentType).Str("documentId", params.DocumentID).Msg("deleting document")

	if _, err := c.client.Execute(ctx, &rest.Request{
		Method:  http.MethodDelete,
		Path:    contentPath(params.ContentType, params.DocumentID),
		Discard: true,
	}); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(DocumentDeleted), nil
}
