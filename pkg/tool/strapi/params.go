package strapi

import (
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/simcoder/strapi-cms-mcp/pkg/tool"
)

type Pagination struct {
	Page     *int `json:"page,omitempty"`
	PageSize *int `json:"pageSize,omitempty"`
}

type ListDocumentsArgs struct {
	ContentType string `json:"contentType"`

	Populate string `json:"populate,omitempty"`
	Filters  string `json:"filters,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Locale   string `json:"locale,omitempty"`

	Pagination *Pagination `json:"pagination,omitempty"`
}

type GetDocumentArgs struct {
	ContentType string `json:"contentType"`
	DocumentID  string `json:"documentId"`

	Populate string `json:"populate,omitempty"`
}

type CreateDocumentArgs struct {
	ContentType string         `json:"contentType"`
	Data        map[string]any `json:"data"`
}

type UpdateDocumentArgs struct {
	ContentType string         `json:"contentType"`
	DocumentID  string         `json:"documentId"`
	Data        map[string]any `json:"data"`
}

type DeleteDocumentArgs struct {
	ContentType string `json:"contentType"`
	DocumentID  string `json:"documentId"`
}

type GetSingleTypeArgs struct {
	ContentType string `json:"contentType"`

	Populate string `json:"populate,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

type UpdateSingleTypeArgs struct {
	ContentType string         `json:"contentType"`
	Data        map[string]any `json:"data"`

	Locale string `json:"locale,omitempty"`
}

type DeleteSingleTypeArgs struct {
	ContentType string `json:"contentType"`
}

// query collects optional parameters; empty values are never sent.
type query map[string]string

func (q query) set(key, value string) {
	if value == "" {
		return
	}

	q[key] = value
}

func (q query) setInt(key string, value *int) {
	if value == nil {
		return
	}

	q[key] = strconv.Itoa(*value)
}

func (q query) pagination(p *Pagination) {
	if p == nil {
		return
	}

	q.setInt("pagination[page]", p.Page)
	q.setInt("pagination[pageSize]", p.PageSize)
}

const (
	pluralDescription   = "The plural API ID of the content type (e.g., 'restaurants', 'articles')"
	singularDescription = "The singular API ID of the content type (e.g., 'homepage', 'about')"
)

func describe(s *openapi3.Schema, description string) *openapi3.Schema {
	s.Description = description
	return s
}

func object(required []string, properties map[string]*openapi3.Schema) tool.Schema {
	schema := openapi3.NewObjectSchema()

	for name, property := range properties {
		schema.WithProperty(name, property)
	}

	schema.Required = required

	return schema
}

func contentTypeProperty(description string) *openapi3.Schema {
	return describe(openapi3.NewStringSchema(), description)
}

func documentIDProperty() *openapi3.Schema {
	return describe(openapi3.NewStringSchema(), "The document ID")
}

func populateProperty() *openapi3.Schema {
	return describe(openapi3.NewStringSchema(), "Fields to populate (e.g., 'image', '*', 'categories,image', etc.)")
}

func localeProperty(description string) *openapi3.Schema {
	return describe(openapi3.NewStringSchema(), description)
}

func dataProperty(description string) *openapi3.Schema {
	return describe(openapi3.NewObjectSchema().WithAnyAdditionalProperties(), description)
}

func listDocumentsSchema() tool.Schema {
	pagination := describe(openapi3.NewObjectSchema().
		WithProperty("page", describe(openapi3.NewIntegerSchema(), "Page number")).
		WithProperty("pageSize", describe(openapi3.NewIntegerSchema(), "Page size")),
		"Pagination options")

	return object([]string{"contentType"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(pluralDescription),
		"populate":    populateProperty(),
		"filters":     describe(openapi3.NewStringSchema(), "Filters to apply (e.g., 'filters[name][$eq]=Restaurant')"),
		"sort":        describe(openapi3.NewStringSchema(), "Sorting options (e.g., 'name:asc', 'createdAt:desc')"),
		"pagination":  pagination,
		"locale":      localeProperty("Locale to filter by (e.g., 'en', 'fr')"),
	})
}

func getDocumentSchema() tool.Schema {
	return object([]string{"contentType", "documentId"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(pluralDescription),
		"documentId":  documentIDProperty(),
		"populate":    populateProperty(),
	})
}

func createDocumentSchema() tool.Schema {
	return object([]string{"contentType", "data"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(pluralDescription),
		"data":        dataProperty("The data to create"),
	})
}

func updateDocumentSchema() tool.Schema {
	return object([]string{"contentType", "documentId", "data"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(pluralDescription),
		"documentId":  documentIDProperty(),
		"data":        dataProperty("The data to update"),
	})
}

func deleteDocumentSchema() tool.Schema {
	return object([]string{"contentType", "documentId"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(pluralDescription),
		"documentId":  documentIDProperty(),
	})
}

func getSingleTypeSchema() tool.Schema {
	return object([]string{"contentType"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(singularDescription),
		"populate":    describe(openapi3.NewStringSchema(), "Fields to populate (e.g., 'image', '*', 'components', etc.)"),
		"locale":      localeProperty("Locale to filter by (e.g., 'en', 'fr')"),
	})
}

func updateSingleTypeSchema() tool.Schema {
	return object([]string{"contentType", "data"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(singularDescription),
		"data":        dataProperty("The data to update"),
		"locale":      localeProperty("Locale to update (e.g., 'en', 'fr')"),
	})
}

func deleteSingleTypeSchema() tool.Schema {
	return object([]string{"contentType"}, map[string]*openapi3.Schema{
		"contentType": contentTypeProperty(singularDescription),
	})
}
