package tool

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
)

type FieldError struct {
	Field  string
	Reason string
}

// ValidationError reports arguments that do not match a tool schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var parts []string

	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}

	return "invalid arguments: " + strings.Join(parts, "; ")
}

// ParseArgs validates raw arguments against schema and decodes them into T.
func ParseArgs[T any](schema Schema, args map[string]any) (*T, error) {
	if args == nil {
		args = map[string]any{}
	}

	if schema != nil {
		if err := schema.VisitJSON(args, openapi3.MultiErrors()); err != nil {
			return nil, toValidationError(err)
		}
	}

	data, err := json.Marshal(args)

	if err != nil {
		return nil, errors.Wrap(err, "encoding arguments")
	}

	var result T

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ValidationError{
			Fields: []FieldError{{Field: "arguments", Reason: err.Error()}},
		}
	}

	return &result, nil
}

func toValidationError(err error) *ValidationError {
	result := &ValidationError{}
	collectFieldErrors(err, result)

	if len(result.Fields) == 0 {
		result.Fields = append(result.Fields, FieldError{Field: "arguments", Reason: err.Error()})
	}

	return result
}

func collectFieldErrors(err error, result *ValidationError) {
	var multi openapi3.MultiError

	if errors.As(err, &multi) {
		for _, e := range multi {
			collectFieldErrors(e, result)
		}

		return
	}

	var schemaErr *openapi3.SchemaError

	if errors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")

		if field == "" {
			field = "arguments"
		}

		result.Fields = append(result.Fields, FieldError{
			Field:  field,
			Reason: schemaErr.Reason,
		})

		return
	}

	result.Fields = append(result.Fields, FieldError{Field: "arguments", Reason: err.Error()})
}
