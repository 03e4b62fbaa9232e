package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(msgs, "; ")
}

// searchBodySchema constrains the shape of search request bodies: a flat
// object whose control keys are typed and whose filter values are scalars or
// arrays. Which filter keys are meaningful is the catalog's business, not
// the schema's.
const searchBodySchema = `{
	"type": "object",
	"properties": {
		"max_results": {"type": ["number", "string", "null"]},
		"fields": {"type": ["array", "null"], "items": {"type": "string"}},
		"include_photos": {"type": ["boolean", "string", "null"]}
	},
	"additionalProperties": {
		"type": ["string", "number", "boolean", "array", "null"]
	}
}`

type Validator struct {
	searchSchema *gojsonschema.Schema
}

func NewValidator() *Validator {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(searchBodySchema))
	if err != nil {
		panic(err)
	}
	return &Validator{searchSchema: schema}
}

// ValidateSearchBody checks a raw JSON body against the search schema.
// Empty bodies are valid (they mean "no filters").
func (v *Validator) ValidateSearchBody(body []byte) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	result, err := v.searchSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationErrors{Errors: []ValidationError{{Field: "(body)", Message: "invalid JSON"}}}
	}

	if !result.Valid() {
		var validationErrors []ValidationError
		for _, desc := range result.Errors() {
			validationErrors = append(validationErrors, ValidationError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return &ValidationErrors{Errors: validationErrors}
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}

func GetValidationErrors(err error) *ValidationErrors {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
