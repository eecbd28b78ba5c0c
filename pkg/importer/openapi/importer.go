// Package openapi converts an OpenAPI operation's request schema into a
// questionnaire: string properties become text questions, enum properties
// become choice questions, and the operation's summary and description
// become the leading title and paragraph.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
)

// Options tunes the conversion.
type Options struct {
	// Language is the language code imported strings are filed under.
	// Defaults to i18n.DefaultLanguage; OpenAPI documents carry a single
	// language, translations are added later through the JSON editor.
	Language string
}

// Import parses an OpenAPI document and converts the named operation's
// JSON request schema into questionnaire items.
func Import(ctx context.Context, doc []byte, operationID string, opts Options) ([]form.Item, error) {
	if len(doc) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}
	lang := opts.Language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}
	schema := requestSchema(operation)
	if schema == nil {
		return nil, fmt.Errorf("openapi: operation %q has no JSON request schema", operationID)
	}

	var items []form.Item
	if operation.Summary != "" {
		items = append(items, form.Title{
			ID:      operationID,
			Content: i18n.Text{lang: operation.Summary},
		})
	}
	if operation.Description != "" {
		items = append(items, form.Paragraph{
			ID:      operationID + ".description",
			Content: i18n.Text{lang: operation.Description},
		})
	}

	for _, name := range sortedPropertyNames(schema) {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		items = append(items, propertyItem(name, prop.Value, lang))
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("openapi: operation %q yields no items", operationID)
	}
	return items, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, pathItem := range spec.Paths.Map() {
		if pathItem == nil {
			continue
		}
		for _, operation := range pathItem.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	media := operation.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil
	}
	return media.Schema.Value
}

func sortedPropertyNames(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func propertyItem(name string, prop *openapi3.Schema, lang string) form.Item {
	question := prop.Title
	if question == "" {
		question = name
	}

	if len(prop.Enum) > 0 {
		options := make([]form.Option, 0, len(prop.Enum))
		for _, value := range prop.Enum {
			id := fmt.Sprint(value)
			options = append(options, form.Option{
				ID:   id,
				Text: i18n.Text{lang: id},
			})
		}
		return form.ChoiceQuestion{
			ID:       name,
			Question: i18n.Text{lang: question},
			Options:  options,
		}
	}

	item := form.TextQuestion{
		ID:       name,
		Question: i18n.Text{lang: question},
	}
	if prop.Description != "" {
		item.Placeholder = i18n.Text{lang: prop.Description}
	}
	return item
}
