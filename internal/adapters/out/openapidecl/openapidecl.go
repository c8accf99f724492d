// Package openapidecl derives model declarations from the component schemas
// of an OpenAPI 3 document. Every object schema becomes a model: its
// properties are validated with the schema itself, its required list marks
// required fields, and property defaults form the defaults table. Per-model
// augmentation options can be given in an x-model-options extension.
package openapidecl

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
)

// OptionsExtension is the schema extension holding augmentation options.
const OptionsExtension = "x-model-options"

// Load parses data (JSON or YAML) and returns one declaration per object
// schema under components.schemas, ordered by name.
func Load(ctx context.Context, data []byte) ([]record.Declaration, error) {
	loader := &openapi3.Loader{Context: ctx}

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi declarations: load document: %w", err)
	}

	if err = doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi declarations: validate: %w", err)
	}

	return FromDocument(doc)
}

// FromDocument converts the component schemas of an already loaded document.
func FromDocument(doc *openapi3.T) ([]record.Declaration, error) {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, nil
	}

	decls := make([]record.Declaration, 0, len(doc.Components.Schemas))
	for _, name := range slices.Sorted(maps.Keys(doc.Components.Schemas)) {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil || !ref.Value.Type.Is(openapi3.TypeObject) {
			continue
		}

		decl, err := declaration(name, ref.Value)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	return decls, nil
}

func declaration(name string, s *openapi3.Schema) (record.Declaration, error) {
	decl := record.Declaration{Name: name}

	if len(s.Properties) > 0 {
		decl.Schema = make(schema.Schema, len(s.Properties))
	}
	for prop, ref := range s.Properties {
		if ref == nil || ref.Value == nil {
			return record.Declaration{}, errs.NewValueIsInvalidErrorWithCause(
				name+"."+prop, fmt.Errorf("unresolved schema reference %q", refName(ref)))
		}

		decl.Schema[prop] = &PropertyValidator{
			schema:   ref.Value,
			required: slices.Contains(s.Required, prop),
		}

		if ref.Value.Default != nil {
			if decl.Defaults == nil {
				decl.Defaults = schema.Defaults{}
			}
			decl.Defaults[prop] = ref.Value.Default
		}
	}

	if raw, ok := s.Extensions[OptionsExtension]; ok {
		opts, ok := raw.(map[string]any)
		if !ok {
			return record.Declaration{}, errs.NewValueIsInvalidError(name + "." + OptionsExtension)
		}
		decl.Options = opts
	}

	return decl, nil
}

func refName(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return ""
	}
	return ref.Ref
}

// PropertyValidator checks one field against its OpenAPI schema.
type PropertyValidator struct {
	schema   *openapi3.Schema
	required bool
}

var _ schema.Validator = (*PropertyValidator)(nil)

// OpenAPISchema returns the schema the validator was built from.
func (p *PropertyValidator) OpenAPISchema() *openapi3.Schema {
	return p.schema
}

// Required reports whether the field is listed as required.
func (p *PropertyValidator) Required() bool {
	return p.required
}

// Validate implements schema.Validator. Values are brought to their JSON
// form first, so Go integers and typed slices are checked like decoded JSON.
func (p *PropertyValidator) Validate(values schema.Values, key, label, _ string) schema.Outcome {
	v, ok := values[key]
	if !ok || v == nil {
		if p.required {
			return schema.Violation(errs.NewValidationErrorWithCause(label, key, errs.NewValueIsRequiredError(key)))
		}
		return schema.Ok()
	}

	normalized, err := jsonValue(v)
	if err != nil {
		return schema.Violation(errs.NewValidationErrorWithCause(label, key, err))
	}

	if err = p.schema.VisitJSON(normalized); err != nil {
		return schema.Violation(errs.NewValidationErrorWithCause(label, key, err))
	}
	return schema.Ok()
}

func jsonValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
