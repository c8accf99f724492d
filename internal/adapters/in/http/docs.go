package http

import (
	"sync"
	"sync/atomic"

	"schemamodel/internal/core/domain/model/record"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
)

// SwaggerInstance is the swag registry name the Swagger UI reads from.
const SwaggerInstance = "schemamodel"

const apiVersion = "1.0.0"

// BuildDocument describes the API for the models currently in catalog.
// Each model becomes a component schema; fields backed by an OpenAPI schema
// keep it, fields checked by proptypes are mapped from their type name.
func BuildDocument(catalog *record.Catalog) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "schemamodel",
			Version: apiVersion,
		},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Error": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
					WithProperty("code", openapi3.NewIntegerSchema()).
					WithProperty("message", openapi3.NewStringSchema()).
					WithRequired([]string{"code", "message"})),
				"CreatedRecord": openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
					WithProperty("id", openapi3.NewUUIDSchema()).
					WithRequired([]string{"id"})),
			},
		},
		Paths: openapi3.NewPaths(),
	}

	for _, name := range catalog.Names() {
		decl, err := catalog.Get(name)
		if err != nil {
			continue
		}
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", modelSchema(decl))
		addModelPaths(doc, name)
	}

	return doc
}

func modelSchema(decl record.Declaration) *openapi3.Schema {
	s := openapi3.NewObjectSchema().WithAnyAdditionalProperties()
	required := make([]string, 0, len(decl.Schema))

	for _, field := range decl.Schema.Keys() {
		prop := fieldSchema(decl.Schema[field])
		if def, ok := decl.Defaults[field]; ok {
			prop = prop.WithDefault(def)
		}
		s.WithProperty(field, prop)

		if r, ok := decl.Schema[field].(interface{ Required() bool }); ok && r.Required() {
			required = append(required, field)
		}
	}

	if len(required) > 0 {
		s.WithRequired(required)
	}
	return s
}

func fieldSchema(v any) *openapi3.Schema {
	if d, ok := v.(interface{ OpenAPISchema() *openapi3.Schema }); ok && d.OpenAPISchema() != nil {
		cp := *d.OpenAPISchema()
		return &cp
	}

	if a, ok := v.(interface{ Allowed() []any }); ok {
		if allowed := a.Allowed(); len(allowed) > 0 {
			return openapi3.NewSchema().WithEnum(allowed...)
		}
	}

	t, ok := v.(interface{ TypeName() string })
	if !ok {
		return openapi3.NewSchema()
	}

	switch t.TypeName() {
	case "string":
		return openapi3.NewStringSchema()
	case "bool":
		return openapi3.NewBoolSchema()
	case "number":
		return openapi3.NewFloat64Schema()
	case "array":
		return openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
	case "object":
		return openapi3.NewObjectSchema().WithAnyAdditionalProperties()
	default:
		return openapi3.NewSchema()
	}
}

func addModelPaths(doc *openapi3.T, model string) {
	modelRef := "#/components/schemas/" + model
	errorResponses := func(op *openapi3.Operation, codes ...int) {
		for _, code := range codes {
			op.AddResponse(code, openapi3.NewResponse().
				WithDescription("error").
				WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/Error", nil)))
		}
	}

	create := openapi3.NewOperation()
	create.OperationID = "create" + model
	create.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithJSONSchemaRef(openapi3.NewSchemaRef(modelRef, nil)),
	}
	create.AddResponse(201, openapi3.NewResponse().
		WithDescription("created").
		WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/CreatedRecord", nil)))
	errorResponses(create, 400, 404, 422)

	list := openapi3.NewOperation()
	list.OperationID = "list" + model
	list.AddResponse(200, openapi3.NewResponse().
		WithDescription("records").
		WithJSONSchema(openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema())))
	errorResponses(list, 404)

	update := openapi3.NewOperation()
	update.OperationID = "update" + model
	update.AddParameter(openapi3.NewPathParameter("id").WithSchema(openapi3.NewUUIDSchema()))
	update.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithJSONSchema(openapi3.NewObjectSchema().WithAnyAdditionalProperties()),
	}
	update.AddResponse(204, openapi3.NewResponse().WithDescription("updated"))
	errorResponses(update, 400, 404, 422)

	doc.AddOperation("/api/v1/models/"+model+"/records", "POST", create)
	doc.AddOperation("/api/v1/models/"+model+"/records", "GET", list)
	doc.AddOperation("/api/v1/models/"+model+"/records/{id}", "PATCH", update)
}

// catalogDoc serves the generated document to swag readers.
type catalogDoc struct {
	catalog atomic.Pointer[record.Catalog]
}

func (d *catalogDoc) ReadDoc() string {
	catalog := d.catalog.Load()
	if catalog == nil {
		catalog = record.NewCatalog()
	}
	raw, err := json.Marshal(BuildDocument(catalog))
	if err != nil {
		return "{}"
	}
	return string(raw)
}

var (
	swaggerDoc          = &catalogDoc{}
	registerSwaggerOnce sync.Once
)

// RegisterDocs publishes catalog under SwaggerInstance. swag allows a name to
// be registered only once, so later calls just switch the catalog.
func RegisterDocs(catalog *record.Catalog) {
	swaggerDoc.catalog.Store(catalog)
	registerSwaggerOnce.Do(func() {
		swag.Register(SwaggerInstance, swaggerDoc)
	})
}
