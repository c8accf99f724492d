package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RecordValues is the free-form field map of a record.
type RecordValues = map[string]any

// Record is a stored record as returned by the API.
type Record struct {
	Id        openapi_types.UUID `json:"id"`
	Model     string             `json:"model"`
	Values    RecordValues       `json:"values"`
	CreatedAt time.Time          `json:"createdAt"`
}

// CreatedRecord is the response of a successful create.
type CreatedRecord struct {
	Id openapi_types.UUID `json:"id"`
}

// Model describes a declared model.
type Model struct {
	Name     string         `json:"name"`
	Fields   []string       `json:"fields"`
	Required []string       `json:"required"`
	Defaults map[string]any `json:"defaults,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List declared models
	// (GET /api/v1/models)
	GetModels(ctx echo.Context) error
	// List records of a model
	// (GET /api/v1/models/{model}/records)
	GetRecords(ctx echo.Context, model string) error
	// Create a record
	// (POST /api/v1/models/{model}/records)
	CreateRecord(ctx echo.Context, model string) error
	// Patch a record
	// (PATCH /api/v1/models/{model}/records/{id})
	UpdateRecord(ctx echo.Context, model string, id openapi_types.UUID) error
	// OpenAPI document for the current catalog
	// (GET /openapi.json)
	GetOpenAPI(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetModels(ctx echo.Context) error {
	return w.Handler.GetModels(ctx)
}

func (w *ServerInterfaceWrapper) GetRecords(ctx echo.Context) error {
	model, err := bindModel(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetRecords(ctx, model)
}

func (w *ServerInterfaceWrapper) CreateRecord(ctx echo.Context) error {
	model, err := bindModel(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateRecord(ctx, model)
}

func (w *ServerInterfaceWrapper) UpdateRecord(ctx echo.Context) error {
	model, err := bindModel(ctx)
	if err != nil {
		return err
	}

	var id openapi_types.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.UpdateRecord(ctx, model, id)
}

func (w *ServerInterfaceWrapper) GetOpenAPI(ctx echo.Context) error {
	return w.Handler.GetOpenAPI(ctx)
}

func bindModel(ctx echo.Context) (string, error) {
	var model string
	err := runtime.BindStyledParameterWithOptions("simple", "model", ctx.Param("model"), &model,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter model: %s", err))
	}
	return model, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, prefixing every path with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/models", wrapper.GetModels)
	router.GET(baseURL+"/api/v1/models/:model/records", wrapper.GetRecords)
	router.POST(baseURL+"/api/v1/models/:model/records", wrapper.CreateRecord)
	router.PATCH(baseURL+"/api/v1/models/:model/records/:id", wrapper.UpdateRecord)
	router.GET(baseURL+"/openapi.json", wrapper.GetOpenAPI)
}
