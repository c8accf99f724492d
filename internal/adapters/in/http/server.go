package http

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"schemamodel/internal/core/application/usecases/commands"
	"schemamodel/internal/core/application/usecases/queries"
	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	// CreateRecordHandler is satisfied by *commands.CreateRecordCommandHandler.
	CreateRecordHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRecordCommand) (kernel.UUID, error)
	}

	// UpdateRecordHandler is satisfied by *commands.UpdateRecordCommandHandler.
	UpdateRecordHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRecordCommand) error
	}

	// GetRecordsHandler is satisfied by queries.GetRecordsQueryHandler.
	GetRecordsHandler interface {
		Handle(ctx context.Context, query queries.GetRecordsQuery) ([]queries.GetRecordsQueryResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	catalog *record.Catalog

	// Command handlers
	createRecordHandler CreateRecordHandler
	updateRecordHandler UpdateRecordHandler

	// Query handlers
	getRecordsHandler GetRecordsHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	catalog *record.Catalog,
	createRecordHandler CreateRecordHandler,
	updateRecordHandler UpdateRecordHandler,
	getRecordsHandler GetRecordsHandler,
) *Server {
	return &Server{
		catalog:             catalog,
		createRecordHandler: createRecordHandler,
		updateRecordHandler: updateRecordHandler,
		getRecordsHandler:   getRecordsHandler,
	}
}

// GetModels handles GET /api/v1/models - lists the declared models.
func (s *Server) GetModels(ctx echo.Context) error {
	names := s.catalog.Names()
	response := make([]Model, 0, len(names))
	for _, name := range names {
		decl, err := s.catalog.Get(name)
		if err != nil {
			continue
		}
		response = append(response, toModel(decl))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetRecords handles GET /api/v1/models/{model}/records.
func (s *Server) GetRecords(ctx echo.Context, model string) error {
	if _, err := s.catalog.Get(model); err != nil {
		return errorResponse(ctx, err, "Unknown model")
	}

	query, err := queries.NewGetRecordsQuery(model)
	if err != nil {
		return errorResponse(ctx, err, "Invalid query")
	}

	records, err := s.getRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve records")
	}

	response := make([]Record, len(records))
	for i, rec := range records {
		response[i] = Record{
			Id:        rec.ID.Bytes(),
			Model:     rec.Model,
			Values:    rec.Values,
			CreatedAt: rec.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRecord handles POST /api/v1/models/{model}/records.
// Declared defaults are merged and the full schema is validated.
func (s *Server) CreateRecord(ctx echo.Context, model string) error {
	values, err := bindValues(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateRecordCommand(model, values)
	if err != nil {
		return errorResponse(ctx, err, "Invalid record data")
	}

	id, err := s.createRecordHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create record")
	}

	return ctx.JSON(http.StatusCreated, CreatedRecord{Id: id.Bytes()})
}

// UpdateRecord handles PATCH /api/v1/models/{model}/records/{id}.
// Only the supplied fields are validated.
func (s *Server) UpdateRecord(ctx echo.Context, model string, id openapi_types.UUID) error {
	values, err := bindValues(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return errorResponse(ctx, err, "Invalid record id")
	}

	cmd, err := commands.NewUpdateRecordCommand(model, recordID, values)
	if err != nil {
		return errorResponse(ctx, err, "Invalid record data")
	}

	if err = s.updateRecordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to update record")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenAPI handles GET /openapi.json - describes the current catalog.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, BuildDocument(s.catalog))
}

// bindValues decodes the request body only; path parameters never leak
// into the value set.
func bindValues(ctx echo.Context) (RecordValues, error) {
	var values RecordValues
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = RecordValues{}
	}
	return values, nil
}

func toModel(decl record.Declaration) Model {
	fields := decl.Schema.Keys()
	if fields == nil {
		fields = []string{}
	}
	required := make([]string, 0, len(fields))
	for _, field := range fields {
		if r, ok := decl.Schema[field].(interface{ Required() bool }); ok && r.Required() {
			required = append(required, field)
		}
	}
	slices.Sort(required)

	return Model{
		Name:     decl.Name,
		Fields:   fields,
		Required: required,
		Defaults: decl.Defaults,
		Options:  decl.Options,
	}
}

// errorResponse maps domain errors to status codes: validation failures are
// 422, unknown models or records 404, malformed input 400.
func errorResponse(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidationFailed):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
		message = message + ": " + err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
