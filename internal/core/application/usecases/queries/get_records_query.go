// Package queries contains read operations for retrieving system state.
// Queries bypass the model types and read stored records directly.
package queries

import (
	"errors"
	"time"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/errs"
	"schemamodel/internal/pkg/guard"
)

var (
	ErrGetRecordsQueryIsNotConstructed = errors.New(
		"GetRecordsQuery must be created via NewGetRecordsQuery constructor",
	)
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
)

// GetRecordsQuery lists every stored record of one model.
//
// Example:
//
//	query, err := NewGetRecordsQuery("User")
//	if err != nil {
//	    return err
//	}
//	records, err := handler.Handle(ctx, query)
type GetRecordsQuery struct {
	model string

	guard guard.ConstructorGuard
}

// NewGetRecordsQuery creates a query for the records of model.
func NewGetRecordsQuery(model string) (GetRecordsQuery, error) {
	if model == "" {
		return GetRecordsQuery{}, ErrModelIsRequired
	}
	return GetRecordsQuery{model: model, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecordsQueryIsNotConstructed)
}

func (q GetRecordsQuery) Model() string {
	return q.model
}

// GetRecordsQueryResponse is the read model of a single record.
type GetRecordsQueryResponse struct {
	ID        kernel.UUID
	Model     string
	Values    schema.Values
	CreatedAt time.Time
}
