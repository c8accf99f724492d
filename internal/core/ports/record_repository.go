package ports

import (
	"context"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
)

// RecordRepository defines the persistence contract for records.
type RecordRepository interface {
	// Add persists a new record. The record must be valid and not already exist.
	Add(ctx context.Context, rec *record.Record) error

	// Update persists the current values of an existing record.
	Update(ctx context.Context, rec *record.Record) error

	// Get retrieves a record of the given model by id.
	// Returns *errs.ObjectNotFoundError when nothing matches.
	Get(ctx context.Context, model string, id kernel.UUID) (*record.Record, error)

	// List returns every record of the given model, oldest first.
	List(ctx context.Context, model string) ([]*record.Record, error)
}
