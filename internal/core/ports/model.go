// Package ports defines the contracts between the core and its adapters:
// the model surface that augmentation wraps, and the persistence contracts
// the record model is built on.
package ports

import (
	"context"

	"schemamodel/internal/core/domain/model/schema"
)

// ModelType is the type-level surface of a model: it has a name used in
// diagnostics and creates new instances.
//
// Extra arguments are opaque to callers that wrap a ModelType and are
// forwarded unchanged.
type ModelType interface {
	ModelName() string
	Create(ctx context.Context, values schema.Values, extra ...any) (Instance, error)
}

// Instance is a single model entity.
type Instance interface {
	// ModelType returns the type that declares this instance's schema and
	// defaults. It may differ from the type that created it.
	ModelType() ModelType

	// Update applies a partial value set.
	Update(ctx context.Context, values schema.Values, extra ...any) error
}

// SchemaDeclarer is implemented by model types that declare a schema.
// It is queried on every call, never cached.
type SchemaDeclarer interface {
	PropTypes() schema.Schema
}

// DefaultsDeclarer is implemented by model types that declare default values.
type DefaultsDeclarer interface {
	DefaultProps() schema.Defaults
}
