// Package models adapts catalog declarations and the record repository into
// model types that can be augmented.
package models

import (
	"context"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/ports"
)

// RecordType is the model type of one catalog declaration, persisted
// through a RecordRepository. Its schema and defaults are looked up in the
// catalog on every call.
type RecordType struct {
	name    string
	catalog *record.Catalog
	repo    ports.RecordRepository
}

var (
	_ ports.ModelType        = (*RecordType)(nil)
	_ ports.SchemaDeclarer   = (*RecordType)(nil)
	_ ports.DefaultsDeclarer = (*RecordType)(nil)
)

// NewRecordType binds the model called name to repo.
func NewRecordType(name string, catalog *record.Catalog, repo ports.RecordRepository) *RecordType {
	return &RecordType{name: name, catalog: catalog, repo: repo}
}

func (t *RecordType) ModelName() string {
	return t.name
}

// PropTypes returns the current schema, or nil once the model has been
// removed from the catalog.
func (t *RecordType) PropTypes() schema.Schema {
	decl, err := t.catalog.Get(t.name)
	if err != nil {
		return nil
	}
	return decl.Schema
}

// DefaultProps returns the current defaults, or nil once the model has been
// removed from the catalog.
func (t *RecordType) DefaultProps() schema.Defaults {
	decl, err := t.catalog.Get(t.name)
	if err != nil {
		return nil
	}
	return decl.Defaults
}

// Create stores a new record holding values. A kernel.UUID among extra is
// used as the record id; other extra arguments are ignored.
func (t *RecordType) Create(ctx context.Context, values schema.Values, extra ...any) (ports.Instance, error) {
	id := kernel.NewUUID()
	for _, arg := range extra {
		if requested, ok := arg.(kernel.UUID); ok {
			id = requested
		}
	}

	rec, err := record.NewRecord(id, t.name, values)
	if err != nil {
		return nil, err
	}

	if err = t.repo.Add(ctx, rec); err != nil {
		return nil, err
	}

	return &RecordInstance{typ: t, rec: rec}, nil
}

// Get loads an existing record of this model.
func (t *RecordType) Get(ctx context.Context, id kernel.UUID) (*RecordInstance, error) {
	rec, err := t.repo.Get(ctx, t.name, id)
	if err != nil {
		return nil, err
	}
	return &RecordInstance{typ: t, rec: rec}, nil
}

// RecordInstance is a stored record seen as a model instance.
type RecordInstance struct {
	typ *RecordType
	rec *record.Record
}

var _ ports.Instance = (*RecordInstance)(nil)

func (i *RecordInstance) ModelType() ports.ModelType {
	return i.typ
}

// Record returns the current state of the record.
func (i *RecordInstance) Record() *record.Record {
	return i.rec
}

// Update patches the record with values and persists it. The in-memory
// state only changes once the repository accepted the patch.
func (i *RecordInstance) Update(ctx context.Context, values schema.Values, _ ...any) error {
	next := i.rec.Patched(values)
	if err := i.typ.repo.Update(ctx, next); err != nil {
		return err
	}
	i.rec = next
	return nil
}
