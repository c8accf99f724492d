package record

import (
	"errors"
	"time"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record was not created
	// through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
)

// Record is a stored model entity. Its value set is owned by the record;
// accessors hand out copies.
type Record struct {
	id        kernel.UUID
	model     string
	values    schema.Values
	createdAt time.Time

	isConstructed bool
}

// NewRecord creates a record of the given model holding a copy of values.
//
//	rec, err := record.NewRecord(kernel.NewUUID(), "User", schema.Values{"name": "Tommi"})
func NewRecord(id kernel.UUID, model string, values schema.Values) (*Record, error) {
	return RestoreRecord(id, model, values, time.Now().UTC())
}

// RestoreRecord rebuilds a record loaded from persistence.
func RestoreRecord(id kernel.UUID, model string, values schema.Values, createdAt time.Time) (*Record, error) {
	rec := &Record{
		values:        values.Clone(),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		rec.setID(id),
		rec.setModel(model),
	); err != nil {
		return nil, err
	}

	return rec, nil
}

// Validate ensures the record was built by a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Model returns the name of the model the record belongs to.
func (r *Record) Model() string {
	return r.model
}

// Values returns a copy of the current value set.
func (r *Record) Values() schema.Values {
	return r.values.Clone()
}

// CreatedAt returns the creation timestamp.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// Apply overlays patch on the current values. Keys absent from patch are kept.
func (r *Record) Apply(patch schema.Values) {
	if r.values == nil {
		r.values = make(schema.Values, len(patch))
	}
	for key, value := range patch {
		r.values[key] = value
	}
}

// Patched returns a copy of the record with patch applied.
func (r *Record) Patched(patch schema.Values) *Record {
	next := *r
	next.values = r.values.Clone()
	next.Apply(patch)
	return &next
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	r.model = model
	return nil
}
