// Package recordrepo persists records in a single PostgreSQL table. Values
// are stored as a jsonb document so every declared model shares one schema.
package recordrepo

import (
	"time"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting records.
type RecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Model     string    `gorm:"type:varchar(255);not null;index"`
	Values    []byte    `gorm:"column:data;type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default "record_dtos".
func (RecordDTO) TableName() string {
	return "records"
}

func fromDomain(rec *record.Record) (RecordDTO, error) {
	values := rec.Values()
	if values == nil {
		values = schema.Values{}
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return RecordDTO{}, err
	}

	return RecordDTO{
		ID:        rec.ID().Bytes(),
		Model:     rec.Model(),
		Values:    raw,
		CreatedAt: rec.CreatedAt(),
	}, nil
}

func toDomain(dto RecordDTO) (*record.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	values, err := schema.DecodeValues(dto.Values)
	if err != nil {
		return nil, err
	}

	return record.RestoreRecord(id, dto.Model, values, dto.CreatedAt)
}
