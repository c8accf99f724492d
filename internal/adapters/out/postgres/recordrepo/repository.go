package recordrepo

import (
	"context"
	"errors"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/ports"
	"schemamodel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecordRepository implements RecordRepository using GORM.
type GormRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

var _ ports.RecordRepository = (*GormRecordRepository)(nil)

// aggregateTracker defines the interface for tracking written records.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecordRepository creates a new GORM record repository.
func NewGormRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormRecordRepository {
	return &GormRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new record to the database.
func (r *GormRecordRepository) Add(ctx context.Context, rec *record.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(rec)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rec.ID(), rec)
	return nil
}

// Update overwrites the stored values of an existing record.
// The model and creation time are never changed.
func (r *GormRecordRepository) Update(ctx context.Context, rec *record.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(rec)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ? AND model = ?", dto.ID, dto.Model).
		Update("data", dto.Values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("record", rec.ID().String())
	}

	r.tracker.TrackAggregate(rec.ID(), rec)
	return nil
}

// Get retrieves a record of the given model by ID.
func (r *GormRecordRepository) Get(ctx context.Context, model string, id kernel.UUID) (*record.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND model = ?", id.Bytes(), model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every record of the model, oldest first.
func (r *GormRecordRepository) List(ctx context.Context, model string) ([]*record.Record, error) {
	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).
		Where("model = ?", model).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*record.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
