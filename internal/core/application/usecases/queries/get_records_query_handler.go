package queries

import (
	"context"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/schema"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecordsQueryHandler reads records with plain SQL, oldest first.
// Stored JSON numbers come back as float64.
type GetRecordsQueryHandler struct {
	db *gorm.DB
}

// NewGetRecordsQueryHandler creates a handler for record listing queries.
func NewGetRecordsQueryHandler(db *gorm.DB) GetRecordsQueryHandler {
	return GetRecordsQueryHandler{db: db}
}

// Handle executes the query. An unknown model yields an empty slice.
func (h GetRecordsQueryHandler) Handle(
	ctx context.Context,
	query GetRecordsQuery,
) ([]GetRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetRecordsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			model,
			data,
			created_at
		FROM records
		WHERE model = ?
		ORDER BY created_at, id
	`, query.Model()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec GetRecordsQueryResponse
		var id uuid.UUID
		var raw []byte

		if err = rows.Scan(&id, &rec.Model, &raw, &rec.CreatedAt); err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rec.ID = recordID

		if rec.Values, err = schema.DecodeValues(raw); err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
