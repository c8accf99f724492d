package commands

import (
	"context"

	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/application/models"
	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
)

// CreateRecordCommandHandler creates records through an augmented model type,
// so declared defaults are applied and the full schema is validated before
// anything reaches the repository.
//
// Example:
//
//	handler := NewCreateRecordCommandHandler(uowFactory, catalog, augmenter)
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValidationFailed) {
//	    // reject the request
//	}
type CreateRecordCommandHandler struct {
	uowFactory RecordUoWFactory
	catalog    *record.Catalog
	augmenter  *augment.Augmenter
}

// NewCreateRecordCommandHandler creates a handler for record creation.
// Per-model options in the catalog override the augmenter's configuration.
func NewCreateRecordCommandHandler(
	uowFactory RecordUoWFactory,
	catalog *record.Catalog,
	augmenter *augment.Augmenter,
) CreateRecordCommandHandler {
	return CreateRecordCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		augmenter:  augmenter,
	}
}

// Handle validates and stores the record, returning its id.
func (h *CreateRecordCommandHandler) Handle(ctx context.Context, cmd CreateRecordCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	decl, err := h.catalog.Get(cmd.Model())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	base := models.NewRecordType(decl.Name, h.catalog, uow.RecordRepository())
	typ := h.augmenter.Derive(decl.Options).Augment(base)

	if _, err = typ.Create(ctx, cmd.Values(), cmd.RecordID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return cmd.RecordID(), nil
}
