package commands

import (
	"context"

	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/application/models"
	"schemamodel/internal/core/domain/model/record"
)

// UpdateRecordCommandHandler loads a record and patches it through an
// augmented instance. No defaults are applied on update.
type UpdateRecordCommandHandler struct {
	uowFactory RecordUoWFactory
	catalog    *record.Catalog
	augmenter  *augment.Augmenter
}

// NewUpdateRecordCommandHandler creates a handler for record updates.
func NewUpdateRecordCommandHandler(
	uowFactory RecordUoWFactory,
	catalog *record.Catalog,
	augmenter *augment.Augmenter,
) UpdateRecordCommandHandler {
	return UpdateRecordCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		augmenter:  augmenter,
	}
}

// Handle validates the supplied fields and persists the patch.
// Returns *errs.ObjectNotFoundError for an unknown model or record.
func (h *UpdateRecordCommandHandler) Handle(ctx context.Context, cmd UpdateRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	decl, err := h.catalog.Get(cmd.Model())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	base := models.NewRecordType(decl.Name, h.catalog, uow.RecordRepository())
	inst, err := base.Get(ctx, cmd.RecordID())
	if err != nil {
		return err
	}

	typ := h.augmenter.Derive(decl.Options).Augment(base)
	if err = typ.Wrap(inst).Update(ctx, cmd.Values()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
