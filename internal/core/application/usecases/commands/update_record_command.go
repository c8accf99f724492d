package commands

import (
	"errors"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/guard"
)

var ErrUpdateRecordCommandIsNotConstructed = errors.New(
	"UpdateRecordCommand must be created via NewUpdateRecordCommand constructor",
)

// UpdateRecordCommand requests a partial update of an existing record.
// Only the supplied fields are validated and written.
type UpdateRecordCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	model    string
	values   schema.Values

	guard guard.ConstructorGuard
}

// NewUpdateRecordCommand creates a patch command for the given record.
func NewUpdateRecordCommand(model string, recordID kernel.UUID, values schema.Values) (UpdateRecordCommand, error) {
	cmd := UpdateRecordCommand{
		values: values.Clone(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setModel(model),
	); err != nil {
		return UpdateRecordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRecordCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecordCommandIsNotConstructed)
}

func (c UpdateRecordCommand) RecordID() kernel.UUID {
	return c.recordID
}

func (c UpdateRecordCommand) Model() string {
	return c.model
}

// Values returns a copy of the patch.
func (c UpdateRecordCommand) Values() schema.Values {
	return c.values.Clone()
}

func (c *UpdateRecordCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *UpdateRecordCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}
