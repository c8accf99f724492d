package commands

import (
	"errors"

	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/pkg/errs"
	"schemamodel/internal/pkg/guard"
)

var (
	ErrCreateRecordCommandIsNotConstructed = errors.New(
		"CreateRecordCommand must be created via NewCreateRecordCommand constructor",
	)
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
)

// CreateRecordCommand requests a new record of a declared model.
//
// Example:
//
//	cmd, err := NewCreateRecordCommand("User", schema.Values{"name": "Tommi", "age": 25})
//	if err != nil {
//	    return fmt.Errorf("invalid record data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateRecordCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	model    string
	values   schema.Values

	guard guard.ConstructorGuard
}

// NewCreateRecordCommand creates a command with a freshly generated record id.
func NewCreateRecordCommand(model string, values schema.Values) (CreateRecordCommand, error) {
	return NewCreateRecordCommandWithID(kernel.NewUUID(), model, values)
}

// NewCreateRecordCommandWithID creates a command for a caller-chosen record id.
func NewCreateRecordCommandWithID(recordID kernel.UUID, model string, values schema.Values) (CreateRecordCommand, error) {
	cmd := CreateRecordCommand{
		values: values.Clone(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setModel(model),
	); err != nil {
		return CreateRecordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecordCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecordCommandIsNotConstructed)
}

// RecordID returns the id the new record will get.
func (c CreateRecordCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Model returns the declared model name.
func (c CreateRecordCommand) Model() string {
	return c.model
}

// Values returns a copy of the caller-supplied values.
func (c CreateRecordCommand) Values() schema.Values {
	return c.values.Clone()
}

func (c *CreateRecordCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *CreateRecordCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}
