package augment_test

import (
	"context"

	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockModelType is a model type whose declarations can be changed between calls.
type MockModelType struct {
	mock.Mock
	name     string
	schema   schema.Schema
	defaults schema.Defaults
}

func (m *MockModelType) ModelName() string             { return m.name }
func (m *MockModelType) PropTypes() schema.Schema      { return m.schema }
func (m *MockModelType) DefaultProps() schema.Defaults { return m.defaults }

func (m *MockModelType) Create(ctx context.Context, values schema.Values, extra ...any) (ports.Instance, error) {
	args := m.Called(ctx, values, extra)
	inst, _ := args.Get(0).(ports.Instance)
	return inst, args.Error(1)
}

// MockInstance is an existing entity of typ.
type MockInstance struct {
	mock.Mock
	typ ports.ModelType
}

func (m *MockInstance) ModelType() ports.ModelType { return m.typ }

func (m *MockInstance) Update(ctx context.Context, values schema.Values, extra ...any) error {
	args := m.Called(ctx, values, extra)
	return args.Error(0)
}

// bareModelType declares neither schema nor defaults.
type bareModelType struct {
	mock.Mock
}

func (b *bareModelType) ModelName() string { return "Bare" }

func (b *bareModelType) Create(ctx context.Context, values schema.Values, extra ...any) (ports.Instance, error) {
	args := b.Called(ctx, values, extra)
	inst, _ := args.Get(0).(ports.Instance)
	return inst, args.Error(1)
}

// counter is a validator that records how often it ran and always passes.
type counter struct {
	calls int
}

func (c *counter) Validate(_ schema.Values, _, _, _ string) schema.Outcome {
	c.calls++
	return schema.Ok()
}
