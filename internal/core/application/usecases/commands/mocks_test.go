package commands_test

import (
	"context"

	"schemamodel/internal/core/application/usecases/commands"
	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct{ mock.Mock }

func (m *MockRecordRepository) Add(ctx context.Context, rec *record.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordRepository) Update(ctx context.Context, rec *record.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordRepository) Get(ctx context.Context, model string, id kernel.UUID) (*record.Record, error) {
	args := m.Called(ctx, model, id)
	rec, _ := args.Get(0).(*record.Record)
	return rec, args.Error(1)
}

func (m *MockRecordRepository) List(ctx context.Context, model string) ([]*record.Record, error) {
	args := m.Called(ctx, model)
	recs, _ := args.Get(0).([]*record.Record)
	return recs, args.Error(1)
}

type MockRecordUoW struct{ mock.Mock }

func (m *MockRecordUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecordUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecordUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecordUoW) RecordRepository() ports.RecordRepository {
	args := m.Called()
	return args.Get(0).(ports.RecordRepository)
}

type MockRecordUoWFactory struct{ mock.Mock }

func (m *MockRecordUoWFactory) Create() commands.RecordUoW {
	args := m.Called()
	return args.Get(0).(commands.RecordUoW)
}
