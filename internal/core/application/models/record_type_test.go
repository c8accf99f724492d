package models_test

import (
	"context"
	"errors"
	"testing"

	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/application/models"
	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/domain/model/schema/proptypes"
	"schemamodel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecordRepository struct{ mock.Mock }

func (m *MockRecordRepository) Add(ctx context.Context, rec *record.Record) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepository) Update(ctx context.Context, rec *record.Record) error {
	return m.Called(ctx, rec).Error(0)
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

func userCatalog() *record.Catalog {
	return record.NewCatalog(record.Declaration{
		Name: "User",
		Schema: schema.Schema{
			"name":       proptypes.String.IsRequired(),
			"age":        proptypes.Number.IsRequired(),
			"isFetching": proptypes.Bool.IsRequired(),
		},
		Defaults: schema.Defaults{"isFetching": false},
	})
}

func TestRecordType_Declarations(t *testing.T) {
	catalog := userCatalog()
	typ := models.NewRecordType("User", catalog, new(MockRecordRepository))

	assert.Equal(t, "User", typ.ModelName())
	assert.Len(t, typ.PropTypes(), 3)
	assert.Equal(t, schema.Defaults{"isFetching": false}, typ.DefaultProps())

	catalog.Replace(nil)

	assert.Nil(t, typ.PropTypes())
	assert.Nil(t, typ.DefaultProps())
}

func TestRecordType_Create(t *testing.T) {
	ctx := t.Context()
	repo := new(MockRecordRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(rec *record.Record) bool {
		return rec.Model() == "User" && rec.Values()["name"] == "Tommi"
	})).Return(nil).Once()

	inst, err := models.NewRecordType("User", userCatalog(), repo).Create(ctx, schema.Values{"name": "Tommi"})

	require.NoError(t, err)
	rec := inst.(*models.RecordInstance).Record()
	require.NoError(t, rec.ID().Validate())
	repo.AssertExpectations(t)
}

func TestRecordType_Create_UsesRequestedID(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	repo := new(MockRecordRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*record.Record")).Return(nil).Once()

	inst, err := models.NewRecordType("User", userCatalog(), repo).Create(ctx, schema.Values{}, "ignored", id)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(inst.(*models.RecordInstance).Record().ID()))
}

func TestRecordType_Create_RepositoryError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockRecordRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	inst, err := models.NewRecordType("User", userCatalog(), repo).Create(ctx, schema.Values{})

	require.EqualError(t, err, "insert failed")
	assert.Nil(t, inst)
}

func TestRecordInstance_Update(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored, err := record.NewRecord(id, "User", schema.Values{"name": "Tommi", "age": 25})
	require.NoError(t, err)

	repo := new(MockRecordRepository)
	repo.On("Get", ctx, "User", id).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(rec *record.Record) bool {
		return rec.Values()["age"] == 26 && rec.Values()["name"] == "Tommi"
	})).Return(nil).Once()

	inst, err := models.NewRecordType("User", userCatalog(), repo).Get(ctx, id)
	require.NoError(t, err)
	require.NoError(t, inst.Update(ctx, schema.Values{"age": 26}))

	assert.Equal(t, 26, inst.Record().Values()["age"])
	assert.Equal(t, 25, stored.Values()["age"], "loaded record is not mutated")
	repo.AssertExpectations(t)
}

func TestRecordInstance_Update_KeepsStateOnError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored, err := record.NewRecord(id, "User", schema.Values{"age": 25})
	require.NoError(t, err)

	repo := new(MockRecordRepository)
	repo.On("Get", ctx, "User", id).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(errs.NewObjectNotFoundError("record", id.String())).Once()

	inst, err := models.NewRecordType("User", userCatalog(), repo).Get(ctx, id)
	require.NoError(t, err)

	require.ErrorIs(t, inst.Update(ctx, schema.Values{"age": 26}), errs.ErrObjectNotFound)
	assert.Equal(t, 25, inst.Record().Values()["age"])
}

func TestRecordType_Augmented(t *testing.T) {
	ctx := t.Context()
	repo := new(MockRecordRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(rec *record.Record) bool {
		return assert.ObjectsAreEqual(
			schema.Values{"name": "Tommi", "age": 25, "isFetching": false},
			rec.Values(),
		)
	})).Return(nil).Once()

	users := augment.New(augment.Options{}).Augment(models.NewRecordType("User", userCatalog(), repo))

	inst, err := users.Create(ctx, schema.Values{"name": "Tommi", "age": 25})
	require.NoError(t, err)

	err = inst.Update(ctx, schema.Values{"name": 123})
	require.ErrorIs(t, err, errs.ErrValidationFailed)
	assert.Contains(t, err.Error(), "User.update")

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
