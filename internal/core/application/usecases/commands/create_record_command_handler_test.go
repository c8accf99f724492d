package commands_test

import (
	"errors"
	"testing"

	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/application/usecases/commands"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/domain/model/schema/proptypes"
	"schemamodel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userCatalog(options map[string]any) *record.Catalog {
	return record.NewCatalog(record.Declaration{
		Name: "User",
		Schema: schema.Schema{
			"name":       proptypes.String.IsRequired(),
			"age":        proptypes.Number.IsRequired(),
			"isFetching": proptypes.Bool.IsRequired(),
		},
		Defaults: schema.Defaults{"isFetching": false},
		Options:  options,
	})
}

func strictAugmenter() *augment.Augmenter {
	return augment.New(augment.Options{Validate: augment.Bool(true)})
}

func TestCreateRecordCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRecordCommand("User", schema.Values{"name": "Tommi", "age": 25})

	repo := new(MockRecordRepository)
	uow := new(MockRecordUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecordRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(rec *record.Record) bool {
			return rec.ID().IsEqual(cmd.RecordID()) &&
				assert.ObjectsAreEqual(schema.Values{"name": "Tommi", "age": 25, "isFetching": false}, rec.Values())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, id.IsEqual(cmd.RecordID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRecordCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockRecordUoWFactory)
	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())

	_, err := h.Handle(t.Context(), commands.CreateRecordCommand{})

	require.ErrorIs(t, err, commands.ErrCreateRecordCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateRecordCommandHandler_Handle_UnknownModel(t *testing.T) {
	cmd, _ := commands.NewCreateRecordCommand("Invoice", schema.Values{})
	factory := new(MockRecordUoWFactory)
	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())

	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateRecordCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRecordCommand("User", schema.Values{"other": 1})

	repo := new(MockRecordRepository)
	uow := new(MockRecordUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RecordRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())
	_, err := h.Handle(ctx, cmd)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "User.create", validationErr.Label)
	assert.Equal(t, "age", validationErr.Field)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateRecordCommandHandler_Handle_ModelOptionsDisableValidation(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRecordCommand("User", schema.Values{"other": 1})

	repo := new(MockRecordRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(rec *record.Record) bool {
		return assert.ObjectsAreEqual(schema.Values{"other": 1}, rec.Values())
	})).Return(nil).Once()
	uow := new(MockRecordUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RecordRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	catalog := userCatalog(map[string]any{"validate": false, "useDefaults": false})
	h := commands.NewCreateRecordCommandHandler(factory, catalog, strictAugmenter())
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateRecordCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRecordCommand("User", schema.Values{"name": "Tommi", "age": 25})

	uow := new(MockRecordUoW)
	factory := new(MockRecordUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
}

func TestCreateRecordCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRecordCommand("User", schema.Values{"name": "Tommi", "age": 25})

	repo := new(MockRecordRepository)
	uow := new(MockRecordUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecordRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateRecordCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateRecordCommand("User", schema.Values{"name": "Tommi", "age": 25})

	repo := new(MockRecordRepository)
	uow := new(MockRecordUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RecordRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecordCommandHandler(factory, userCatalog(nil), strictAugmenter())
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
}
