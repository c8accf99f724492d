package guard_test

import (
	"errors"
	"testing"

	"schemamodel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueType(t *testing.T) {
	type patch struct {
		field string
		guard guard.ConstructorGuard
	}
	errPatchNotConstructed := errors.New("patch must be created via newPatch")

	newPatch := func(field string) (patch, error) {
		if field == "" {
			return patch{}, errors.New("field is required")
		}
		return patch{field: field, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_result_is_valid", func(t *testing.T) {
		p, err := newPatch("name")
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPatchNotConstructed))
		assert.Equal(t, "name", p.field)
	})

	t.Run("literal_is_rejected", func(t *testing.T) {
		p := patch{field: "name"}
		require.ErrorIs(t, p.guard.Validate(errPatchNotConstructed), errPatchNotConstructed)
	})

	t.Run("constructor_rejects_empty_field", func(t *testing.T) {
		_, err := newPatch("")
		require.Error(t, err)
	})
}
