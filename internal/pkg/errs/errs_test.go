package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with integer ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "12\n34")
		assert.Equal(t, "object not found: 12 34", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be positive")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: must be positive)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("actor")

		assert.Equal(t, "value is required: actor", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("actor", errors.New("empty id"))

		assert.Equal(t, "value is required: actor (cause: empty id)", err.Error())
	})
}

func TestWorkflowErrors(t *testing.T) {
	t.Run("forbidden names only the operation", func(t *testing.T) {
		err := errs.NewForbiddenError("approve")
		assert.Equal(t, "forbidden: approve", err.Error())
		assert.Equal(t, "forbidden", errs.NewForbiddenError("").Error())
	})

	t.Run("invalid transition names the current state", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("approve", "rejected")
		assert.Equal(t, "invalid transition: cannot approve an order in state rejected", err.Error())
	})

	t.Run("validation joins field messages", func(t *testing.T) {
		err := errs.NewValidationError("quantity must be positive", "user is required")
		assert.Equal(t, "validation failed: quantity must be positive, user is required", err.Error())
		assert.Equal(t, "validation failed", errs.NewValidationError().Error())
	})

	t.Run("conflict asks for a reload", func(t *testing.T) {
		err := errs.NewConflictError("order", int64(7))
		assert.Equal(t, "conflict: order 7 was modified concurrently, reload and retry", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("state"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("actor"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewForbiddenError("reject"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidTransitionError("reject", "fulfilled"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewValidationError("x"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewConflictError("order", 1), errs.ErrConflict)
	})

	t.Run("errors.As extracts details", func(t *testing.T) {
		var wrapped error = errs.NewInvalidTransitionError("mark_fulfilled", "pending")

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "pending", target.CurrentState)
	})
}
