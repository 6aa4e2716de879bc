package commands_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveOrderCommand(t *testing.T) {
	caller := newCaller(t)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewApproveOrderCommand(caller, 3)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(3), cmd.OrderID())
		assert.Equal(t, "77", cmd.Caller().UserID())
	})

	t.Run("non-positive order id", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(caller, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "order id")
	})

	t.Run("caller must be constructed", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(staff.Caller{}, 3)

		require.ErrorIs(t, err, staff.ErrCallerIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.ApproveOrderCommand{}.Validate(), commands.ErrApproveOrderCommandIsNotConstructed)
	})
}

func TestCommands_ZeroValuesAreNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.RejectOrderCommand{}.Validate(), commands.ErrRejectOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.PlaceOnHoldCommand{}.Validate(), commands.ErrPlaceOnHoldCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ReleaseFromHoldCommand{}.Validate(), commands.ErrReleaseFromHoldCommandIsNotConstructed)
	assert.ErrorIs(t, commands.MarkFulfilledCommand{}.Validate(), commands.ErrMarkFulfilledCommandIsNotConstructed)
	assert.ErrorIs(t, commands.UpdateNotesCommand{}.Validate(), commands.ErrUpdateNotesCommandIsNotConstructed)
}

func TestNewRejectOrderCommand(t *testing.T) {
	cmd, err := commands.NewRejectOrderCommand(newCaller(t), 9, " spam ")

	require.NoError(t, err)
	assert.Equal(t, " spam ", cmd.Reason())
	assert.Equal(t, int64(9), cmd.OrderID())
}

func TestNewUpdateNotesCommand(t *testing.T) {
	t.Run("keeps the notes verbatim", func(t *testing.T) {
		cmd, err := commands.NewUpdateNotesCommand(newCaller(t), 9, "line one\nline two")

		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", cmd.Notes())
	})

	t.Run("rejects oversized notes", func(t *testing.T) {
		_, err := commands.NewUpdateNotesCommand(newCaller(t), 9, strings.Repeat("x", commands.MaxInternalNotesLength+1))

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "internal notes is too long")
	})
}
