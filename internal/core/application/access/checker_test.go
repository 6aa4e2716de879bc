package access_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/access"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthorizer struct {
	mock.Mock
}

func (m *mockAuthorizer) Authorize(ctx context.Context, caller staff.Caller, capability staff.Capability) (bool, error) {
	args := m.Called(ctx, caller, capability)
	return args.Bool(0), args.Error(1)
}

func newCaller(t *testing.T, roles ...staff.Role) staff.Caller {
	t.Helper()
	c, err := staff.NewCaller("5", roles, "", nil)
	require.NoError(t, err)
	return c
}

func TestChecker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("admin needs no capability", func(t *testing.T) {
		authorizer := &mockAuthorizer{}
		checker := access.NewChecker(services.NewAccessPolicy(), authorizer)

		err := checker.Check(ctx, newCaller(t, staff.RoleAdmin), staff.OpApprove)

		require.NoError(t, err)
		authorizer.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fulfillment caller is refused approval without asking the authorizer", func(t *testing.T) {
		authorizer := &mockAuthorizer{}
		checker := access.NewChecker(services.NewAccessPolicy(), authorizer)

		err := checker.Check(ctx, newCaller(t, staff.RoleFulfillment), staff.OpApprove)

		var forbidden *errs.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "approve", forbidden.Operation)
		authorizer.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fulfillment caller needs the fulfillment capability", func(t *testing.T) {
		caller := newCaller(t, staff.RoleFulfillment)
		authorizer := &mockAuthorizer{}
		authorizer.On("Authorize", ctx, caller, staff.CapabilityFulfillmentView).Return(true, nil).Once()
		checker := access.NewChecker(services.NewAccessPolicy(), authorizer)

		err := checker.Check(ctx, caller, staff.OpMarkFulfilled)

		require.NoError(t, err)
		authorizer.AssertExpectations(t)
	})

	t.Run("staff without the capability is forbidden", func(t *testing.T) {
		caller := newCaller(t)
		authorizer := &mockAuthorizer{}
		authorizer.On("Authorize", ctx, caller, staff.CapabilityShopOrders).Return(false, nil).Once()
		checker := access.NewChecker(services.NewAccessPolicy(), authorizer)

		err := checker.Check(ctx, caller, staff.OpReject)

		require.ErrorIs(t, err, errs.ErrForbidden)
		authorizer.AssertExpectations(t)
	})

	t.Run("authorizer failures are not denials", func(t *testing.T) {
		caller := newCaller(t)
		authorizer := &mockAuthorizer{}
		authorizer.On("Authorize", ctx, caller, staff.CapabilityShopOrders).Return(false, errors.New("down")).Once()
		checker := access.NewChecker(services.NewAccessPolicy(), authorizer)

		err := checker.Check(ctx, caller, staff.OpReject)

		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "down")
	})

	t.Run("unconstructed caller", func(t *testing.T) {
		checker := access.NewChecker(services.NewAccessPolicy(), &mockAuthorizer{})

		err := checker.Check(ctx, staff.Caller{}, staff.OpApprove)

		require.ErrorIs(t, err, staff.ErrCallerIsNotConstructed)
	})
}
