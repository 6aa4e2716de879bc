package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Query(_ context.Context, _ order.Filter) ([]*order.Order, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) Stats(_ context.Context, _ order.Filter) (order.Stats, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) ListByUser(_ context.Context, _, _ int64, _ int) ([]*order.Order, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) UserStats(_ context.Context, _ int64) (order.UserStats, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) CountFulfilledByActor(_ context.Context) ([]leaderboard.ActorCount, error) {
	panic("not used by commands")
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, r *audit.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByEntity(_ context.Context, _, _ string) ([]*audit.Record, error) {
	panic("not used by commands")
}

func (m *MockAuditRepository) CountTransitionsByActor(_ context.Context, _, _, _ string) ([]leaderboard.ActorCount, error) {
	panic("not used by commands")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAccessChecker struct{ mock.Mock }

func (m *MockAccessChecker) Check(ctx context.Context, caller staff.Caller, op staff.Operation) error {
	args := m.Called(ctx, caller, op)
	return args.Error(0)
}

type MockItemCatalog struct{ mock.Mock }

func (m *MockItemCatalog) IsAutoFulfillable(ctx context.Context, itemID int64) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// fixture wires a handler's collaborators with a fixed clock.
type fixture struct {
	orders  *MockOrderRepository
	audits  *MockAuditRepository
	uow     *MockUoW
	factory *MockUoWFactory
	access  *MockAccessChecker
}

func newFixture() *fixture {
	f := &fixture{
		orders:  new(MockOrderRepository),
		audits:  new(MockAuditRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
		access:  new(MockAccessChecker),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	return f
}

func (f *fixture) deps() commands.Dependencies {
	return commands.Dependencies{
		UoWFactory: f.factory,
		Access:     f.access,
		Clock:      func() time.Time { return fixedNow },
	}
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.audits.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.access.AssertExpectations(t)
}

func newCaller(t *testing.T, roles ...staff.Role) staff.Caller {
	t.Helper()
	c, err := staff.NewCaller("77", roles, "", nil)
	require.NoError(t, err)
	return c
}

func storedOrder(t *testing.T, state order.State) *order.Order {
	t.Helper()
	s := order.Snapshot{
		Params: order.Params{
			ID:        42,
			UserID:    3,
			ItemID:    8,
			Quantity:  1,
			CreatedAt: fixedNow.Add(-24 * time.Hour),
		},
		State:   state,
		Version: 2,
	}
	switch state {
	case order.OnHold:
		s.HoldFrom = order.AwaitingFulfillment
	case order.Rejected:
		reason := "nope"
		s.RejectionReason = &reason
	case order.Fulfilled:
		at := fixedNow.Add(-time.Hour)
		s.FulfilledAt = &at
		s.FulfilledBy = "1"
	}
	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}

// recordWith matches an audit record for order 42 by actor 77 carrying changes.
func recordWith(changes ...audit.Change) any {
	return mock.MatchedBy(func(r *audit.Record) bool {
		if r.EntityType() != audit.EntityShopOrder || r.EntityID() != "42" || r.ActorID() != "77" {
			return false
		}
		if !r.RecordedAt().Equal(fixedNow) {
			return false
		}
		got := r.Changes()
		if len(got) != len(changes) {
			return false
		}
		for i := range got {
			if got[i].Field != changes[i].Field ||
				!sameValue(got[i].Old, changes[i].Old) ||
				!sameValue(got[i].New, changes[i].New) {
				return false
			}
		}
		return true
	})
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
