package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Query(ctx context.Context, f order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Stats(ctx context.Context, f order.Filter) (order.Stats, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(order.Stats), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID, excludeID int64, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, userID, excludeID, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) UserStats(ctx context.Context, userID int64) (order.UserStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(order.UserStats), args.Error(1)
}

func (m *MockOrderRepository) CountFulfilledByActor(ctx context.Context) ([]leaderboard.ActorCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]leaderboard.ActorCount)
	return counts, args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, r *audit.Record) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockAuditRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*audit.Record, error) {
	args := m.Called(ctx, entityType, entityID)
	records, _ := args.Get(0).([]*audit.Record)
	return records, args.Error(1)
}

func (m *MockAuditRepository) CountTransitionsByActor(ctx context.Context, entityType, field, newValue string) ([]leaderboard.ActorCount, error) {
	args := m.Called(ctx, entityType, field, newValue)
	counts, _ := args.Get(0).([]leaderboard.ActorCount)
	return counts, args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) FindByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserDirectory) FindByIDs(ctx context.Context, ids []int64) (map[int64]user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).(map[int64]user.User)
	return users, args.Error(1)
}

type MockAddressCodec struct{ mock.Mock }

func (m *MockAddressCodec) CanView(ctx context.Context, caller staff.Caller, o *order.Order) bool {
	return m.Called(ctx, caller, o).Bool(0)
}

func (m *MockAddressCodec) Decrypt(ctx context.Context, caller staff.Caller, o *order.Order) (*kernel.Address, error) {
	args := m.Called(ctx, caller, o)
	addr, _ := args.Get(0).(*kernel.Address)
	return addr, args.Error(1)
}

type MockAccessChecker struct{ mock.Mock }

func (m *MockAccessChecker) Check(ctx context.Context, caller staff.Caller, op staff.Operation) error {
	return m.Called(ctx, caller, op).Error(0)
}

type regionTable map[string]kernel.Region

func (r regionTable) CountryToRegion(country string) kernel.Region {
	if region, ok := r[country]; ok {
		return region
	}
	return kernel.RegionOther
}

var testRegions = regionTable{"US": kernel.RegionUS, "DE": kernel.RegionEU, "FR": kernel.RegionEU, "GB": kernel.RegionUK}

var created = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

func newCaller(t *testing.T, region string, roles ...staff.Role) staff.Caller {
	t.Helper()
	c, err := staff.NewCaller("77", roles, region, nil)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id, userID int64, country string, state order.State) *order.Order {
	t.Helper()
	price := decimal.NewFromInt(10)
	s := order.Snapshot{
		Params: order.Params{
			ID:          id,
			UserID:      userID,
			ItemID:      1,
			Quantity:    2,
			FrozenPrice: &price,
			CreatedAt:   created,
		},
		State: state,
	}
	if country != "" {
		addr, err := kernel.NewAddress(kernel.AddressParams{Line1: "1 St", City: "C", Country: country})
		require.NoError(t, err)
		s.FrozenAddress = &addr
	}
	if state == order.Fulfilled {
		at := created.Add(time.Hour)
		s.FulfilledAt = &at
		s.FulfilledBy = "77"
	}
	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}
