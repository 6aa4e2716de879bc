package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

var base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &orderrepo.OrderDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("shop_orders", "users"))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	addr, err := kernel.NewAddress(kernel.AddressParams{
		FirstName: "Ada", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "us",
	})
	suite.Require().NoError(err)
	price := decimal.RequireFromString("12.50")
	o, err := order.NewOrder(order.Params{
		ID: 1, UserID: 7, ItemID: 3, Quantity: 2,
		FrozenPrice: &price, FrozenAddress: &addr,
		InternalNotes: "gift wrap", CreatedAt: base,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	got, err := suite.repository.Get(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.State())
	suite.Equal(int64(7), got.UserID())
	suite.Equal(2, got.Quantity())
	suite.True(price.Equal(*got.FrozenPrice()))
	suite.Equal("US", got.FrozenAddress().Country())
	suite.Equal("12345", got.FrozenAddress().PostalCode())
	suite.Equal("gift wrap", got.InternalNotes())
	suite.True(base.Equal(got.CreatedAt()))
	suite.Zero(got.Version())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", "1", o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithoutAddressOrPrice() {
	ctx := context.Background()
	suite.add(1, 7, 3, order.Pending, base)

	got, err := suite.repository.Get(ctx, 1)

	suite.Require().NoError(err)
	suite.Nil(got.FrozenAddress())
	suite.Nil(got.FrozenPrice())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.repository.Get(context.Background(), 404)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndBumpsVersion() {
	ctx := context.Background()
	suite.add(1, 7, 3, order.Pending, base)
	o, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)

	_, err = o.PlaceOnHold()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(1, o.Version())

	got, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.OnHold, got.State())
	suite.Equal(order.Pending, got.HoldFrom())
	suite.Equal(1, got.Version())

	_, err = got.Reject("")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, got))

	rejected, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, rejected.State())
	suite.Equal(order.DefaultRejectionReason, *rejected.RejectionReason())
	suite.Equal(2, rejected.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	suite.add(1, 7, 3, order.Pending, base)
	first, _ := suite.repository.Get(ctx, 1)
	second, _ := suite.repository.Get(ctx, 1)

	_, err := first.Approve("77", false, base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.Reject("duplicate")
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	stored, _ := suite.repository.Get(ctx, 1)
	suite.Equal(order.AwaitingFulfillment, stored.State())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingRow() {
	o, err := order.NewOrder(order.Params{ID: 9, UserID: 1, ItemID: 1, Quantity: 1, CreatedAt: base})
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_OversizedActorIsValidationError() {
	ctx := context.Background()
	suite.add(1, 7, 3, order.Pending, base)
	o, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)

	_, err = o.Approve(strings.Repeat("9", 65), true, base)
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrValidation)
	suite.Equal(0, o.Version())
	stored, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, stored.State())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestQuery_Filters() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.DB.Create(&[]userrepo.UserDTO{
		{ID: 7, DisplayName: "Ada Lovelace", Email: "ada@example.com"},
		{ID: 8, DisplayName: "Grace", Email: "grace@navy.mil"},
	}).Error)
	suite.add(1, 7, 3, order.Pending, base, decimal.NewFromInt(5))
	suite.add(2, 8, 3, order.Rejected, base.Add(time.Hour), decimal.NewFromInt(50))
	suite.add(3, 7, 4, order.AwaitingFulfillment, base.Add(2*time.Hour), decimal.NewFromInt(20))
	suite.add(4, 8, 3, order.Fulfilled, base.Add(3*time.Hour), decimal.NewFromInt(1))
	suite.add(5, 8, 4, order.OnHold, base.Add(4*time.Hour))

	item := int64(3)
	from := base.Add(30 * time.Minute)

	tests := []struct {
		name     string
		filter   order.Filter
		expected []int64
	}{
		{"shop orders scope, newest first", order.Filter{View: order.ViewShopOrders}, []int64{5, 2, 1}},
		{"fulfillment scope", order.Filter{View: order.ViewFulfillment, Sort: order.SortIDAsc}, []int64{3, 4}},
		{"explicit states override scope", order.Filter{View: order.ViewShopOrders, States: []order.State{order.Fulfilled}}, []int64{4}},
		{"item", order.Filter{View: order.ViewShopOrders, ItemID: &item, Sort: order.SortIDAsc}, []int64{1, 2}},
		{"created from", order.Filter{View: order.ViewShopOrders, CreatedFrom: &from, Sort: order.SortCreatedAtAsc}, []int64{2, 5}},
		{"user search on email", order.Filter{View: order.ViewShopOrders, UserSearch: "NAVY"}, []int64{5, 2}},
		{"user search on name", order.Filter{View: order.ViewShopOrders, UserSearch: "lovel"}, []int64{1}},
		{"search wildcards are literal", order.Filter{View: order.ViewShopOrders, UserSearch: "%"}, []int64{}},
		{"price descending, unknown last", order.Filter{View: order.ViewShopOrders, Sort: order.SortPriceDesc}, []int64{2, 1, 5}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			orders, err := suite.repository.Query(ctx, tt.filter)
			suite.Require().NoError(err)

			ids := make([]int64, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID())
			}
			suite.Equal(tt.expected, ids)
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStats() {
	ctx := context.Background()
	suite.add(1, 7, 3, order.AwaitingFulfillment, base)
	suite.add(2, 7, 3, order.Fulfilled, base)
	suite.add(3, 8, 3, order.Fulfilled, base.Add(time.Hour))
	suite.add(4, 8, 3, order.Pending, base)

	stats, err := suite.repository.Stats(ctx, order.Filter{View: order.ViewFulfillment})

	suite.Require().NoError(err)
	suite.Equal(1, stats.Count(order.AwaitingFulfillment))
	suite.Equal(2, stats.Count(order.Fulfilled))
	suite.Equal(3, stats.Total())
	suite.Require().NotNil(stats.AvgFulfillmentSeconds)
	suite.InDelta(3600.0, *stats.AvgFulfillmentSeconds, 0.001)

	empty, err := suite.repository.Stats(ctx, order.Filter{View: order.ViewShopOrders, States: []order.State{order.Rejected}})
	suite.Require().NoError(err)
	suite.Zero(empty.Total())
	suite.Nil(empty.AvgFulfillmentSeconds)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByUserAndUserStats() {
	ctx := context.Background()
	for i := int64(1); i <= 12; i++ {
		suite.add(i, 7, 3, order.Pending, base.Add(time.Duration(i)*time.Minute))
	}
	suite.add(13, 7, 3, order.Fulfilled, base)
	suite.add(14, 8, 3, order.Pending, base)

	recent, err := suite.repository.ListByUser(ctx, 7, 12, 10)
	suite.Require().NoError(err)
	suite.Len(recent, 10)
	suite.Equal(int64(11), recent[0].ID())

	stats, err := suite.repository.UserStats(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(13, stats.Total)
	suite.Equal(12, stats.Counts[order.Pending])
	suite.Equal(1, stats.Counts[order.Fulfilled])
	suite.Equal(26, stats.TotalQuantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountFulfilledByActor() {
	ctx := context.Background()
	suite.addFulfilled(1, "9", base.Add(time.Hour))
	suite.addFulfilled(2, "4", base)
	suite.addFulfilled(3, "9", base.Add(2*time.Hour))
	suite.addFulfilled(4, "4", base.Add(3*time.Hour))
	suite.addFulfilled(5, "12", base.Add(4*time.Hour))
	suite.add(6, 1, 1, order.AwaitingFulfillment, base)

	counts, err := suite.repository.CountFulfilledByActor(ctx)

	suite.Require().NoError(err)
	suite.Equal([]leaderboard.ActorCount{
		{ActorID: "4", Count: 2},
		{ActorID: "9", Count: 2},
		{ActorID: "12", Count: 1},
	}, counts)
}

// add stores an order in the given state. Fulfilled orders are fulfilled one
// hour after creation by actor "1".
func (suite *OrderRepositoryIntegrationTestSuite) add(
	id, userID, itemID int64, state order.State, createdAt time.Time, price ...decimal.Decimal,
) {
	s := order.Snapshot{
		Params: order.Params{ID: id, UserID: userID, ItemID: itemID, Quantity: 2, CreatedAt: createdAt},
		State:  state,
	}
	if len(price) > 0 {
		s.FrozenPrice = &price[0]
	}
	switch state {
	case order.Fulfilled:
		at := createdAt.Add(time.Hour)
		s.FulfilledAt = &at
		s.FulfilledBy = "1"
	case order.Rejected:
		reason := "fraud"
		s.RejectionReason = &reason
	case order.OnHold:
		s.HoldFrom = order.Pending
	}
	o, err := order.RestoreOrder(s)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
}

func (suite *OrderRepositoryIntegrationTestSuite) addFulfilled(id int64, actor string, at time.Time) {
	o, err := order.RestoreOrder(order.Snapshot{
		Params:      order.Params{ID: id, UserID: 1, ItemID: 1, Quantity: 1, CreatedAt: base},
		State:       order.Fulfilled,
		FulfilledAt: &at,
		FulfilledBy: actor,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
}
