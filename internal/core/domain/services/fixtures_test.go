package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	id       int64
	userID   int64
	quantity int
	price    string
	country  string
}

func newOrder(t *testing.T, fx orderFixture) *order.Order {
	t.Helper()

	p := order.Params{
		ID:        fx.id,
		UserID:    fx.userID,
		ItemID:    1,
		Quantity:  fx.quantity,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if fx.price != "" {
		price := decimal.RequireFromString(fx.price)
		p.FrozenPrice = &price
	}
	if fx.country != "" {
		addr, err := kernel.NewAddress(kernel.AddressParams{Line1: "1 Road", City: "Town", Country: fx.country})
		require.NoError(t, err)
		p.FrozenAddress = &addr
	}

	o, err := order.NewOrder(p)
	require.NoError(t, err)
	return o
}

func ids(orders []*order.Order) []int64 {
	out := make([]int64, len(orders))
	for i, o := range orders {
		out[i] = o.ID()
	}
	return out
}
