package services

import (
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// UserGroup aggregates one user's orders in a listing.
type UserGroup struct {
	UserID        int64
	Orders        []*order.Order
	TotalQuantity int
	TotalCost     decimal.Decimal
}

func (g UserGroup) OrderCount() int { return len(g.Orders) }

// Representative is the first order in the group carrying an address snapshot.
func (g UserGroup) Representative() *order.Order {
	for _, o := range g.Orders {
		if o.HasFrozenAddress() {
			return o
		}
	}
	return nil
}

// GroupByUser partitions orders by user, keeping groups in the order their first
// order appears. Orders with an unknown price add nothing to the total cost.
func GroupByUser(orders []*order.Order) []UserGroup {
	index := make(map[int64]int)
	groups := make([]UserGroup, 0)

	for _, o := range orders {
		i, ok := index[o.UserID()]
		if !ok {
			i = len(groups)
			index[o.UserID()] = i
			groups = append(groups, UserGroup{UserID: o.UserID(), TotalCost: decimal.Zero})
		}

		g := &groups[i]
		g.Orders = append(g.Orders, o)
		g.TotalQuantity += o.Quantity()
		if cost := o.TotalCost(); cost != nil {
			g.TotalCost = g.TotalCost.Add(*cost)
		}
	}
	return groups
}
