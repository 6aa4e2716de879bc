package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/model/user"
)

// RecentOrdersLimit is how many of the customer's other orders the detail shows.
const RecentOrdersLimit = 10

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with everything a reviewer needs to decide on it.
type GetOrderQuery struct {
	orderQuery
}

func NewGetOrderQuery(caller staff.Caller, orderID int64) (GetOrderQuery, error) {
	q, err := newOrderQuery(caller, orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderQuery: q}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the order detail. History is oldest first.
type GetOrderQueryResponse struct {
	Order          *order.Order
	Customer       user.User
	History        []*audit.Record
	CanViewAddress bool
	RecentOrders   []*order.Order
	CustomerStats  order.UserStats
}
