package queries

import (
	"fmt"

	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// orderQuery is the shape shared by single-order reads.
type orderQuery struct {
	caller  staff.Caller
	orderID int64
	guard   guard.ConstructorGuard
}

func newOrderQuery(caller staff.Caller, orderID int64) (orderQuery, error) {
	if err := caller.Validate(); err != nil {
		return orderQuery{}, err
	}
	if orderID <= 0 {
		return orderQuery{}, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not positive", orderID))
	}
	return orderQuery{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q orderQuery) Caller() staff.Caller { return q.caller }
func (q orderQuery) OrderID() int64       { return q.orderID }
