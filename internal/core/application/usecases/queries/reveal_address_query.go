package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/staff"
)

var ErrRevealAddressQueryIsNotConstructed = errors.New(
	"RevealAddressQuery must be created via NewRevealAddressQuery constructor",
)

// RevealAddressQuery decrypts an order's shipping address. It has no side effects.
type RevealAddressQuery struct {
	orderQuery
}

func NewRevealAddressQuery(caller staff.Caller, orderID int64) (RevealAddressQuery, error) {
	q, err := newOrderQuery(caller, orderID)
	if err != nil {
		return RevealAddressQuery{}, err
	}
	return RevealAddressQuery{orderQuery: q}, nil
}

func (q RevealAddressQuery) Validate() error {
	return q.guard.Validate(ErrRevealAddressQueryIsNotConstructed)
}
