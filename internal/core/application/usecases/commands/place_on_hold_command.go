package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/staff"
)

var ErrPlaceOnHoldCommandIsNotConstructed = errors.New(
	"PlaceOnHoldCommand must be created via NewPlaceOnHoldCommand constructor",
)

// PlaceOnHoldCommand parks a pending or awaiting order.
type PlaceOnHoldCommand struct {
	target
}

func NewPlaceOnHoldCommand(caller staff.Caller, orderID int64) (PlaceOnHoldCommand, error) {
	t, err := newTarget(caller, orderID)
	if err != nil {
		return PlaceOnHoldCommand{}, err
	}
	return PlaceOnHoldCommand{target: t}, nil
}

func (c PlaceOnHoldCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOnHoldCommandIsNotConstructed)
}
