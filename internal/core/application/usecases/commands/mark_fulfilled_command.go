package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/staff"
)

var ErrMarkFulfilledCommandIsNotConstructed = errors.New(
	"MarkFulfilledCommand must be created via NewMarkFulfilledCommand constructor",
)

// MarkFulfilledCommand completes an order awaiting fulfillment. The caller is
// recorded as the fulfiller.
type MarkFulfilledCommand struct {
	target
}

func NewMarkFulfilledCommand(caller staff.Caller, orderID int64) (MarkFulfilledCommand, error) {
	t, err := newTarget(caller, orderID)
	if err != nil {
		return MarkFulfilledCommand{}, err
	}
	return MarkFulfilledCommand{target: t}, nil
}

func (c MarkFulfilledCommand) Validate() error {
	return c.guard.Validate(ErrMarkFulfilledCommandIsNotConstructed)
}
