package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/staff"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand rejects a pending or held order. An empty reason is
// allowed and recorded as the default reason.
type RejectOrderCommand struct {
	target
	reason string
}

func NewRejectOrderCommand(caller staff.Caller, orderID int64, reason string) (RejectOrderCommand, error) {
	t, err := newTarget(caller, orderID)
	if err != nil {
		return RejectOrderCommand{}, err
	}
	return RejectOrderCommand{target: t, reason: reason}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) Reason() string {
	return c.reason
}
