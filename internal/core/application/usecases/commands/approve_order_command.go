package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/staff"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand moves a pending order forward, straight to fulfilled when
// its item fulfills itself.
//
// Example:
//
//	cmd, err := NewApproveOrderCommand(caller, 42)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type ApproveOrderCommand struct {
	target
}

func NewApproveOrderCommand(caller staff.Caller, orderID int64) (ApproveOrderCommand, error) {
	t, err := newTarget(caller, orderID)
	if err != nil {
		return ApproveOrderCommand{}, err
	}
	return ApproveOrderCommand{target: t}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}
