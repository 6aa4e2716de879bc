package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/staff"
)

var ErrReleaseFromHoldCommandIsNotConstructed = errors.New(
	"ReleaseFromHoldCommand must be created via NewReleaseFromHoldCommand constructor",
)

// ReleaseFromHoldCommand returns a held order to the state it was held from.
type ReleaseFromHoldCommand struct {
	target
}

func NewReleaseFromHoldCommand(caller staff.Caller, orderID int64) (ReleaseFromHoldCommand, error) {
	t, err := newTarget(caller, orderID)
	if err != nil {
		return ReleaseFromHoldCommand{}, err
	}
	return ReleaseFromHoldCommand{target: t}, nil
}

func (c ReleaseFromHoldCommand) Validate() error {
	return c.guard.Validate(ErrReleaseFromHoldCommandIsNotConstructed)
}
