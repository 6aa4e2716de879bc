package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

type PlaceOnHoldCommandHandler struct {
	executor transitionExecutor
}

func NewPlaceOnHoldCommandHandler(deps Dependencies) PlaceOnHoldCommandHandler {
	return PlaceOnHoldCommandHandler{executor: newTransitionExecutor(deps)}
}

func (h PlaceOnHoldCommandHandler) Handle(ctx context.Context, cmd PlaceOnHoldCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.executor.execute(ctx, cmd.target, staff.OpPlaceOnHold,
		func(_ context.Context, o *order.Order, _ time.Time) ([]audit.Change, error) {
			return o.PlaceOnHold()
		})
}
