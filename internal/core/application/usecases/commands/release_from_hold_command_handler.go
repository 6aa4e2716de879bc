package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

type ReleaseFromHoldCommandHandler struct {
	executor transitionExecutor
}

func NewReleaseFromHoldCommandHandler(deps Dependencies) ReleaseFromHoldCommandHandler {
	return ReleaseFromHoldCommandHandler{executor: newTransitionExecutor(deps)}
}

func (h ReleaseFromHoldCommandHandler) Handle(ctx context.Context, cmd ReleaseFromHoldCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.executor.execute(ctx, cmd.target, staff.OpReleaseFromHold,
		func(_ context.Context, o *order.Order, _ time.Time) ([]audit.Change, error) {
			return o.ReleaseFromHold()
		})
}
