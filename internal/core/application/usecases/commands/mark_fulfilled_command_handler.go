package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

type MarkFulfilledCommandHandler struct {
	executor transitionExecutor
}

func NewMarkFulfilledCommandHandler(deps Dependencies) MarkFulfilledCommandHandler {
	return MarkFulfilledCommandHandler{executor: newTransitionExecutor(deps)}
}

func (h MarkFulfilledCommandHandler) Handle(ctx context.Context, cmd MarkFulfilledCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.executor.execute(ctx, cmd.target, staff.OpMarkFulfilled,
		func(_ context.Context, o *order.Order, now time.Time) ([]audit.Change, error) {
			return o.MarkFulfilled(cmd.Caller().UserID(), now)
		})
}
