package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

type RejectOrderCommandHandler struct {
	executor transitionExecutor
}

func NewRejectOrderCommandHandler(deps Dependencies) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{executor: newTransitionExecutor(deps)}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.executor.execute(ctx, cmd.target, staff.OpReject,
		func(_ context.Context, o *order.Order, _ time.Time) ([]audit.Change, error) {
			return o.Reject(cmd.Reason())
		})
}
