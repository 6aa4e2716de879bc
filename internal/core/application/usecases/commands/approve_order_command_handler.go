package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/ports"
)

// ApproveOrderCommandHandler approves pending orders. The item catalog is only
// consulted when the order can actually be approved.
type ApproveOrderCommandHandler struct {
	executor transitionExecutor
	catalog  ports.ItemCatalog
}

func NewApproveOrderCommandHandler(deps Dependencies, catalog ports.ItemCatalog) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		executor: newTransitionExecutor(deps),
		catalog:  catalog,
	}
}

func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.executor.execute(ctx, cmd.target, staff.OpApprove,
		func(ctx context.Context, o *order.Order, now time.Time) ([]audit.Change, error) {
			autoFulfill := false
			if o.State().Permits(order.Approve) {
				var err error
				autoFulfill, err = h.catalog.IsAutoFulfillable(ctx, o.ItemID())
				if err != nil {
					return nil, fmt.Errorf("check item %d: %w", o.ItemID(), err)
				}
			}
			return o.Approve(cmd.Caller().UserID(), autoFulfill, now)
		})
}
