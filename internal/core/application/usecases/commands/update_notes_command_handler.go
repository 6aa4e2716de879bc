package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

// UpdateNotesCommandHandler saves new internal notes. Submitting the current
// notes again writes nothing.
type UpdateNotesCommandHandler struct {
	executor transitionExecutor
}

func NewUpdateNotesCommandHandler(deps Dependencies) UpdateNotesCommandHandler {
	return UpdateNotesCommandHandler{executor: newTransitionExecutor(deps)}
}

func (h UpdateNotesCommandHandler) Handle(ctx context.Context, cmd UpdateNotesCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.executor.execute(ctx, cmd.target, staff.OpUpdateNotes,
		func(_ context.Context, o *order.Order, _ time.Time) ([]audit.Change, error) {
			return o.UpdateNotes(cmd.Notes()), nil
		})
}
