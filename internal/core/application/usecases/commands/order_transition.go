package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/metrics"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
	"fulfillment/internal/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Dependencies are shared by every command handler.
type Dependencies struct {
	UoWFactory UoWFactory
	Access     AccessChecker
	Clock      func() time.Time
	Metrics    *metrics.Metrics
	Logger     *logrus.Logger
}

// target identifies the order a command acts on and who is acting.
type target struct {
	caller  staff.Caller
	orderID int64
	guard   guard.ConstructorGuard
}

func newTarget(caller staff.Caller, orderID int64) (target, error) {
	var problems []error
	if err := caller.Validate(); err != nil {
		problems = append(problems, err)
	}
	if orderID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not positive", orderID)))
	}
	if err := errors.Join(problems...); err != nil {
		return target{}, err
	}
	return target{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Caller returns who issued the command.
func (t target) Caller() staff.Caller { return t.caller }

// OrderID returns the order the command acts on.
func (t target) OrderID() int64 { return t.orderID }

// mutation applies a domain transition and reports the audited changes. No
// changes means nothing is saved and nothing is recorded.
type mutation func(ctx context.Context, o *order.Order, now time.Time) ([]audit.Change, error)

// transitionExecutor runs a mutation inside a unit of work.
type transitionExecutor struct {
	uowFactory UoWFactory
	access     AccessChecker
	clock      func() time.Time
	metrics    *metrics.Metrics
	log        *logrus.Entry
}

func newTransitionExecutor(deps Dependencies) transitionExecutor {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return transitionExecutor{
		uowFactory: deps.UoWFactory,
		access:     deps.Access,
		clock:      clock,
		metrics:    deps.Metrics,
		log:        logger.Component(deps.Logger, "commands"),
	}
}

func (e transitionExecutor) execute(ctx context.Context, t target, op staff.Operation, mutate mutation) (*order.Order, error) {
	start := time.Now()
	o, err := e.run(ctx, t, op, mutate)
	e.metrics.ObserveOperation(string(op), err, time.Since(start))

	entry := e.log.WithFields(logrus.Fields{
		"operation": op,
		"order_id":  t.orderID,
		"actor_id":  t.caller.UserID(),
	})
	switch metrics.Outcome(err) {
	case metrics.OutcomeOK:
		entry.WithField("state", o.State().String()).Info("order updated")
	case metrics.OutcomeError:
		entry.WithError(err).Error("order update failed")
	default:
		entry.WithError(err).Warn("order update refused")
	}
	return o, err
}

func (e transitionExecutor) run(ctx context.Context, t target, op staff.Operation, mutate mutation) (*order.Order, error) {
	if err := e.access.Check(ctx, t.caller, op); err != nil {
		return nil, err
	}

	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, t.orderID)
	if err != nil {
		return nil, err
	}

	now := e.clock()
	changes, err := mutate(ctx, o, now)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return o, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	record, err := audit.NewRecord(audit.EntityShopOrder, o.EntityID(), t.caller.UserID(), now, changes)
	if err != nil {
		return nil, err
	}
	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append audit record: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
