package queries

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/metrics"
)

// LeaderboardCounter computes both leaderboards' raw counts. It is shared by
// the query handler and the snapshot job.
type LeaderboardCounter struct {
	orders ports.OrderRepository
	audits ports.AuditRepository
}

func NewLeaderboardCounter(orders ports.OrderRepository, audits ports.AuditRepository) LeaderboardCounter {
	return LeaderboardCounter{orders: orders, audits: audits}
}

// Fulfilled counts fulfilled orders per fulfiller.
func (c LeaderboardCounter) Fulfilled(ctx context.Context) ([]leaderboard.ActorCount, error) {
	counts, err := c.orders.CountFulfilledByActor(ctx)
	if err != nil {
		return nil, fmt.Errorf("count fulfilled orders: %w", err)
	}
	return counts, nil
}

// Approved counts recorded approvals per approver. Auto-fulfilled approvals go
// straight to fulfilled and are credited on the fulfilled board instead.
func (c LeaderboardCounter) Approved(ctx context.Context) ([]leaderboard.ActorCount, error) {
	counts, err := c.audits.CountTransitionsByActor(ctx,
		audit.EntityShopOrder, order.FieldState, order.AwaitingFulfillment.String())
	if err != nil {
		return nil, fmt.Errorf("count approvals: %w", err)
	}
	return counts, nil
}

type GetLeaderboardsQueryHandler struct {
	access  AccessChecker
	counter LeaderboardCounter
	users   ports.UserDirectory
	metrics *metrics.Metrics
}

func NewGetLeaderboardsQueryHandler(
	access AccessChecker,
	counter LeaderboardCounter,
	users ports.UserDirectory,
	m *metrics.Metrics,
) GetLeaderboardsQueryHandler {
	return GetLeaderboardsQueryHandler{access: access, counter: counter, users: users, metrics: m}
}

// Handle builds both boards. Any source failure fails the whole query so a
// caller never sees one board without the other.
func (h GetLeaderboardsQueryHandler) Handle(ctx context.Context, q GetLeaderboardsQuery) (Leaderboards, error) {
	if err := q.Validate(); err != nil {
		return Leaderboards{}, err
	}

	start := time.Now()
	defer func() { h.metrics.ObserveQuery("get_leaderboards", time.Since(start)) }()

	if err := h.access.Check(ctx, q.Caller(), staff.OpViewLeaderboards); err != nil {
		return Leaderboards{}, err
	}

	fulfilled, err := h.counter.Fulfilled(ctx)
	if err != nil {
		return Leaderboards{}, err
	}
	approved, err := h.counter.Approved(ctx)
	if err != nil {
		return Leaderboards{}, err
	}

	callerID := q.Caller().UserID()
	fulfilledBoard := services.RankLeaderboard(fulfilled, callerID)
	approvedBoard := services.RankLeaderboard(approved, callerID)

	labels, err := h.labels(ctx, append(fulfilledBoard.ActorIDsToLabel(), approvedBoard.ActorIDsToLabel()...))
	if err != nil {
		return Leaderboards{}, err
	}

	return Leaderboards{
		Fulfilled: fulfilledBoard.WithLabels(labels),
		Approved:  approvedBoard.WithLabels(labels),
	}, nil
}

// labels resolves display names keyed by the actor id as it appears on the
// board. Non-numeric ids cannot be looked up and get the fallback label.
func (h GetLeaderboardsQueryHandler) labels(ctx context.Context, actorIDs []string) (map[string]string, error) {
	byNumber := make(map[int64][]string)
	ids := make([]int64, 0, len(actorIDs))
	for _, actorID := range actorIDs {
		id, err := strconv.ParseInt(actorID, 10, 64)
		if err != nil {
			continue
		}
		if _, seen := byNumber[id]; !seen {
			ids = append(ids, id)
		}
		byNumber[id] = append(byNumber[id], actorID)
	}

	labels := make(map[string]string, len(actorIDs))
	if len(ids) == 0 {
		return labels, nil
	}

	users, err := h.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve leaderboard labels: %w", err)
	}
	for id, u := range users {
		for _, actorID := range byNumber[id] {
			labels[actorID] = u.Label()
		}
	}
	return labels, nil
}
