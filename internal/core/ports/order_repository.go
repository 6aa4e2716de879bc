// Package ports defines the contracts between the fulfillment core and its
// infrastructure: persistence, the account system, the item catalog, region
// lookup, address protection and capability checks.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition. The stored version must equal the aggregate's
	// version, otherwise *errs.ConflictError is returned and nothing is written.
	// A missing row yields *errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Query returns every order matching the filter, sorted by filter.Sort.
	// Region filtering is not applied here.
	Query(ctx context.Context, filter order.Filter) ([]*order.Order, error)

	// Stats counts the same set Query would return, per state, together with the
	// average fulfillment time of its fulfilled orders.
	Stats(ctx context.Context, filter order.Filter) (order.Stats, error)

	// ListByUser returns the user's most recent orders, newest first, leaving out
	// excludeID.
	ListByUser(ctx context.Context, userID, excludeID int64, limit int) ([]*order.Order, error)

	// UserStats summarises all of a user's orders.
	UserStats(ctx context.Context, userID int64) (order.UserStats, error)

	// CountFulfilledByActor groups fulfilled orders by fulfilledBy, skipping empty
	// actors. Groups come back in the order of their first fulfilled order.
	CountFulfilledByActor(ctx context.Context) ([]leaderboard.ActorCount, error)
}
