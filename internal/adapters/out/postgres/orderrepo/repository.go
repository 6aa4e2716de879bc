package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is implemented by the unit of work. A nil tracker is allowed
// for read-only use outside a transaction.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly placed order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order")
	}

	r.track(aggregate)
	return nil
}

// Update writes the aggregate if the stored version still matches and bumps the
// version on success.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}
		return errs.NewConflictError("order", dto.ID)
	}

	aggregate.AdvanceVersion()
	r.track(aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Query returns all orders matching the filter in the requested order.
func (r *GormOrderRepository) Query(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	where, args, err := predicate(filter)
	if err != nil {
		return nil, fmt.Errorf("build order filter: %w", err)
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where(where, args...).
		Order(orderBy(filter.Sort)).
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	return toDomainList(dtos)
}

type stateStatsRow struct {
	State      string
	N          int
	AvgSeconds *float64
}

// Stats counts the filtered set per state. The average fulfillment time comes
// from the fulfilled group only; AVG skips rows without fulfilled_at.
func (r *GormOrderRepository) Stats(ctx context.Context, filter order.Filter) (order.Stats, error) {
	where, args, err := predicate(filter)
	if err != nil {
		return order.Stats{}, fmt.Errorf("build order filter: %w", err)
	}

	var rows []stateStatsRow
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("state, COUNT(*) AS n, AVG(EXTRACT(EPOCH FROM (fulfilled_at - created_at))) AS avg_seconds").
		Where(where, args...).
		Group("state").
		Scan(&rows).Error; err != nil {
		return order.Stats{}, fmt.Errorf("order stats: %w", err)
	}

	stats := order.Stats{Counts: make(map[order.State]int, len(rows))}
	for _, row := range rows {
		state, err := order.ParseState(row.State)
		if err != nil {
			return order.Stats{}, err
		}
		stats.Counts[state] = row.N
		if state == order.Fulfilled {
			stats.AvgFulfillmentSeconds = row.AvgSeconds
		}
	}
	return stats, nil
}

// ListByUser returns the user's newest orders other than excludeID.
func (r *GormOrderRepository) ListByUser(ctx context.Context, userID, excludeID int64, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id <> ?", userID, excludeID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}

	return toDomainList(dtos)
}

type userStatsRow struct {
	State    string
	N        int
	Quantity int
}

// UserStats summarises every order of the user.
func (r *GormOrderRepository) UserStats(ctx context.Context, userID int64) (order.UserStats, error) {
	var rows []userStatsRow
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("state, COUNT(*) AS n, COALESCE(SUM(quantity), 0) AS quantity").
		Where("user_id = ?", userID).
		Group("state").
		Scan(&rows).Error; err != nil {
		return order.UserStats{}, fmt.Errorf("user order stats: %w", err)
	}

	stats := order.UserStats{Counts: make(map[order.State]int, len(rows))}
	for _, row := range rows {
		state, err := order.ParseState(row.State)
		if err != nil {
			return order.UserStats{}, err
		}
		stats.Counts[state] = row.N
		stats.Total += row.N
		stats.TotalQuantity += row.Quantity
	}
	return stats, nil
}

type actorCountRow struct {
	ActorID string
	Count   int
}

// CountFulfilledByActor groups fulfilled orders by fulfiller in order of each
// fulfiller's first fulfillment.
func (r *GormOrderRepository) CountFulfilledByActor(ctx context.Context) ([]leaderboard.ActorCount, error) {
	var rows []actorCountRow
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("fulfilled_by AS actor_id, COUNT(*) AS count").
		Where("state = ? AND fulfilled_by IS NOT NULL AND fulfilled_by <> ''", order.Fulfilled.String()).
		Group("fulfilled_by").
		Order("MIN(fulfilled_at) ASC, MIN(id) ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count fulfilled orders: %w", err)
	}

	counts := make([]leaderboard.ActorCount, len(rows))
	for i, row := range rows {
		counts[i] = leaderboard.ActorCount{ActorID: row.ActorID, Count: row.Count}
	}
	return counts, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.EntityID(), aggregate)
	}
}
