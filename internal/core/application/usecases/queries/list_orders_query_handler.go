package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/metrics"
	"fulfillment/internal/pkg/errs"
)

// OrderGroup is one user's slice of a grouped listing. Address is nil when the
// caller may not see it or no order in the group has one.
type OrderGroup struct {
	services.UserGroup
	Address *kernel.Address
}

type ListOrdersResult struct {
	View    order.View
	Filter  order.Filter
	Region  kernel.Region
	Stats   order.Stats
	Orders  []*order.Order
	Groups  []OrderGroup
	Grouped bool
}

// ListOrdersQueryHandler answers listings in two phases: the store applies
// every filter it can index and computes stats, then regions are filtered in
// process from the address snapshot.
type ListOrdersQueryHandler struct {
	access      AccessChecker
	policy      services.AccessPolicy
	orders      ports.OrderRepository
	partitioner services.RegionPartitioner
	addresses   ports.AddressCodec
	metrics     *metrics.Metrics
}

func NewListOrdersQueryHandler(
	access AccessChecker,
	policy services.AccessPolicy,
	orders ports.OrderRepository,
	regions ports.RegionResolver,
	addresses ports.AddressCodec,
	m *metrics.Metrics,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		access:      access,
		policy:      policy,
		orders:      orders,
		partitioner: services.NewRegionPartitioner(regions),
		addresses:   addresses,
		metrics:     m,
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, q ListOrdersQuery) (ListOrdersResult, error) {
	if err := q.Validate(); err != nil {
		return ListOrdersResult{}, err
	}

	start := time.Now()
	defer func() { h.metrics.ObserveQuery("list_orders", time.Since(start)) }()

	view := q.View()
	if view == "" {
		view = h.policy.DefaultView(q.Caller())
	}
	if err := h.access.Check(ctx, q.Caller(), services.ViewOperation(view)); err != nil {
		return ListOrdersResult{}, err
	}

	filter := q.filter(view)
	candidates, err := h.orders.Query(ctx, filter)
	if err != nil {
		return ListOrdersResult{}, err
	}
	stats, err := h.orders.Stats(ctx, filter)
	if err != nil {
		return ListOrdersResult{}, err
	}

	region := services.EffectiveRegion(q.Caller(), q.Region())
	result := ListOrdersResult{
		View:    view,
		Filter:  filter,
		Region:  region,
		Stats:   stats,
		Orders:  h.partitioner.Filter(candidates, region),
		Grouped: q.Grouped(),
	}

	if q.Grouped() {
		groups, err := h.group(ctx, q, result.Orders)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.Groups = groups
	}
	return result, nil
}

func (h ListOrdersQueryHandler) group(ctx context.Context, q ListOrdersQuery, orders []*order.Order) ([]OrderGroup, error) {
	userGroups := services.GroupByUser(orders)
	groups := make([]OrderGroup, 0, len(userGroups))
	for _, g := range userGroups {
		group := OrderGroup{UserGroup: g}
		if rep := g.Representative(); rep != nil {
			addr, err := h.addresses.Decrypt(ctx, q.Caller(), rep)
			switch {
			case errors.Is(err, errs.ErrForbidden):
				// hidden from this caller
			case err != nil:
				return nil, err
			default:
				group.Address = addr
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}
