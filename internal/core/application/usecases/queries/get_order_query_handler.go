package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/metrics"
	"fulfillment/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	access    AccessChecker
	orders    ports.OrderRepository
	audits    ports.AuditRepository
	users     ports.UserDirectory
	addresses ports.AddressCodec
	metrics   *metrics.Metrics
}

func NewGetOrderQueryHandler(
	access AccessChecker,
	orders ports.OrderRepository,
	audits ports.AuditRepository,
	users ports.UserDirectory,
	addresses ports.AddressCodec,
	m *metrics.Metrics,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		access:    access,
		orders:    orders,
		audits:    audits,
		users:     users,
		addresses: addresses,
		metrics:   m,
	}
}

// Handle loads the order, its audit history, the customer's ten most recent
// other orders and the customer's totals. The address itself is not included;
// only whether the caller could reveal it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, q GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	start := time.Now()
	defer func() { h.metrics.ObserveQuery("get_order", time.Since(start)) }()

	if err := h.access.Check(ctx, q.Caller(), staff.OpShowOrder); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, q.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	history, err := h.audits.ListByEntity(ctx, audit.EntityShopOrder, o.EntityID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	recent, err := h.orders.ListByUser(ctx, o.UserID(), o.ID(), RecentOrdersLimit)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	stats, err := h.orders.UserStats(ctx, o.UserID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	customer, err := h.users.FindByID(ctx, o.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		customer, err = user.User{ID: o.UserID()}, nil
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:          o,
		Customer:       customer,
		History:        history,
		CanViewAddress: h.addresses.CanView(ctx, q.Caller(), o),
		RecentOrders:   recent,
		CustomerStats:  stats,
	}, nil
}
