package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type RevealAddressQueryHandler struct {
	access    AccessChecker
	orders    ports.OrderRepository
	addresses ports.AddressCodec
}

func NewRevealAddressQueryHandler(
	access AccessChecker,
	orders ports.OrderRepository,
	addresses ports.AddressCodec,
) RevealAddressQueryHandler {
	return RevealAddressQueryHandler{access: access, orders: orders, addresses: addresses}
}

// Handle returns the address, or nil when the order was placed without one.
// Both the policy and the codec must agree; a codec refusal is reported as
// forbidden without any address data.
func (h RevealAddressQueryHandler) Handle(ctx context.Context, q RevealAddressQuery) (*kernel.Address, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.Check(ctx, q.Caller(), staff.OpRevealAddress); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, q.OrderID())
	if err != nil {
		return nil, err
	}

	if !h.addresses.CanView(ctx, q.Caller(), o) {
		return nil, errs.NewForbiddenError(string(staff.OpRevealAddress))
	}
	return h.addresses.Decrypt(ctx, q.Caller(), o)
}
