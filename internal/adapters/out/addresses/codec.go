// Package addresses decides who may read an order's frozen shipping address.
package addresses

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"
)

// RoleCodec implements ports.AddressCodec. Admins always see addresses;
// fulfillment staff see them once an order is approved for shipping. Everyone
// else never does.
//
// Addresses are stored as plain snapshots in this deployment, so decrypting is
// only the permission check plus a copy.
type RoleCodec struct{}

func NewRoleCodec() RoleCodec {
	return RoleCodec{}
}

func (RoleCodec) CanView(_ context.Context, caller staff.Caller, o *order.Order) bool {
	if caller.Validate() != nil || o == nil {
		return false
	}
	if caller.IsAdmin() {
		return true
	}
	if !caller.HasRole(staff.RoleFulfillment) {
		return false
	}
	switch o.State() {
	case order.AwaitingFulfillment, order.Fulfilled:
		return true
	default:
		return false
	}
}

func (c RoleCodec) Decrypt(ctx context.Context, caller staff.Caller, o *order.Order) (*kernel.Address, error) {
	if !c.CanView(ctx, caller, o) {
		return nil, errs.NewForbiddenError(string(staff.OpRevealAddress))
	}
	return o.FrozenAddress(), nil
}
