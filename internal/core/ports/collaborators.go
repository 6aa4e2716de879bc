package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/model/user"
)

// UserDirectory reads users from the account system.
type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (user.User, error)

	// FindByIDs returns the users it knows about; unknown ids are simply absent.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]user.User, error)
}

// ItemCatalog answers questions about the purchasable items.
type ItemCatalog interface {
	// IsAutoFulfillable reports whether approval alone completes the item.
	IsAutoFulfillable(ctx context.Context, itemID int64) (bool, error)
}

// RegionResolver maps ISO country codes to shipping regions. Countries without a
// dedicated region map to kernel.RegionOther.
type RegionResolver interface {
	CountryToRegion(country string) kernel.Region
}

// AddressCodec guards the protected shipping address of an order.
type AddressCodec interface {
	// CanView reports whether the caller may see the order's address.
	CanView(ctx context.Context, caller staff.Caller, o *order.Order) bool

	// Decrypt returns the address, nil when the order has none, or an
	// errs.ErrForbidden error when the caller may not see it.
	Decrypt(ctx context.Context, caller staff.Caller, o *order.Order) (*kernel.Address, error)
}

// Authorizer confirms that a caller holds a capability.
type Authorizer interface {
	Authorize(ctx context.Context, caller staff.Caller, capability staff.Capability) (bool, error)
}
