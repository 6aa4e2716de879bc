// Package authz confirms capabilities from the caller's roles and the
// capabilities granted to it explicitly.
package authz

import (
	"context"
	"slices"

	"fulfillment/internal/core/domain/model/staff"
)

// DefaultGrants is the role to capability table used when none is configured.
var DefaultGrants = map[staff.Role][]staff.Capability{
	staff.RoleAdmin:       {staff.CapabilityShopOrders, staff.CapabilityFulfillmentView},
	staff.RoleFulfillment: {staff.CapabilityFulfillmentView},
	staff.RoleFraud:       {staff.CapabilityShopOrders},
}

// RoleAuthorizer implements ports.Authorizer.
type RoleAuthorizer struct {
	grants map[staff.Role][]staff.Capability
}

func NewRoleAuthorizer(grants map[staff.Role][]staff.Capability) RoleAuthorizer {
	if grants == nil {
		grants = DefaultGrants
	}
	return RoleAuthorizer{grants: grants}
}

// Authorize never fails; the error return is for authorizers backed by a
// remote service.
func (a RoleAuthorizer) Authorize(_ context.Context, caller staff.Caller, capability staff.Capability) (bool, error) {
	if caller.HasCapability(capability) {
		return true, nil
	}
	for _, role := range caller.Roles() {
		if slices.Contains(a.grants[role], capability) {
			return true, nil
		}
	}
	return false, nil
}
