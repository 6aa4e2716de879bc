package services

import (
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

// AccessRule is the outcome of a policy lookup. When Allowed is true and
// Capability is non-empty the caller must additionally hold that capability.
type AccessRule struct {
	Allowed    bool
	Capability staff.Capability
}

var deny = AccessRule{}

// AccessPolicy answers, for a caller profile and an operation, whether the
// operation may proceed and which capability has to be confirmed.
//
// Business rules:
//   - admins may perform every operation without any capability check
//   - fulfillment staff may view the fulfillment queue, open orders, reveal
//     addresses, view leaderboards, mark orders fulfilled and edit notes, each
//     gated by access_fulfillment_view; everything else is forbidden
//   - any other staff member may perform every operation gated by
//     access_shop_orders
//   - unknown operations are always denied
type AccessPolicy struct {
	table map[staff.Profile]map[staff.Operation]AccessRule
}

// NewAccessPolicy builds the policy table.
func NewAccessPolicy() AccessPolicy {
	admin := make(map[staff.Operation]AccessRule)
	shop := make(map[staff.Operation]AccessRule)
	for _, op := range staff.AllOperations() {
		admin[op] = AccessRule{Allowed: true}
		shop[op] = AccessRule{Allowed: true, Capability: staff.CapabilityShopOrders}
	}

	fulfillment := make(map[staff.Operation]AccessRule)
	for _, op := range []staff.Operation{
		staff.OpViewFulfillment,
		staff.OpShowOrder,
		staff.OpRevealAddress,
		staff.OpViewLeaderboards,
		staff.OpMarkFulfilled,
		staff.OpUpdateNotes,
	} {
		fulfillment[op] = AccessRule{Allowed: true, Capability: staff.CapabilityFulfillmentView}
	}

	return AccessPolicy{table: map[staff.Profile]map[staff.Operation]AccessRule{
		staff.ProfileAdmin:       admin,
		staff.ProfileFulfillment: fulfillment,
		staff.ProfileStaff:       shop,
	}}
}

// Decide looks up the rule for the caller's profile. A zero-value policy denies
// everything.
func (p AccessPolicy) Decide(caller staff.Caller, op staff.Operation) AccessRule {
	rules, ok := p.table[caller.Profile()]
	if !ok {
		return deny
	}
	rule, ok := rules[op]
	if !ok {
		return deny
	}
	return rule
}

// DefaultView is the listing a caller lands on when none is requested.
func (p AccessPolicy) DefaultView(caller staff.Caller) order.View {
	if caller.Profile() == staff.ProfileFulfillment {
		return order.ViewFulfillment
	}
	return order.ViewShopOrders
}

// ViewOperation maps a listing view to the operation guarding it.
func ViewOperation(v order.View) staff.Operation {
	if v == order.ViewFulfillment {
		return staff.OpViewFulfillment
	}
	return staff.OpViewShopOrders
}
