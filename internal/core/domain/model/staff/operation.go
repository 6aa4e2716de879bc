package staff

// Operation is an action on shop orders subject to the access policy.
type Operation string

const (
	OpViewShopOrders   Operation = "view_shop_orders"
	OpViewFulfillment  Operation = "view_fulfillment"
	OpShowOrder        Operation = "show_order"
	OpRevealAddress    Operation = "reveal_address"
	OpViewLeaderboards Operation = "view_leaderboards"
	OpApprove          Operation = "approve"
	OpReject           Operation = "reject"
	OpPlaceOnHold      Operation = "place_on_hold"
	OpReleaseFromHold  Operation = "release_from_hold"
	OpMarkFulfilled    Operation = "mark_fulfilled"
	OpUpdateNotes      Operation = "update_notes"
)

// AllOperations lists every operation the policy knows about.
func AllOperations() []Operation {
	return []Operation{
		OpViewShopOrders, OpViewFulfillment, OpShowOrder, OpRevealAddress, OpViewLeaderboards,
		OpApprove, OpReject, OpPlaceOnHold, OpReleaseFromHold, OpMarkFulfilled, OpUpdateNotes,
	}
}
