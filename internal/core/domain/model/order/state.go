package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// State is the workflow state of an order.
//
//	pending ──approve──────────────> awaiting_fulfillment ──mark_fulfilled──> fulfilled
//	   │  └──approve (auto-fulfill)────────────────────────────────────────────┘
//	   ├──reject──> rejected <──reject── on_hold
//	   └──place_on_hold──> on_hold ──release_from_hold──> (pre-hold state)
type State int

const (
	// Unknown catches uninitialized State values.
	Unknown State = iota
	Pending
	OnHold
	Rejected
	AwaitingFulfillment
	Fulfilled
)

var stateNames = map[State]string{
	Pending:             "pending",
	OnHold:              "on_hold",
	Rejected:            "rejected",
	AwaitingFulfillment: "awaiting_fulfillment",
	Fulfilled:           "fulfilled",
}

// AllStates lists every valid state in workflow order.
func AllStates() []State {
	return []State{Pending, OnHold, Rejected, AwaitingFulfillment, Fulfilled}
}

// ParseState converts the persisted name back to a State.
func ParseState(s string) (State, error) {
	for state, name := range stateNames {
		if name == s {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%q is not a valid state", s))
}

// Validate checks that the value is one of the defined states.
func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the persisted name, or "unknown" for invalid values.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further state change is defined.
func (s State) IsTerminal() bool {
	return s == Rejected || s == Fulfilled
}
