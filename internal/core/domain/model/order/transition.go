package order

import (
	"fulfillment/internal/pkg/errs"
)

// Transition names an operation of the state machine.
type Transition string

const (
	Approve           Transition = "approve"
	ApproveAndFulfill Transition = "approve_and_fulfill"
	Reject            Transition = "reject"
	PlaceOnHold       Transition = "place_on_hold"
	ReleaseFromHold   Transition = "release_from_hold"
	MarkFulfilled     Transition = "mark_fulfilled"
	UpdateNotes       Transition = "update_notes"
)

// transitionTable maps each state-changing transition to its legal source states and
// their target. A target of Unknown means "restore the pre-hold state".
var transitionTable = map[Transition]map[State]State{
	Approve:           {Pending: AwaitingFulfillment},
	ApproveAndFulfill: {Pending: Fulfilled},
	Reject:            {Pending: Rejected, OnHold: Rejected},
	PlaceOnHold:       {Pending: OnHold, AwaitingFulfillment: OnHold},
	ReleaseFromHold:   {OnHold: Unknown},
	MarkFulfilled:     {AwaitingFulfillment: Fulfilled},
}

// Next returns the state reached by applying t from s. The returned error is an
// *errs.InvalidTransitionError naming s when the pair is not in the table.
func (s State) Next(t Transition) (State, error) {
	targets, ok := transitionTable[t]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(t.operationName(), s.String())
	}
	next, ok := targets[s]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(t.operationName(), s.String())
	}
	return next, nil
}

// Permits reports whether t is legal from s without applying it.
func (s State) Permits(t Transition) bool {
	_, err := s.Next(t)
	return err == nil
}

// operationName is what callers see in errors: both approve paths are "approve".
func (t Transition) operationName() string {
	if t == ApproveAndFulfill {
		return string(Approve)
	}
	return string(t)
}
