package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Audited field names.
const (
	FieldState           = "state"
	FieldRejectionReason = "rejection_reason"
	FieldInternalNotes   = "internal_notes"
)

// DefaultRejectionReason is recorded when a reject request carries no reason.
const DefaultRejectionReason = "No reason provided"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the ShopOrder aggregate root.
//
// Order follows these invariants:
//   - identifiers, quantity and creation time are always set
//   - fulfilledAt != nil exactly when state is Fulfilled
//   - rejectionReason != nil exactly when state is Rejected
//   - holdFrom is Pending or AwaitingFulfillment exactly when state is OnHold
//   - frozenPrice and frozenAddress never change after construction
type Order struct {
	id              int64
	userID          int64
	itemID          int64
	state           State
	holdFrom        State
	quantity        int
	frozenPrice     *decimal.Decimal
	frozenAddress   *kernel.Address
	fulfilledBy     string
	fulfilledAt     *time.Time
	rejectionReason *string
	internalNotes   string
	createdAt       time.Time
	version         int
	guard           guard.ConstructorGuard
}

// Params carries the point-in-time data captured when the order was placed.
type Params struct {
	ID            int64
	UserID        int64
	ItemID        int64
	Quantity      int
	FrozenPrice   *decimal.Decimal
	FrozenAddress *kernel.Address
	InternalNotes string
	CreatedAt     time.Time
}

// Snapshot is the full persisted form of an order, used by RestoreOrder.
type Snapshot struct {
	Params
	State           State
	HoldFrom        State
	FulfilledBy     string
	FulfilledAt     *time.Time
	RejectionReason *string
	Version         int
}

// NewOrder creates a pending order from freshly placed order data.
func NewOrder(p Params) (*Order, error) {
	return RestoreOrder(Snapshot{Params: p, State: Pending})
}

// RestoreOrder rebuilds an order from persistence, rejecting snapshots that break
// the aggregate invariants.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := validateSnapshot(s); err != nil {
		return nil, err
	}

	o := &Order{
		id:              s.ID,
		userID:          s.UserID,
		itemID:          s.ItemID,
		state:           s.State,
		holdFrom:        s.HoldFrom,
		quantity:        s.Quantity,
		fulfilledBy:     s.FulfilledBy,
		internalNotes:   s.InternalNotes,
		createdAt:       s.CreatedAt,
		version:         s.Version,
		guard:           guard.NewConstructorGuard(),
		rejectionReason: copyString(s.RejectionReason),
	}
	if s.FrozenPrice != nil {
		price := *s.FrozenPrice
		o.frozenPrice = &price
	}
	if s.FrozenAddress != nil {
		addr := *s.FrozenAddress
		o.frozenAddress = &addr
	}
	if s.FulfilledAt != nil {
		at := *s.FulfilledAt
		o.fulfilledAt = &at
	}
	return o, nil
}

func validateSnapshot(s Snapshot) error {
	var problems []error
	if s.ID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", s.ID)))
	}
	if s.UserID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not positive", s.UserID)))
	}
	if s.ItemID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not positive", s.ItemID)))
	}
	if s.Quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", s.Quantity)))
	}
	if s.FrozenPrice != nil && s.FrozenPrice.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("frozen price", fmt.Errorf("%s is negative", s.FrozenPrice)))
	}
	if s.FrozenAddress != nil {
		if err := s.FrozenAddress.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if s.CreatedAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("created at"))
	}
	if s.Version < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", s.Version)))
	}
	if err := s.State.Validate(); err != nil {
		problems = append(problems, err)
	} else {
		problems = append(problems, validateStateFields(s))
	}
	return errors.Join(problems...)
}

func validateStateFields(s Snapshot) error {
	var problems []error
	if (s.State == Fulfilled) != (s.FulfilledAt != nil) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"fulfilled at", fmt.Errorf("must be set exactly when the state is fulfilled, state is %s", s.State)))
	}
	if (s.State == Rejected) != (s.RejectionReason != nil) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"rejection reason", fmt.Errorf("must be set exactly when the state is rejected, state is %s", s.State)))
	}
	if s.State == OnHold {
		if s.HoldFrom != Pending && s.HoldFrom != AwaitingFulfillment {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"hold from", fmt.Errorf("%s is not a state an order can be held from", s.HoldFrom)))
		}
	} else if s.HoldFrom != Unknown {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"hold from", fmt.Errorf("must be empty outside on_hold, state is %s", s.State)))
	}
	return errors.Join(problems...)
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() int64 { return o.id }

// EntityID is the identifier used by audit records.
func (o *Order) EntityID() string { return strconv.FormatInt(o.id, 10) }

func (o *Order) UserID() int64            { return o.userID }
func (o *Order) ItemID() int64            { return o.itemID }
func (o *Order) State() State             { return o.state }
func (o *Order) HoldFrom() State          { return o.holdFrom }
func (o *Order) Quantity() int            { return o.quantity }
func (o *Order) FulfilledBy() string      { return o.fulfilledBy }
func (o *Order) InternalNotes() string    { return o.internalNotes }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) Version() int             { return o.version }
func (o *Order) HasFrozenAddress() bool   { return o.frozenAddress != nil }
func (o *Order) RejectionReason() *string { return copyString(o.rejectionReason) }

// FrozenPrice returns the unit price captured at placement, nil when unknown.
func (o *Order) FrozenPrice() *decimal.Decimal {
	if o.frozenPrice == nil {
		return nil
	}
	price := *o.frozenPrice
	return &price
}

// FrozenAddress returns the address snapshot, nil when the order has none.
func (o *Order) FrozenAddress() *kernel.Address {
	if o.frozenAddress == nil {
		return nil
	}
	addr := *o.frozenAddress
	return &addr
}

func (o *Order) FulfilledAt() *time.Time {
	if o.fulfilledAt == nil {
		return nil
	}
	at := *o.fulfilledAt
	return &at
}

// TotalCost is the frozen price times quantity, nil when the price is unknown.
func (o *Order) TotalCost() *decimal.Decimal {
	if o.frozenPrice == nil {
		return nil
	}
	total := o.frozenPrice.Mul(decimal.NewFromInt(int64(o.quantity)))
	return &total
}

// FulfillmentDuration is the time between placement and fulfillment.
func (o *Order) FulfillmentDuration() (time.Duration, bool) {
	if o.fulfilledAt == nil {
		return 0, false
	}
	return o.fulfilledAt.Sub(o.createdAt), true
}

// Approve moves a pending order forward. When the item fulfills itself the order
// goes straight to fulfilled and the intermediate state is never recorded.
func (o *Order) Approve(actorID string, autoFulfill bool, now time.Time) ([]audit.Change, error) {
	transition := Approve
	if autoFulfill {
		transition = ApproveAndFulfill
	}

	next, err := o.state.Next(transition)
	if err != nil {
		return nil, err
	}
	if next == Fulfilled {
		if err = requireActor(actorID); err != nil {
			return nil, err
		}
		o.fulfil(actorID, now)
	}

	return o.moveTo(next), nil
}

// Reject moves a pending or held order to rejected. A blank reason is replaced
// with DefaultRejectionReason.
func (o *Order) Reject(reason string) ([]audit.Change, error) {
	next, err := o.state.Next(Reject)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}

	reasonChange := audit.Change{Field: FieldRejectionReason, Old: copyString(o.rejectionReason), New: &reason}
	o.rejectionReason = &reason
	o.holdFrom = Unknown

	return append(o.moveTo(next), reasonChange), nil
}

// PlaceOnHold parks a pending or awaiting order and remembers where it came from.
func (o *Order) PlaceOnHold() ([]audit.Change, error) {
	next, err := o.state.Next(PlaceOnHold)
	if err != nil {
		return nil, err
	}

	held := o.state
	changes := o.moveTo(next)
	o.holdFrom = held
	return changes, nil
}

// ReleaseFromHold returns a held order to its pre-hold state.
func (o *Order) ReleaseFromHold() ([]audit.Change, error) {
	if _, err := o.state.Next(ReleaseFromHold); err != nil {
		return nil, err
	}
	if o.holdFrom != Pending && o.holdFrom != AwaitingFulfillment {
		return nil, errs.NewInvalidTransitionError(string(ReleaseFromHold), o.state.String())
	}

	target := o.holdFrom
	o.holdFrom = Unknown
	return o.moveTo(target), nil
}

// MarkFulfilled completes an order that is awaiting fulfillment.
func (o *Order) MarkFulfilled(actorID string, now time.Time) ([]audit.Change, error) {
	next, err := o.state.Next(MarkFulfilled)
	if err != nil {
		return nil, err
	}
	if err = requireActor(actorID); err != nil {
		return nil, err
	}

	o.fulfil(actorID, now)
	return o.moveTo(next), nil
}

// UpdateNotes replaces the internal notes in any state. Identical notes are a
// no-op and report no changes.
func (o *Order) UpdateNotes(notes string) []audit.Change {
	if notes == o.internalNotes {
		return nil
	}

	change := audit.NewChange(FieldInternalNotes, o.internalNotes, notes)
	o.internalNotes = notes
	return []audit.Change{change}
}

// AdvanceVersion is called by the repository once a save has been committed.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) moveTo(next State) []audit.Change {
	change := audit.NewChange(FieldState, o.state.String(), next.String())
	o.state = next
	return []audit.Change{change}
}

func (o *Order) fulfil(actorID string, now time.Time) {
	at := now
	o.fulfilledAt = &at
	o.fulfilledBy = actorID
}

func requireActor(actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
