package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersParams is the raw listing request. Empty values mean "not filtered".
type ListOrdersParams struct {
	View        string
	ItemID      *int64
	Statuses    []string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UserSearch  string
	Region      string
	Grouped     bool
	Sort        string
}

// ListOrdersQuery lists orders of one view with optional filters.
//
// Example:
//
//	q, err := NewListOrdersQuery(caller, ListOrdersParams{View: "fulfillment", Region: "eu"})
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, q)
type ListOrdersQuery struct {
	caller      staff.Caller
	view        order.View
	itemID      *int64
	states      []order.State
	createdFrom *time.Time
	createdTo   *time.Time
	userSearch  string
	region      string
	grouped     bool
	sort        order.SortKey

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(caller staff.Caller, p ListOrdersParams) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		caller:      caller,
		itemID:      p.ItemID,
		createdFrom: p.CreatedFrom,
		createdTo:   p.CreatedTo,
		userSearch:  strings.TrimSpace(p.UserSearch),
		region:      strings.ToUpper(strings.TrimSpace(p.Region)),
		grouped:     p.Grouped,
		sort:        order.ParseSortKey(p.Sort),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		caller.Validate(),
		q.setView(p.View),
		q.setStates(p.Statuses),
		q.checkDates(),
	); err != nil {
		return ListOrdersQuery{}, err
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Caller() staff.Caller { return q.caller }

// View returns the requested view, empty when the caller's default applies.
func (q ListOrdersQuery) View() order.View { return q.view }

func (q ListOrdersQuery) Region() string { return q.region }
func (q ListOrdersQuery) Grouped() bool  { return q.grouped }

func (q *ListOrdersQuery) setView(view string) error {
	if strings.TrimSpace(view) == "" {
		return nil
	}
	v, err := order.ParseView(view)
	if err != nil {
		return err
	}
	q.view = v
	return nil
}

func (q *ListOrdersQuery) setStates(statuses []string) error {
	for _, s := range statuses {
		if strings.TrimSpace(s) == "" {
			continue
		}
		state, err := order.ParseState(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		q.states = append(q.states, state)
	}
	return nil
}

func (q *ListOrdersQuery) checkDates() error {
	if q.createdFrom != nil && q.createdTo != nil && q.createdTo.Before(*q.createdFrom) {
		return errs.NewValueIsInvalidErrorWithCause("created to", fmt.Errorf("%s is before created from", q.createdTo.Format(time.RFC3339)))
	}
	return nil
}

// filter builds the store filter for view, applying the fraud default when no
// status was requested.
func (q ListOrdersQuery) filter(view order.View) order.Filter {
	states := q.states
	if len(states) == 0 && view == order.ViewShopOrders && q.caller.IsRestrictedToPending() {
		states = []order.State{order.Pending}
	}
	return order.Filter{
		View:        view,
		ItemID:      q.itemID,
		States:      states,
		CreatedFrom: q.createdFrom,
		CreatedTo:   q.createdTo,
		UserSearch:  q.userSearch,
		Sort:        q.sort,
	}
}
