package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

// View selects which slice of the workflow a listing shows.
type View string

const (
	ViewShopOrders  View = "shop_orders"
	ViewFulfillment View = "fulfillment"
)

// ParseView accepts the two known views.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewShopOrders, ViewFulfillment:
		return v, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("view", fmt.Errorf("%q is not a known view", s))
	}
}

// Scope is the set of states a view shows when no explicit status is requested.
func (v View) Scope() []State {
	switch v {
	case ViewFulfillment:
		return []State{AwaitingFulfillment, Fulfilled}
	case ViewShopOrders:
		return []State{Pending, Rejected, OnHold}
	default:
		return nil
	}
}

// SortKey names one of the supported orderings.
type SortKey string

const (
	SortCreatedAtDesc SortKey = "created_at_desc"
	SortCreatedAtAsc  SortKey = "created_at_asc"
	SortIDAsc         SortKey = "id_asc"
	SortIDDesc        SortKey = "id_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortPriceDesc     SortKey = "price_desc"
)

var sortAliases = map[string]SortKey{
	"shells_asc":  SortPriceAsc,
	"shells_desc": SortPriceDesc,
}

// ParseSortKey never fails: unknown keys fall back to newest first.
func ParseSortKey(s string) SortKey {
	s = strings.ToLower(strings.TrimSpace(s))
	switch k := SortKey(s); k {
	case SortCreatedAtAsc, SortCreatedAtDesc, SortIDAsc, SortIDDesc, SortPriceAsc, SortPriceDesc:
		return k
	}
	if k, ok := sortAliases[s]; ok {
		return k
	}
	return SortCreatedAtDesc
}

// Filter is the store-side part of an order listing. An empty States slice means
// the view scope applies.
type Filter struct {
	View        View
	ItemID      *int64
	States      []State
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UserSearch  string
	Sort        SortKey
}

// EffectiveStates narrows the explicit states to the view scope. Without explicit
// states the whole scope applies. A non-nil empty result matches no order.
func (f Filter) EffectiveStates() []State {
	scope := f.View.Scope()
	if len(f.States) == 0 {
		return scope
	}
	if scope == nil {
		return f.States
	}
	states := make([]State, 0, len(f.States))
	for _, s := range f.States {
		if slices.Contains(scope, s) && !slices.Contains(states, s) {
			states = append(states, s)
		}
	}
	return states
}

// Stats summarises a filtered order set.
type Stats struct {
	Counts                map[State]int
	AvgFulfillmentSeconds *float64
}

// Count returns the number of orders in the given state.
func (s Stats) Count(state State) int {
	return s.Counts[state]
}

// Total is the sum of all per-state counts.
func (s Stats) Total() int {
	var total int
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// UserStats summarises every order a single user has placed.
type UserStats struct {
	Total         int
	Counts        map[State]int
	TotalQuantity int
}
