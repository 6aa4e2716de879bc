// Package order provides the ShopOrder aggregate and its fulfillment state machine.
//
// The package includes:
//   - Order: the aggregate root carrying the frozen price and address snapshots
//   - State: the closed set of workflow states
//   - Transition: the operations accepted by the state machine, checked against an
//     explicit transition table
//   - Filter, View and Stats: the vocabulary used to query orders
//
// Key business rules:
//   - Orders are placed elsewhere and enter this package in the pending state
//   - fulfilledAt is set exactly when the state is fulfilled
//   - a rejection reason is set exactly when the state is rejected
//   - rejected and fulfilled are terminal; fulfilled orders still accept note edits
//   - every accepted operation reports the field-level changes it made so the caller
//     can append them to the audit trail
package order
