// Package queries contains the read-only shop order use cases: listings,
// single-order detail, address reveal and the staff leaderboards. Queries never
// open a unit of work; they read a consistent snapshot through the repositories.
package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/staff"
)

// AccessChecker decides whether a caller may run an operation.
type AccessChecker interface {
	Check(ctx context.Context, caller staff.Caller, op staff.Operation) error
}
