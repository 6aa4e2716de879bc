// Package access combines the access policy table with the capability
// authorizer into the single check every use case runs first.
package access

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type Checker struct {
	policy     services.AccessPolicy
	authorizer ports.Authorizer
}

func NewChecker(policy services.AccessPolicy, authorizer ports.Authorizer) Checker {
	return Checker{policy: policy, authorizer: authorizer}
}

// Check returns nil when the caller may perform op. Denials are
// *errs.ForbiddenError naming only the operation.
func (c Checker) Check(ctx context.Context, caller staff.Caller, op staff.Operation) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	rule := c.policy.Decide(caller, op)
	if !rule.Allowed {
		return errs.NewForbiddenError(string(op))
	}
	if rule.Capability == "" {
		return nil
	}

	ok, err := c.authorizer.Authorize(ctx, caller, rule.Capability)
	if err != nil {
		return fmt.Errorf("authorize %s: %w", op, err)
	}
	if !ok {
		return errs.NewForbiddenError(string(op))
	}
	return nil
}
