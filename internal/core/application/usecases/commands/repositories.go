// Package commands contains the shop order workflow operations that change state.
// Every command follows the same pattern: access check, unit of work, load,
// domain transition, versioned save, audit append, commit.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AuditRepoFactory provides access to the audit log within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// UoW makes an order update and its audit record atomic.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.OrderRepository().Update(ctx, o)
	//   _ = uow.AuditRepository().Append(ctx, record)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// UoWFactory creates a fresh unit of work per command.
	UoWFactory interface {
		Create() UoW
	}

	// AccessChecker decides whether a caller may run an operation.
	AccessChecker interface {
		Check(ctx context.Context, caller staff.Caller, op staff.Operation) error
	}
)
