package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per workflow command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command: an order update and its
// audit record commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was never called.
	Commit(ctx context.Context) error

	// Rollback discards everything done since Begin. After Commit it only
	// reports that no transaction is open.
	Rollback(ctx context.Context) error

	// Repositories below share the transaction opened by Begin.
	OrderRepository() OrderRepository
	AuditRepository() AuditRepository
}
