package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/leaderboard"
)

// AuditRepository is append-only: records are never updated or deleted.
type AuditRepository interface {
	Append(ctx context.Context, record *audit.Record) error

	// ListByEntity returns the entity's records oldest first.
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*audit.Record, error)

	// CountTransitionsByActor counts records of entityType holding a change of
	// field to newValue, grouped by non-empty actor in order of first occurrence.
	CountTransitionsByActor(ctx context.Context, entityType, field, newValue string) ([]leaderboard.ActorCount, error)
}
