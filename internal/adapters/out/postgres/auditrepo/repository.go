package auditrepo

import (
	"context"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/leaderboard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditRepository. It has no update or
// delete path.
type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append inserts the record and its changes.
func (r *GormAuditRepository) Append(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert audit record: %w", pgerr.Translate(err, "audit record"))
	}
	return nil
}

// ListByEntity returns the entity's records oldest first.
func (r *GormAuditRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*audit.Record, error) {
	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).
		Preload("Changes", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("recorded_at ASC, seq ASC").
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	records := make([]*audit.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

type actorCountRow struct {
	ActorID string
	Count   int
}

// CountTransitionsByActor counts records holding a change of field to newValue.
// Actors come back in order of their first such record.
func (r *GormAuditRepository) CountTransitionsByActor(
	ctx context.Context,
	entityType, field, newValue string,
) ([]leaderboard.ActorCount, error) {
	query, args, err := sq.Select("r.actor_id", "COUNT(DISTINCT r.id) AS count").
		From("audit_records r").
		Join("audit_changes c ON c.record_id = r.id").
		Where(sq.Eq{"r.entity_type": entityType, "c.field": field, "c.new_value": newValue}).
		Where(sq.NotEq{"r.actor_id": ""}).
		GroupBy("r.actor_id").
		OrderBy("MIN(r.recorded_at) ASC", "MIN(r.seq) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transition count: %w", err)
	}

	var rows []actorCountRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count transitions: %w", err)
	}

	counts := make([]leaderboard.ActorCount, len(rows))
	for i, row := range rows {
		counts[i] = leaderboard.ActorCount{ActorID: row.ActorID, Count: row.Count}
	}
	return counts, nil
}
