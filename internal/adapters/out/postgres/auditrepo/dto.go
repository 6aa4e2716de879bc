// Package auditrepo stores audit records in two append-only tables:
// audit_records holds one row per record and audit_changes one row per changed
// field.
package auditrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO is an audit_records row. Seq preserves insertion order when
// recorded_at timestamps collide.
type RecordDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq        int64       `gorm:"autoIncrement;uniqueIndex"`
	EntityType string      `gorm:"type:varchar(64);not null;index:idx_audit_records_entity,priority:1"`
	EntityID   string      `gorm:"type:varchar(64);not null;index:idx_audit_records_entity,priority:2"`
	ActorID    string      `gorm:"type:varchar(64);not null;default:''"`
	RecordedAt time.Time   `gorm:"not null"`
	Changes    []ChangeDTO `gorm:"foreignKey:RecordID;constraint:OnDelete:RESTRICT"`
}

func (RecordDTO) TableName() string {
	return "audit_records"
}

// ChangeDTO is one changed field of a record. Position keeps the field order
// of the original change list.
type ChangeDTO struct {
	RecordID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey;autoIncrement:false"`
	Field    string    `gorm:"type:varchar(64);not null;index"`
	OldValue *string   `gorm:"type:text"`
	NewValue *string   `gorm:"type:text"`
}

func (ChangeDTO) TableName() string {
	return "audit_changes"
}

func fromDomain(r *audit.Record) RecordDTO {
	id := r.ID().Bytes()
	changes := make([]ChangeDTO, 0, len(r.Changes()))
	for i, c := range r.Changes() {
		changes = append(changes, ChangeDTO{
			RecordID: id,
			Position: i,
			Field:    c.Field,
			OldValue: c.Old,
			NewValue: c.New,
		})
	}

	return RecordDTO{
		ID:         id,
		EntityType: r.EntityType(),
		EntityID:   r.EntityID(),
		ActorID:    r.ActorID(),
		RecordedAt: r.RecordedAt(),
		Changes:    changes,
	}
}

func toDomain(dto RecordDTO) (*audit.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	changes := make([]audit.Change, len(dto.Changes))
	for i, c := range dto.Changes {
		changes[i] = audit.Change{Field: c.Field, Old: c.OldValue, New: c.NewValue}
	}

	return audit.RestoreRecord(id, dto.EntityType, dto.EntityID, dto.ActorID, dto.RecordedAt, changes)
}
