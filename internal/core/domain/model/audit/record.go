package audit

import (
	"errors"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// EntityShopOrder tags records that describe shop orders.
const EntityShopOrder = "ShopOrder"

// Change is a single (field, old, new) triple. Nil means the field had no value.
type Change struct {
	Field string
	Old   *string
	New   *string
}

// NewChange builds a Change from plain values; empty strings become nil.
func NewChange(field, oldValue, newValue string) Change {
	return Change{
		Field: field,
		Old:   nullable(oldValue),
		New:   nullable(newValue),
	}
}

// Record is one immutable audit entry.
type Record struct {
	id         kernel.UUID
	entityType string
	entityID   string
	actorID    string
	recordedAt time.Time
	changes    []Change
	guard      guard.ConstructorGuard
}

// NewRecord creates a record with a fresh identifier. At least one change is required.
func NewRecord(entityType, entityID, actorID string, recordedAt time.Time, changes []Change) (*Record, error) {
	return RestoreRecord(kernel.NewUUID(), entityType, entityID, actorID, recordedAt, changes)
}

// RestoreRecord rebuilds a persisted record.
func RestoreRecord(
	id kernel.UUID,
	entityType, entityID, actorID string,
	recordedAt time.Time,
	changes []Change,
) (*Record, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if entityType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("entity type"))
	}
	if entityID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("entity id"))
	}
	if recordedAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("recorded at"))
	}
	if len(changes) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("changes"))
	}
	for _, c := range changes {
		if c.Field == "" {
			problems = append(problems, errs.NewValueIsRequiredError("change field"))
			break
		}
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Record{
		id:         id,
		entityType: entityType,
		entityID:   entityID,
		actorID:    actorID,
		recordedAt: recordedAt,
		changes:    slices.Clone(changes),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID       { return r.id }
func (r *Record) EntityType() string    { return r.entityType }
func (r *Record) EntityID() string      { return r.entityID }
func (r *Record) ActorID() string       { return r.actorID }
func (r *Record) RecordedAt() time.Time { return r.recordedAt }

// Changes returns a copy so callers cannot alter the recorded diff.
func (r *Record) Changes() []Change {
	return slices.Clone(r.changes)
}

// Change looks up the change for a single field.
func (r *Record) Change(field string) (Change, bool) {
	for _, c := range r.changes {
		if c.Field == field {
			return c, true
		}
	}
	return Change{}, false
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
