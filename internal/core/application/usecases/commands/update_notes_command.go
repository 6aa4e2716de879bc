package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"
)

// MaxInternalNotesLength bounds the notes field in characters.
const MaxInternalNotesLength = 10000

var ErrUpdateNotesCommandIsNotConstructed = errors.New(
	"UpdateNotesCommand must be created via NewUpdateNotesCommand constructor",
)

// UpdateNotesCommand replaces an order's internal notes. It is allowed in every
// state.
type UpdateNotesCommand struct {
	target
	notes string
}

func NewUpdateNotesCommand(caller staff.Caller, orderID int64, notes string) (UpdateNotesCommand, error) {
	t, err := newTarget(caller, orderID)
	if err != nil {
		return UpdateNotesCommand{}, err
	}
	if n := utf8.RuneCountInString(notes); n > MaxInternalNotesLength {
		return UpdateNotesCommand{}, errs.NewValidationError(
			fmt.Sprintf("internal notes is too long (%d characters, maximum is %d)", n, MaxInternalNotesLength))
	}
	return UpdateNotesCommand{target: t, notes: notes}, nil
}

func (c UpdateNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNotesCommandIsNotConstructed)
}

func (c UpdateNotesCommand) Notes() string {
	return c.notes
}
