package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping address frozen onto an order when it was placed.
// Later edits to the user's live address never reach it. Country is stored as an
// upper-cased ISO 3166-1 alpha-2 code and drives region derivation.
type Address struct {
	firstName  string
	lastName   string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// AddressParams groups the raw fields used to build an Address.
type AddressParams struct {
	FirstName  string
	LastName   string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// NewAddress validates the params and returns an immutable Address.
// Line1, City and a two letter Country are required.
func NewAddress(p AddressParams) (Address, error) {
	country := strings.ToUpper(strings.TrimSpace(p.Country))

	var problems []error
	if strings.TrimSpace(p.Line1) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("line1"))
	}
	if strings.TrimSpace(p.City) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("city"))
	}
	switch {
	case country == "":
		problems = append(problems, errs.NewValueIsRequiredError("country"))
	case len(country) != 2:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"country", fmt.Errorf("%q is not a two letter country code", p.Country)))
	}
	if err := errors.Join(problems...); err != nil {
		return Address{}, err
	}

	return Address{
		firstName:  strings.TrimSpace(p.FirstName),
		lastName:   strings.TrimSpace(p.LastName),
		line1:      strings.TrimSpace(p.Line1),
		line2:      strings.TrimSpace(p.Line2),
		city:       strings.TrimSpace(p.City),
		state:      strings.TrimSpace(p.State),
		postalCode: strings.TrimSpace(p.PostalCode),
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) FirstName() string  { return a.firstName }
func (a Address) LastName() string   { return a.lastName }
func (a Address) Line1() string      { return a.line1 }
func (a Address) Line2() string      { return a.line2 }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

// Params returns the address fields, used by persistence adapters.
func (a Address) Params() AddressParams {
	return AddressParams{
		FirstName:  a.firstName,
		LastName:   a.lastName,
		Line1:      a.line1,
		Line2:      a.line2,
		City:       a.city,
		State:      a.state,
		PostalCode: a.postalCode,
		Country:    a.country,
	}
}
