package staff

import (
	"errors"
	"slices"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller")

// MaxUserIDLength matches the width of the actor columns the id is stored in.
const MaxUserIDLength = 64

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleFulfillment Role = "fulfillment"
	RoleFraud       Role = "fraud"
)

// Capability is a named permission confirmed by the authorizer.
type Capability string

const (
	CapabilityShopOrders      Capability = "access_shop_orders"
	CapabilityFulfillmentView Capability = "access_fulfillment_view"
)

// Profile is the access class derived from a caller's roles.
type Profile int

const (
	ProfileStaff Profile = iota
	ProfileFulfillment
	ProfileAdmin
)

func (p Profile) String() string {
	switch p {
	case ProfileAdmin:
		return "admin"
	case ProfileFulfillment:
		return "fulfillment"
	default:
		return "staff"
	}
}

// Caller is the identity an operation is performed for.
type Caller struct {
	userID       string
	roles        []Role
	region       string
	capabilities []Capability
	guard        guard.ConstructorGuard
}

// NewCaller normalises roles and the region code. Unknown roles are kept; they
// simply never match anything.
func NewCaller(userID string, roles []Role, region string, capabilities []Capability) (Caller, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Caller{}, errs.NewValueIsRequiredError("user id")
	}
	if len(userID) > MaxUserIDLength {
		return Caller{}, errs.NewValueIsInvalidError("user id")
	}

	normalized := make([]Role, 0, len(roles))
	for _, r := range roles {
		r = Role(strings.ToLower(strings.TrimSpace(string(r))))
		if r != "" && !slices.Contains(normalized, r) {
			normalized = append(normalized, r)
		}
	}

	return Caller{
		userID:       userID,
		roles:        normalized,
		region:       strings.ToUpper(strings.TrimSpace(region)),
		capabilities: slices.Clone(capabilities),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

func (c Caller) UserID() string             { return c.userID }
func (c Caller) Roles() []Role              { return slices.Clone(c.roles) }
func (c Caller) Region() string             { return c.region }
func (c Caller) Capabilities() []Capability { return slices.Clone(c.capabilities) }
func (c Caller) HasRole(r Role) bool        { return slices.Contains(c.roles, r) }
func (c Caller) IsAdmin() bool              { return c.HasRole(RoleAdmin) }

func (c Caller) HasCapability(cp Capability) bool {
	return slices.Contains(c.capabilities, cp)
}

// Profile picks the strongest class: admin, then fulfillment, then staff.
func (c Caller) Profile() Profile {
	switch {
	case c.HasRole(RoleAdmin):
		return ProfileAdmin
	case c.HasRole(RoleFulfillment):
		return ProfileFulfillment
	default:
		return ProfileStaff
	}
}

// IsRestrictedToPending is true for fraud reviewers who are not admins.
func (c Caller) IsRestrictedToPending() bool {
	return c.HasRole(RoleFraud) && !c.IsAdmin()
}

// BoundRegion is the region a non-admin fulfillment caller is locked to, if any.
func (c Caller) BoundRegion() (string, bool) {
	if c.Profile() != ProfileFulfillment || c.region == "" {
		return "", false
	}
	return c.region, true
}
