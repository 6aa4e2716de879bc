// Package staff models the authenticated admin-panel user on whose behalf an
// operation runs, together with the roles, capabilities and operations the
// access policy reasons about.
package staff
