// Package user holds the read-only view of admin-panel and shop users that the
// workflow needs for labels and search.
package user

import (
	"strconv"
	"strings"
)

// User is owned by the account system; this service only reads it.
type User struct {
	ID          int64
	DisplayName string
	Email       string
}

// Label is the name shown on boards and listings.
func (u User) Label() string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	return "User #" + strconv.FormatInt(u.ID, 10)
}
