package http

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating proxy in front of this service.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserRoles    = "X-User-Roles"
	HeaderUserRegion   = "X-User-Region"
	HeaderCapabilities = "X-User-Capabilities"
)

const callerKey = "fulfillment.caller"

// CallerFromHeaders builds the staff.Caller for every request and rejects
// requests without a user id.
func CallerFromHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			h := ctx.Request().Header

			roles := make([]staff.Role, 0)
			for _, r := range splitList(h.Get(HeaderUserRoles)) {
				roles = append(roles, staff.Role(r))
			}
			caps := make([]staff.Capability, 0)
			for _, c := range splitList(h.Get(HeaderCapabilities)) {
				caps = append(caps, staff.Capability(c))
			}

			caller, err := staff.NewCaller(h.Get(HeaderUserID), roles, h.Get(HeaderUserRegion), caps)
			if err != nil {
				message := "Missing caller identity"
				if errors.Is(err, errs.ErrValueIsInvalid) {
					message = "Invalid caller identity"
				}
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: message,
				})
			}

			ctx.Set(callerKey, caller)
			return next(ctx)
		}
	}
}

func callerFrom(ctx echo.Context) staff.Caller {
	caller, _ := ctx.Get(callerKey).(staff.Caller)
	return caller
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
