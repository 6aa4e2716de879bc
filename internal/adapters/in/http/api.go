package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrdersParams are the query parameters of GET /admin/shop_orders.
type ListOrdersParams struct {
	View        *string    `form:"view"`
	ItemID      *int64     `form:"item_id"`
	Status      *[]string  `form:"status"`
	CreatedFrom *time.Time `form:"created_from"`
	CreatedTo   *time.Time `form:"created_to"`
	UserSearch  *string    `form:"user_search"`
	Region      *string    `form:"region"`
	Grouped     *bool      `form:"grouped"`
	Sort        *string    `form:"sort"`
}

// RejectRequest is the body of POST /:id/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// UpdateNotesRequest is the body of PATCH /:id/internal_notes.
type UpdateNotesRequest struct {
	InternalNotes string `json:"internal_notes"`
}

func bindListOrdersParams(ctx echo.Context) (ListOrdersParams, error) {
	var params ListOrdersParams
	values := ctx.QueryParams()

	bindings := []struct {
		name string
		dest any
	}{
		{"view", &params.View},
		{"item_id", &params.ItemID},
		{"status", &params.Status},
		{"created_from", &params.CreatedFrom},
		{"created_to", &params.CreatedTo},
		{"user_search", &params.UserSearch},
		{"region", &params.Region},
		{"grouped", &params.Grouped},
		{"sort", &params.Sort},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, values, b.dest); err != nil {
			return ListOrdersParams{}, errs.NewValueIsInvalidErrorWithCause(b.name, err)
		}
	}
	return params, nil
}

func (p ListOrdersParams) toQueryParams() queries.ListOrdersParams {
	q := queries.ListOrdersParams{
		ItemID:      p.ItemID,
		CreatedFrom: p.CreatedFrom,
		CreatedTo:   p.CreatedTo,
	}
	if p.View != nil {
		q.View = *p.View
	}
	if p.Status != nil {
		q.Statuses = *p.Status
	}
	if p.UserSearch != nil {
		q.UserSearch = *p.UserSearch
	}
	if p.Region != nil {
		q.Region = *p.Region
	}
	if p.Grouped != nil {
		q.Grouped = *p.Grouped
	}
	if p.Sort != nil {
		q.Sort = *p.Sort
	}
	return q
}

func orderID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// ListOrders handles GET /admin/shop_orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	params, err := bindListOrdersParams(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	caller := callerFrom(ctx)
	query, err := queries.NewListOrdersQuery(caller, params.toQueryParams())
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response := toListOrdersResponse(result)

	// Boards are an extra on the listing; a caller who may not see them still
	// gets the orders.
	boardsQuery, err := queries.NewGetLeaderboardsQuery(caller)
	if err != nil {
		return s.writeError(ctx, err)
	}
	boards, err := s.handlers.Leaderboards.Handle(ctx.Request().Context(), boardsQuery)
	switch {
	case errors.Is(err, errs.ErrForbidden):
	case err != nil:
		return s.writeError(ctx, err)
	default:
		response.Leaderboards = toLeaderboardsResponse(boards)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLeaderboards handles GET /admin/shop_orders/leaderboards.
func (s *Server) GetLeaderboards(ctx echo.Context) error {
	query, err := queries.NewGetLeaderboardsQuery(callerFrom(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	boards, err := s.handlers.Leaderboards.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toLeaderboardsResponse(boards))
}

// GetOrder handles GET /admin/shop_orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(callerFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// RevealAddress handles GET /admin/shop_orders/:id/reveal_address.
func (s *Server) RevealAddress(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewRevealAddressQuery(callerFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	addr, err := s.handlers.RevealAddress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if addr == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order has no address",
		})
	}
	return ctx.JSON(http.StatusOK, toAddressResponse(addr))
}

// ApproveOrder handles POST /admin/shop_orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	return runCommand(s, ctx, s.handlers.Approve, commands.NewApproveOrderCommand)
}

// RejectOrder handles POST /admin/shop_orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var body RejectRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return runCommand(s, ctx, s.handlers.Reject, func(caller staff.Caller, id int64) (commands.RejectOrderCommand, error) {
		return commands.NewRejectOrderCommand(caller, id, body.Reason)
	})
}

// PlaceOnHold handles POST /admin/shop_orders/:id/place_on_hold.
func (s *Server) PlaceOnHold(ctx echo.Context) error {
	return runCommand(s, ctx, s.handlers.PlaceOnHold, commands.NewPlaceOnHoldCommand)
}

// ReleaseFromHold handles POST /admin/shop_orders/:id/release_from_hold.
func (s *Server) ReleaseFromHold(ctx echo.Context) error {
	return runCommand(s, ctx, s.handlers.ReleaseFromHold, commands.NewReleaseFromHoldCommand)
}

// MarkFulfilled handles POST /admin/shop_orders/:id/mark_fulfilled.
func (s *Server) MarkFulfilled(ctx echo.Context) error {
	return runCommand(s, ctx, s.handlers.MarkFulfilled, commands.NewMarkFulfilledCommand)
}

// UpdateNotes handles PATCH /admin/shop_orders/:id/internal_notes.
func (s *Server) UpdateNotes(ctx echo.Context) error {
	var body UpdateNotesRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return runCommand(s, ctx, s.handlers.UpdateNotes, func(caller staff.Caller, id int64) (commands.UpdateNotesCommand, error) {
		return commands.NewUpdateNotesCommand(caller, id, body.InternalNotes)
	})
}

// runCommand resolves the order id, builds the command and renders the
// updated order.
func runCommand[C any](
	s *Server,
	ctx echo.Context,
	handler CommandHandler[C],
	build func(caller staff.Caller, id int64) (C, error),
) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := build(callerFrom(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := handler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}
