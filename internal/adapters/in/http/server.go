package http

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// CommandHandler is any use case that changes one order and returns it.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) (*order.Order, error)
}

// QueryHandler is any read-only use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	Approve         CommandHandler[commands.ApproveOrderCommand]
	Reject          CommandHandler[commands.RejectOrderCommand]
	PlaceOnHold     CommandHandler[commands.PlaceOnHoldCommand]
	ReleaseFromHold CommandHandler[commands.ReleaseFromHoldCommand]
	MarkFulfilled   CommandHandler[commands.MarkFulfilledCommand]
	UpdateNotes     CommandHandler[commands.UpdateNotesCommand]

	// Query handlers
	ListOrders    QueryHandler[queries.ListOrdersQuery, queries.ListOrdersResult]
	GetOrder      QueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	RevealAddress QueryHandler[queries.RevealAddressQuery, *kernel.Address]
	Leaderboards  QueryHandler[queries.GetLeaderboardsQuery, queries.Leaderboards]
}

// Server serves the admin shop-orders API. It translates HTTP requests into
// commands and queries and maps their results and errors back.
type Server struct {
	handlers Handlers
	log      *logrus.Entry
}

func NewServer(handlers Handlers, log *logrus.Logger) *Server {
	return &Server{handlers: handlers, log: logger.Component(log, "http")}
}

// EchoRouter is the subset of echo.Echo and echo.Group the routes need.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	Use(middleware ...echo.MiddlewareFunc)
}

// BasePath is where the shop-orders resource is mounted.
const BasePath = "/admin/shop_orders"

// RegisterHandlers mounts every route of s on router. Requests without a
// caller identity are rejected before reaching a handler.
func RegisterHandlers(router EchoRouter, s *Server) {
	router.Use(CallerFromHeaders())

	router.GET("", s.ListOrders)
	router.GET("/leaderboards", s.GetLeaderboards)
	router.GET("/:id", s.GetOrder)
	router.GET("/:id/reveal_address", s.RevealAddress)

	router.POST("/:id/approve", s.ApproveOrder)
	router.POST("/:id/reject", s.RejectOrder)
	router.POST("/:id/place_on_hold", s.PlaceOnHold)
	router.POST("/:id/release_from_hold", s.ReleaseFromHold)
	router.POST("/:id/mark_fulfilled", s.MarkFulfilled)
	router.PATCH("/:id/internal_notes", s.UpdateNotes)
}
