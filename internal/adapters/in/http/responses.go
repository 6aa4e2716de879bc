package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type AddressResponse struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderResponse struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	ItemID          int64            `json:"item_id"`
	State           string           `json:"state"`
	HoldFrom        string           `json:"hold_from,omitempty"`
	Quantity        int              `json:"quantity"`
	FrozenPrice     *decimal.Decimal `json:"frozen_price"`
	TotalCost       *decimal.Decimal `json:"total_cost"`
	HasAddress      bool             `json:"has_address"`
	FulfilledBy     string           `json:"fulfilled_by,omitempty"`
	FulfilledAt     *time.Time       `json:"fulfilled_at,omitempty"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	InternalNotes   string           `json:"internal_notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	Version         int              `json:"version"`
}

type StatsResponse struct {
	Counts                map[string]int `json:"counts"`
	Total                 int            `json:"total"`
	AvgFulfillmentSeconds *float64       `json:"avg_fulfillment_seconds"`
}

type GroupResponse struct {
	UserID        int64            `json:"user_id"`
	OrderCount    int              `json:"order_count"`
	TotalQuantity int              `json:"total_quantity"`
	TotalCost     decimal.Decimal  `json:"total_cost"`
	Address       *AddressResponse `json:"address"`
	Orders        []OrderResponse  `json:"orders"`
}

type ListOrdersResponse struct {
	View         string                `json:"view"`
	Region       string                `json:"region"`
	Stats        StatsResponse         `json:"stats"`
	Orders       []OrderResponse       `json:"orders"`
	Groups       []GroupResponse       `json:"groups,omitempty"`
	Leaderboards *LeaderboardsResponse `json:"leaderboards,omitempty"`
}

type ChangeResponse struct {
	Field string  `json:"field"`
	Old   *string `json:"old"`
	New   *string `json:"new"`
}

type AuditRecordResponse struct {
	ID         string           `json:"id"`
	ActorID    string           `json:"actor_id"`
	RecordedAt time.Time        `json:"recorded_at"`
	Changes    []ChangeResponse `json:"changes"`
}

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Email string `json:"email,omitempty"`
}

type CustomerStatsResponse struct {
	Total         int            `json:"total"`
	Counts        map[string]int `json:"counts"`
	TotalQuantity int            `json:"total_quantity"`
}

type OrderDetailResponse struct {
	Order          OrderResponse         `json:"order"`
	Customer       CustomerResponse      `json:"customer"`
	CustomerStats  CustomerStatsResponse `json:"customer_stats"`
	History        []AuditRecordResponse `json:"history"`
	RecentOrders   []OrderResponse       `json:"recent_orders"`
	CanViewAddress bool                  `json:"can_view_address"`
}

type BoardEntryResponse struct {
	Rank        int    `json:"rank"`
	ActorID     string `json:"actor_id"`
	DisplayName string `json:"display_name"`
	Count       int    `json:"count"`
	IsCaller    bool   `json:"is_caller"`
}

type CallerStandingResponse struct {
	ActorID     string `json:"actor_id"`
	DisplayName string `json:"display_name"`
	Rank        *int   `json:"rank"`
	Count       int    `json:"count"`
	InTop10     bool   `json:"in_top_10"`
}

type BoardResponse struct {
	Entries []BoardEntryResponse   `json:"entries"`
	Caller  CallerStandingResponse `json:"caller"`
}

type LeaderboardsResponse struct {
	Fulfilled BoardResponse `json:"fulfilled"`
	Approved  BoardResponse `json:"approved"`
}

func toAddressResponse(a *kernel.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		FirstName:  a.FirstName(),
		LastName:   a.LastName(),
		Line1:      a.Line1(),
		Line2:      a.Line2(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID(),
		UserID:          o.UserID(),
		ItemID:          o.ItemID(),
		State:           o.State().String(),
		Quantity:        o.Quantity(),
		FrozenPrice:     o.FrozenPrice(),
		TotalCost:       o.TotalCost(),
		HasAddress:      o.HasFrozenAddress(),
		FulfilledBy:     o.FulfilledBy(),
		FulfilledAt:     o.FulfilledAt(),
		RejectionReason: o.RejectionReason(),
		InternalNotes:   o.InternalNotes(),
		CreatedAt:       o.CreatedAt(),
		Version:         o.Version(),
	}
	if o.State() == order.OnHold {
		resp.HoldFrom = o.HoldFrom().String()
	}
	return resp
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func stateCounts(counts map[order.State]int) map[string]int {
	out := make(map[string]int, len(counts))
	for state, n := range counts {
		out[state.String()] = n
	}
	return out
}

func toListOrdersResponse(r queries.ListOrdersResult) ListOrdersResponse {
	resp := ListOrdersResponse{
		View:   string(r.View),
		Region: string(r.Region),
		Stats: StatsResponse{
			Counts:                stateCounts(r.Stats.Counts),
			Total:                 r.Stats.Total(),
			AvgFulfillmentSeconds: r.Stats.AvgFulfillmentSeconds,
		},
		Orders: toOrderResponses(r.Orders),
	}
	if r.Grouped {
		resp.Groups = make([]GroupResponse, 0, len(r.Groups))
		for _, g := range r.Groups {
			resp.Groups = append(resp.Groups, GroupResponse{
				UserID:        g.UserID,
				OrderCount:    g.OrderCount(),
				TotalQuantity: g.TotalQuantity,
				TotalCost:     g.TotalCost,
				Address:       toAddressResponse(g.Address),
				Orders:        toOrderResponses(g.Orders),
			})
		}
	}
	return resp
}

func toAuditRecordResponse(r *audit.Record) AuditRecordResponse {
	changes := make([]ChangeResponse, 0, len(r.Changes()))
	for _, c := range r.Changes() {
		changes = append(changes, ChangeResponse{Field: c.Field, Old: c.Old, New: c.New})
	}
	return AuditRecordResponse{
		ID:         r.ID().String(),
		ActorID:    r.ActorID(),
		RecordedAt: r.RecordedAt(),
		Changes:    changes,
	}
}

func toOrderDetailResponse(r queries.GetOrderQueryResponse) OrderDetailResponse {
	history := make([]AuditRecordResponse, 0, len(r.History))
	for _, rec := range r.History {
		history = append(history, toAuditRecordResponse(rec))
	}
	return OrderDetailResponse{
		Order: toOrderResponse(r.Order),
		Customer: CustomerResponse{
			ID:    r.Customer.ID,
			Label: r.Customer.Label(),
			Email: r.Customer.Email,
		},
		CustomerStats: CustomerStatsResponse{
			Total:         r.CustomerStats.Total,
			Counts:        stateCounts(r.CustomerStats.Counts),
			TotalQuantity: r.CustomerStats.TotalQuantity,
		},
		History:        history,
		RecentOrders:   toOrderResponses(r.RecentOrders),
		CanViewAddress: r.CanViewAddress,
	}
}

func toBoardResponse(b leaderboard.Board) BoardResponse {
	entries := make([]BoardEntryResponse, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, BoardEntryResponse{
			Rank:        e.Rank,
			ActorID:     e.ActorID,
			DisplayName: e.DisplayName,
			Count:       e.Count,
			IsCaller:    e.IsCaller,
		})
	}
	return BoardResponse{
		Entries: entries,
		Caller: CallerStandingResponse{
			ActorID:     b.Caller.ActorID,
			DisplayName: b.Caller.DisplayName,
			Rank:        b.Caller.Rank,
			Count:       b.Caller.Count,
			InTop10:     b.Caller.InTop10,
		},
	}
}

func toLeaderboardsResponse(l queries.Leaderboards) *LeaderboardsResponse {
	return &LeaderboardsResponse{
		Fulfilled: toBoardResponse(l.Fulfilled),
		Approved:  toBoardResponse(l.Approved),
	}
}
