// Package orderrepo persists the shop order aggregate with GORM and builds the
// listing predicates with squirrel.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the shop_orders row. State names are stored as text so that the
// table stays readable for reporting.
type OrderDTO struct {
	ID              int64               `gorm:"primaryKey;autoIncrement:false"`
	UserID          int64               `gorm:"not null;index"`
	ItemID          int64               `gorm:"not null;index"`
	State           string              `gorm:"type:varchar(32);not null;index"`
	HoldFrom        *string             `gorm:"type:varchar(32)"`
	Quantity        int                 `gorm:"not null"`
	FrozenPrice     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	FrozenAddress   *AddressDTO         `gorm:"type:jsonb;serializer:json"`
	FulfilledBy     *string             `gorm:"type:varchar(64);index"`
	FulfilledAt     *time.Time
	RejectionReason *string   `gorm:"type:text"`
	InternalNotes   string    `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `gorm:"not null;index"`
	Version         int       `gorm:"not null;default:0"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "shop_orders"
}

// AddressDTO is the frozen address snapshot, stored as a JSON document.
type AddressDTO struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              o.ID(),
		UserID:          o.UserID(),
		ItemID:          o.ItemID(),
		State:           o.State().String(),
		Quantity:        o.Quantity(),
		FulfilledAt:     o.FulfilledAt(),
		RejectionReason: o.RejectionReason(),
		InternalNotes:   o.InternalNotes(),
		CreatedAt:       o.CreatedAt(),
		Version:         o.Version(),
	}
	if o.State() == order.OnHold {
		from := o.HoldFrom().String()
		dto.HoldFrom = &from
	}
	if price := o.FrozenPrice(); price != nil {
		dto.FrozenPrice = decimal.NullDecimal{Decimal: *price, Valid: true}
	}
	if addr := o.FrozenAddress(); addr != nil {
		p := addr.Params()
		dto.FrozenAddress = &AddressDTO{
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			Line1:      p.Line1,
			Line2:      p.Line2,
			City:       p.City,
			State:      p.State,
			PostalCode: p.PostalCode,
			Country:    p.Country,
		}
	}
	if actor := o.FulfilledBy(); actor != "" {
		dto.FulfilledBy = &actor
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	state, err := order.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	s := order.Snapshot{
		Params: order.Params{
			ID:            dto.ID,
			UserID:        dto.UserID,
			ItemID:        dto.ItemID,
			Quantity:      dto.Quantity,
			InternalNotes: dto.InternalNotes,
			CreatedAt:     dto.CreatedAt,
		},
		State:           state,
		FulfilledAt:     dto.FulfilledAt,
		RejectionReason: dto.RejectionReason,
		Version:         dto.Version,
	}
	if dto.HoldFrom != nil {
		if s.HoldFrom, err = order.ParseState(*dto.HoldFrom); err != nil {
			return nil, err
		}
	}
	if dto.FrozenPrice.Valid {
		price := dto.FrozenPrice.Decimal
		s.FrozenPrice = &price
	}
	if dto.FrozenAddress != nil {
		addr, addrErr := kernel.NewAddress(kernel.AddressParams(*dto.FrozenAddress))
		if addrErr != nil {
			return nil, addrErr
		}
		s.FrozenAddress = &addr
	}
	if dto.FulfilledBy != nil {
		s.FulfilledBy = *dto.FulfilledBy
	}

	return order.RestoreOrder(s)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
