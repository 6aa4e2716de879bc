// Package itemrepo answers item catalog questions from the items table.
package itemrepo

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// ItemDTO holds the catalog flags the workflow needs. Items whose fulfillment is
// purely digital are flagged auto_fulfill.
type ItemDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"type:varchar(255);not null;default:''"`
	AutoFulfill bool   `gorm:"not null;default:false"`
}

func (ItemDTO) TableName() string {
	return "items"
}

// GormItemCatalog implements ports.ItemCatalog.
type GormItemCatalog struct {
	db *gorm.DB
}

func NewGormItemCatalog(db *gorm.DB) *GormItemCatalog {
	return &GormItemCatalog{db: db}
}

// IsAutoFulfillable reports whether approving an order for the item fulfils it
// immediately.
func (c *GormItemCatalog) IsAutoFulfillable(ctx context.Context, itemID int64) (bool, error) {
	var dto ItemDTO
	if err := c.db.WithContext(ctx).Select("id", "auto_fulfill").First(&dto, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NewObjectNotFoundError("item", itemID)
		}
		return false, err
	}
	return dto.AutoFulfill, nil
}
