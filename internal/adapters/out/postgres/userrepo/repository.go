// Package userrepo reads the account system's users table. This service never
// writes users.
package userrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDTO is the subset of the users table the workflow reads.
type UserDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	DisplayName string `gorm:"type:varchar(255);not null;default:''"`
	Email       string `gorm:"type:varchar(255);not null;default:''"`
}

func (UserDTO) TableName() string {
	return "users"
}

func (dto UserDTO) toDomain() user.User {
	return user.User{ID: dto.ID, DisplayName: dto.DisplayName, Email: dto.Email}
}

// GormUserDirectory implements ports.UserDirectory.
type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) FindByID(ctx context.Context, id int64) (user.User, error) {
	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id)
		}
		return user.User{}, err
	}
	return dto.toDomain(), nil
}

// FindByIDs returns the users that exist; unknown ids are simply absent.
func (d *GormUserDirectory) FindByIDs(ctx context.Context, ids []int64) (map[int64]user.User, error) {
	users := make(map[int64]user.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var dtos []UserDTO
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	for _, dto := range dtos {
		users[dto.ID] = dto.toDomain()
	}
	return users, nil
}
