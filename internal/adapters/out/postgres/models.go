package postgres

import (
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/itemrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table this service migrates.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&auditrepo.RecordDTO{},
		&auditrepo.ChangeDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
