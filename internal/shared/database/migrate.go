package database

import (
	"getaway/internal/orders"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orders.Order{},
		&orders.OrderItem{},
	)
}
