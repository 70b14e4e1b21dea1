package models

import "github.com/google/uuid"

// ProductSize is the inventory unit: one row per product/size label.
type ProductSize struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID      uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	SizeLabel      string    `gorm:"column:size_label;not null"`
	InventoryCount int       `gorm:"column:inventory_count;not null;default:0"`
}
