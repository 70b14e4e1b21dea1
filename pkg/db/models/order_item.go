package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one line within an order. ProductID is deliberately a loose
// string rather than a foreign key so old orders survive catalog changes.
// PriceAtPurchase is snapshotted at creation and never updated.
type OrderItem struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID         uuid.UUID       `gorm:"column:order_id;type:uuid;not null"`
	ProductID       string          `gorm:"column:product_id"`
	SizeLabel       string          `gorm:"column:size_label"`
	Quantity        int             `gorm:"column:quantity;not null"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase;type:numeric(10,2);not null"`
}
