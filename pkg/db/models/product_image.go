package models

import "github.com/google/uuid"

// ProductImage stores ordered image URLs for a product.
type ProductImage struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	ImageURL     string    `gorm:"column:image_url;not null"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0"`
}
