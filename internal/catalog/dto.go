package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
)

// ProductDTO is the transport shape for a catalog entry.
type ProductDTO struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	Price       decimal.Decimal     `json:"price"`
	Category    *string             `json:"category,omitempty"`
	Status      enums.ProductStatus `json:"status"`
	Sizes       []ProductSizeDTO    `json:"sizes"`
	Images      []ProductImageDTO   `json:"images"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ProductSizeDTO is one size row within a product.
type ProductSizeDTO struct {
	ID             uuid.UUID `json:"id"`
	SizeLabel      string    `json:"size_label"`
	InventoryCount int       `json:"inventory_count"`
}

// ProductImageDTO is one ordered image within a product.
type ProductImageDTO struct {
	ID           uuid.UUID `json:"id"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
}

// SizeInput is the inbound shape for a size row.
type SizeInput struct {
	SizeLabel      string `json:"size_label" validate:"required"`
	InventoryCount int    `json:"inventory_count" validate:"gte=0"`
}

// ImageInput is the inbound shape for an image row.
type ImageInput struct {
	ImageURL     string `json:"image_url" validate:"required,url"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// CreateProductRequest is the admin payload for a new catalog entry.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    *string         `json:"category"`
	Status      string          `json:"status" validate:"omitempty,oneof=draft active archived"`
	Sizes       []SizeInput     `json:"sizes" validate:"dive"`
	Images      []ImageInput    `json:"images" validate:"dive"`
}

// UpdateProductRequest is the admin payload for editing a catalog entry.
// Nil slices leave the existing sizes/images untouched; non-nil slices
// replace them wholesale.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Status      *string          `json:"status" validate:"omitempty,oneof=draft active archived"`
	Sizes       []SizeInput      `json:"sizes" validate:"omitempty,dive"`
	Images      []ImageInput     `json:"images" validate:"omitempty,dive"`
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	sizes := make([]ProductSizeDTO, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, ProductSizeDTO{
			ID:             s.ID,
			SizeLabel:      s.SizeLabel,
			InventoryCount: s.InventoryCount,
		})
	}

	images := make([]ProductImageDTO, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImageDTO{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			DisplayOrder: img.DisplayOrder,
		})
	}

	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Status:      p.Status,
		Sizes:       sizes,
		Images:      images,
		CreatedAt:   p.CreatedAt,
	}
}

func FromModels(ps []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *FromModel(&ps[i]))
	}
	return out
}
